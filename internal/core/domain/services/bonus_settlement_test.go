package services_test

import (
	"testing"
	"time"

	"foodorder/internal/core/domain/model/bonus"
	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func deliveredOrder(t *testing.T, courierID kernel.UUID, total string) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), "Pepperoni pizza", 1, mustMoney(t, total))
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.Item{item},
		"Lenina st. 1", "+79990001122", time.Now().UTC())
	require.NoError(t, err)

	require.NoError(t, o.Accept(courierID))
	require.NoError(t, o.MarkDelivered(courierID))
	return o
}

func activeSettings(t *testing.T, minTurnover, bonusAmount string) *bonus.Settings {
	t.Helper()

	s, err := bonus.NewSettings(kernel.NewUUID(),
		mustMoney(t, minTurnover), mustMoney(t, bonusAmount), true)
	require.NoError(t, err)
	return s
}

func TestBonusSettlement_Settle(t *testing.T) {
	t.Run("credits turnover without bonus below threshold", func(t *testing.T) {
		c, err := courier.NewCourier(kernel.NewUUID(), "Ivan Petrov", "bicycle")
		require.NoError(t, err)
		settings := activeSettings(t, "100.00", "10.00")

		err = services.NewBonusSettlement().Settle(deliveredOrder(t, c.ID(), "60.00"), c, settings)

		require.NoError(t, err)
		assert.Equal(t, "60.00", c.TotalTurnover().String())
		assert.True(t, c.TotalBonuses().IsZero())
	})

	t.Run("grants bonus once threshold is reached", func(t *testing.T) {
		c, err := courier.NewCourier(kernel.NewUUID(), "Ivan Petrov", "bicycle")
		require.NoError(t, err)
		settings := activeSettings(t, "100.00", "10.00")
		settlement := services.NewBonusSettlement()

		require.NoError(t, settlement.Settle(deliveredOrder(t, c.ID(), "60.00"), c, settings))
		require.NoError(t, settlement.Settle(deliveredOrder(t, c.ID(), "50.00"), c, settings))

		// 60 + 50 = 110 >= 100, so the 10.00 bonus lands in both balances.
		assert.Equal(t, "120.00", c.TotalTurnover().String())
		assert.Equal(t, "10.00", c.TotalBonuses().String())
	})

	t.Run("no active settings means turnover only", func(t *testing.T) {
		c, err := courier.NewCourier(kernel.NewUUID(), "Ivan Petrov", "bicycle")
		require.NoError(t, err)

		err = services.NewBonusSettlement().Settle(deliveredOrder(t, c.ID(), "500.00"), c, nil)

		require.NoError(t, err)
		assert.Equal(t, "500.00", c.TotalTurnover().String())
		assert.True(t, c.TotalBonuses().IsZero())
	})

	t.Run("inactive settings grant nothing", func(t *testing.T) {
		c, err := courier.NewCourier(kernel.NewUUID(), "Ivan Petrov", "bicycle")
		require.NoError(t, err)
		settings, err := bonus.NewSettings(kernel.NewUUID(),
			mustMoney(t, "100.00"), mustMoney(t, "10.00"), false)
		require.NoError(t, err)

		err = services.NewBonusSettlement().Settle(deliveredOrder(t, c.ID(), "500.00"), c, settings)

		require.NoError(t, err)
		assert.Equal(t, "500.00", c.TotalTurnover().String())
		assert.True(t, c.TotalBonuses().IsZero())
	})

	t.Run("rejects order that is not delivered", func(t *testing.T) {
		c, err := courier.NewCourier(kernel.NewUUID(), "Ivan Petrov", "bicycle")
		require.NoError(t, err)

		item, err := order.NewItem(kernel.NewUUID(), "Pepperoni pizza", 1, mustMoney(t, "60.00"))
		require.NoError(t, err)
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.Item{item},
			"Lenina st. 1", "+79990001122", time.Now().UTC())
		require.NoError(t, err)

		err = services.NewBonusSettlement().Settle(o, c, nil)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.True(t, c.TotalTurnover().IsZero())
	})

	t.Run("rejects another courier's order", func(t *testing.T) {
		assignee, err := courier.NewCourier(kernel.NewUUID(), "Ivan Petrov", "bicycle")
		require.NoError(t, err)
		impostor, err := courier.NewCourier(kernel.NewUUID(), "Petr Ivanov", "scooter")
		require.NoError(t, err)

		err = services.NewBonusSettlement().Settle(
			deliveredOrder(t, assignee.ID(), "60.00"), impostor, nil)

		require.ErrorIs(t, err, errs.ErrNotAuthorized)
		assert.True(t, impostor.TotalTurnover().IsZero())
	})
}
