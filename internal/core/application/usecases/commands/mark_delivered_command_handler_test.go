package commands_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/bonus"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBonusSettingsRepository struct{ mock.Mock }

func (m *MockBonusSettingsRepository) GetActive(ctx context.Context) (*bonus.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bonus.Settings), args.Error(1)
}

type MockDeliverUoW struct{ mock.Mock }

func (m *MockDeliverUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDeliverUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDeliverUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDeliverUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockDeliverUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}
func (m *MockDeliverUoW) BonusSettingsRepository() ports.BonusSettingsRepository {
	args := m.Called()
	return args.Get(0).(ports.BonusSettingsRepository)
}

type MockDeliverUoWFactory struct{ mock.Mock }

func (m *MockDeliverUoWFactory) Create() commands.DeliverOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliverOrderUoW)
}

func TestMarkDeliveredCommandHandler_Handle_SettlesBonus(t *testing.T) {
	ctx := t.Context()
	c := testCourier(t)
	c.AddTurnover(mustMoney(t, "60.00"))

	item, err := order.NewItem(kernel.NewUUID(), "Pepperoni pizza", 1, mustMoney(t, "50.00"))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.Item{item},
		"Lenina st. 1", "+79990001122", time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, o.Accept(c.ID()))

	settings, err := bonus.NewSettings(kernel.NewUUID(),
		mustMoney(t, "100.00"), mustMoney(t, "10.00"), true)
	require.NoError(t, err)

	cmd, _ := commands.NewMarkDeliveredCommand(o.ID(), c.ID())

	orderRepo := new(MockAcceptOrderRepository)
	courierRepo := new(MockAcceptCourierRepository)
	bonusRepo := new(MockBonusSettingsRepository)
	uow := new(MockDeliverUoW)
	publisher := new(MockOrderEventPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("GetForUpdate", ctx, c.ID()).Return(c, nil).Once(),
		uow.On("BonusSettingsRepository").Return(bonusRepo).Once(),
		bonusRepo.On("GetActive", ctx).Return(settings, nil).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		courierRepo.On("Update", mock.Anything, c).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("PublishOrderChanged", o).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliverUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkDeliveredCommandHandler(factory, services.NewBonusSettlement(), publisher)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, o.Status())
	// 60 + 50 crosses the 100 threshold, so the 10 bonus lands too.
	assert.Equal(t, "120.00", c.TotalTurnover().String())
	assert.Equal(t, "10.00", c.TotalBonuses().String())
	orderRepo.AssertExpectations(t)
	courierRepo.AssertExpectations(t)
	bonusRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestMarkDeliveredCommandHandler_Handle_SecondConfirmationConflicts(t *testing.T) {
	ctx := t.Context()
	c := testCourier(t)
	o := pendingOrder(t)
	require.NoError(t, o.Accept(c.ID()))
	require.NoError(t, o.MarkDelivered(c.ID()))

	cmd, _ := commands.NewMarkDeliveredCommand(o.ID(), c.ID())

	orderRepo := new(MockAcceptOrderRepository)
	uow := new(MockDeliverUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliverUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkDeliveredCommandHandler(factory,
		services.NewBonusSettlement(), new(MockOrderEventPublisher))
	err := h.Handle(ctx, cmd)

	// The transition guard fires before any balance is touched.
	require.ErrorIs(t, err, errs.ErrConflict)
	assert.True(t, c.TotalTurnover().IsZero())
	uow.AssertExpectations(t)
}

func TestMarkDeliveredCommandHandler_Handle_WrongCourier(t *testing.T) {
	ctx := t.Context()
	assignee := testCourier(t)
	impostor := testCourier(t)
	o := pendingOrder(t)
	require.NoError(t, o.Accept(assignee.ID()))

	cmd, _ := commands.NewMarkDeliveredCommand(o.ID(), impostor.ID())

	orderRepo := new(MockAcceptOrderRepository)
	uow := new(MockDeliverUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliverUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkDeliveredCommandHandler(factory,
		services.NewBonusSettlement(), new(MockOrderEventPublisher))
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	assert.Equal(t, order.Shipped, o.Status())
	uow.AssertExpectations(t)
}

func TestMarkDeliveredCommandHandler_Handle_NoActiveSettings(t *testing.T) {
	ctx := t.Context()
	c := testCourier(t)
	o := pendingOrder(t)
	require.NoError(t, o.Accept(c.ID()))

	cmd, _ := commands.NewMarkDeliveredCommand(o.ID(), c.ID())

	orderRepo := new(MockAcceptOrderRepository)
	courierRepo := new(MockAcceptCourierRepository)
	bonusRepo := new(MockBonusSettingsRepository)
	uow := new(MockDeliverUoW)
	publisher := new(MockOrderEventPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("GetForUpdate", ctx, c.ID()).Return(c, nil).Once(),
		uow.On("BonusSettingsRepository").Return(bonusRepo).Once(),
		bonusRepo.On("GetActive", ctx).Return(nil, nil).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		courierRepo.On("Update", mock.Anything, c).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("PublishOrderChanged", o).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliverUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkDeliveredCommandHandler(factory, services.NewBonusSettlement(), publisher)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, o.TotalPrice().String(), c.TotalTurnover().String())
	assert.True(t, c.TotalBonuses().IsZero())
	uow.AssertExpectations(t)
}
