package services

import (
	"foodorder/internal/core/domain/model/bonus"
	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

// BonusSettlement credits a courier for a delivered order and grants a bonus
// when the active threshold is crossed.
//
// The settlement runs inside the delivery transaction, after the order has
// moved to delivered and while the courier row is locked. The order's
// status transition is what makes settlement exactly-once: a second delivery
// attempt fails before settlement is ever reached.
type BonusSettlement interface {
	Settle(o *order.Order, c *courier.Courier, settings *bonus.Settings) error
}

var _ BonusSettlement = &bonusSettlement{}

type bonusSettlement struct{}

// NewBonusSettlement creates the settlement domain service.
func NewBonusSettlement() BonusSettlement {
	return &bonusSettlement{}
}

// Settle applies the settlement rules:
//
//  1. The delivered order's total is credited to the courier's turnover.
//  2. If an active bonus rule exists and the courier's turnover, including
//     the credit from step 1, has reached the rule's threshold, the bonus
//     amount is granted. The bonus counts toward both the turnover and the
//     bonus balance.
//
// settings may be nil, meaning no rule is active; turnover is still credited
// but no bonus can be granted.
func (s *bonusSettlement) Settle(o *order.Order, c *courier.Courier, settings *bonus.Settings) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}

	if o.Status() != order.Delivered {
		return errs.NewConflictError("order is not delivered")
	}
	if o.Courier() == nil || !o.Courier().IsEqual(c.ID()) {
		return errs.NewNotAuthorizedError("order is assigned to another courier")
	}

	c.AddTurnover(o.TotalPrice())

	if settings == nil || !settings.IsActive() {
		return nil
	}
	if c.TotalTurnover().GreaterOrEqual(settings.MinTurnover()) {
		c.GrantBonus(settings.BonusAmount())
	}

	return nil
}
