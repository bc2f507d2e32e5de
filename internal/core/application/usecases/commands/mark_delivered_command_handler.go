package commands

import (
	"context"

	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
)

// MarkDeliveredCommandHandler handles delivery confirmation and bonus
// settlement in a single transaction.
//
// The order row and the courier row are both locked. The shipped-to-delivered
// transition doubles as the settlement guard: a repeated confirmation fails
// on the transition before any balance is touched, so settlement runs exactly
// once per order no matter how many times the request is retried.
type MarkDeliveredCommandHandler struct {
	uowFactory     DeliverOrderUoWFactory
	settlement     services.BonusSettlement
	eventPublisher ports.OrderEventPublisher
}

// NewMarkDeliveredCommandHandler creates a handler for delivery confirmations.
func NewMarkDeliveredCommandHandler(
	uowFactory DeliverOrderUoWFactory,
	settlement services.BonusSettlement,
	eventPublisher ports.OrderEventPublisher,
) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory:     uowFactory,
		settlement:     settlement,
		eventPublisher: eventPublisher,
	}
}

// Handle processes the delivery confirmation.
// Only the assigned courier may confirm; the order total is credited to the
// courier's turnover and a bonus is granted when the active threshold is
// reached. Both aggregates are persisted atomically.
func (h *MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.MarkDelivered(cmd.CourierID()); err != nil {
		return err
	}

	courierRepo := uow.CourierRepository()
	assignee, err := courierRepo.GetForUpdate(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	settings, err := uow.BonusSettingsRepository().GetActive(ctx)
	if err != nil {
		return err
	}

	if err = h.settlement.Settle(aggregate, assignee, settings); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, assignee); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Best effort: the state change is committed, a publish failure is the
	// publisher's problem to log.
	_ = h.eventPublisher.PublishOrderChanged(aggregate)

	return nil
}
