package commands

import (
	"context"

	"foodorder/internal/core/ports"
)

// AcceptOrderCommandHandler handles the business logic for order acceptance.
//
// The order row is locked for the transaction, so two couriers racing for the
// same order serialize: the first one wins, the second sees the courier
// already set and gets a conflict. No balance is credited at acceptance;
// turnover moves only at delivery.
type AcceptOrderCommandHandler struct {
	uowFactory     AcceptOrderUoWFactory
	eventPublisher ports.OrderEventPublisher
}

// NewAcceptOrderCommandHandler creates a handler for acceptance operations.
func NewAcceptOrderCommandHandler(
	uowFactory AcceptOrderUoWFactory,
	eventPublisher ports.OrderEventPublisher,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

// Handle processes the acceptance command.
// The courier must exist and the order must still be pending and unassigned.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	accepting, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Accept(accepting.ID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
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
