package commands

import (
	"context"
)

// RemoveFromCartCommandHandler handles the business logic for removing cart lines.
type RemoveFromCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveFromCartCommandHandler creates a handler for cart removals.
func NewRemoveFromCartCommandHandler(uowFactory CartUoWFactory) RemoveFromCartCommandHandler {
	return RemoveFromCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cart removal.
// Removing a product that is not in the cart returns an object-not-found error.
func (h *RemoveFromCartCommandHandler) Handle(ctx context.Context, cmd RemoveFromCartCommand) error {
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

	cartRepo := uow.CartRepository()
	clientCart, err := cartRepo.Get(ctx, cmd.ClientID())
	if err != nil {
		return err
	}

	if err = clientCart.RemoveItem(cmd.ProductID()); err != nil {
		return err
	}

	if err = cartRepo.Save(ctx, clientCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
