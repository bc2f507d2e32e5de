package commands

import (
	"context"
)

// AddToCartCommandHandler handles the business logic for adding products to carts.
// The product must exist in the catalog; its line is merged into the client's cart.
type AddToCartCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewAddToCartCommandHandler creates a handler for cart additions.
func NewAddToCartCommandHandler(uowFactory CheckoutUoWFactory) AddToCartCommandHandler {
	return AddToCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cart addition.
// Loads the client's cart (an absent cart is an empty one), verifies the
// product exists, merges the line, and persists the cart.
func (h *AddToCartCommandHandler) Handle(ctx context.Context, cmd AddToCartCommand) error {
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

	if _, err := uow.ProductRepository().Get(ctx, cmd.ProductID()); err != nil {
		return err
	}

	cartRepo := uow.CartRepository()
	clientCart, err := cartRepo.Get(ctx, cmd.ClientID())
	if err != nil {
		return err
	}

	if err = clientCart.AddItem(cmd.ProductID(), cmd.Quantity()); err != nil {
		return err
	}

	if err = cartRepo.Save(ctx, clientCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
