package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/order"
)

// CheckoutCommandHandler handles the business logic for placing an order
// from a cart.
//
// The whole operation is one transaction: the cart is read, every line is
// priced against the current catalog, the order is created in pending status,
// and the cart is cleared. If any product has disappeared from the catalog
// the checkout aborts and the cart is left untouched.
type CheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
func NewCheckoutCommandHandler(uowFactory CheckoutUoWFactory) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the checkout command and returns the placed order.
// An empty cart is a conflict; prices and names are snapshotted into order
// items so later catalog changes never affect this order.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	clientCart, err := cartRepo.Get(ctx, cmd.ClientID())
	if err != nil {
		return nil, err
	}

	if err = clientCart.Validate(); err != nil {
		return nil, err
	}
	if clientCart.IsEmpty() {
		return nil, cart.ErrCartIsEmpty
	}

	productRepo := uow.ProductRepository()
	items := make([]order.Item, 0, len(clientCart.Lines()))
	for _, line := range clientCart.Lines() {
		product, err := productRepo.Get(ctx, line.ProductID())
		if err != nil {
			return nil, err
		}

		item, err := order.NewItem(product.ID(), product.Name(), line.Quantity(), product.Price())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	placed, err := order.NewOrder(cmd.OrderID(), cmd.ClientID(), items,
		cmd.Address(), cmd.Phone(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = cartRepo.Clear(ctx, cmd.ClientID()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}
