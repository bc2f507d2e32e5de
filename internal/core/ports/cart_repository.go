package ports

import (
	"context"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for shopping carts.
// Carts are keyed by client: a client with no stored lines has an empty cart,
// not a missing one.
type CartRepository interface {
	// Get retrieves the client's cart. When the client has no stored lines,
	// an empty cart is returned rather than a not-found error.
	Get(ctx context.Context, clientID kernel.UUID) (*cart.Cart, error)

	// Save persists the cart's current lines, replacing whatever was stored.
	Save(ctx context.Context, aggregate *cart.Cart) error

	// Clear removes all of the client's cart lines. Checkout calls this in
	// the same transaction that creates the order.
	Clear(ctx context.Context, clientID kernel.UUID) error
}
