// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"foodorder/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest slice of repositories it needs.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CourierRepoFactory provides access to the courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// BonusSettingsRepoFactory provides access to the bonus settings repository within a transaction.
	BonusSettingsRepoFactory interface {
		BonusSettingsRepository() ports.BonusSettingsRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// CartRepoFactory provides access to the cart repository within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// CartUoW manages transactions for cart-only operations.
	CartUoW interface {
		TxManager
		CartRepoFactory
	}

	// CartUoWFactory creates new cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// CourierUoW manages transactions for courier-only operations.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	// CourierUoWFactory creates new courier unit of work instances.
	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// CheckoutUoW manages transactions that turn a cart into an order:
	// the cart is read and cleared, products are resolved, and the order
	// is created, all atomically.
	CheckoutUoW interface {
		TxManager
		CartRepoFactory
		ProductRepoFactory
		OrderRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// AcceptOrderUoW manages transactions for order acceptance, which touches
	// the order row (locked) and reads the courier.
	AcceptOrderUoW interface {
		TxManager
		OrderRepoFactory
		CourierRepoFactory
	}

	// AcceptOrderUoWFactory creates new acceptance unit of work instances.
	AcceptOrderUoWFactory interface {
		Create() AcceptOrderUoW
	}

	// DeliverOrderUoW manages the delivery transaction: the order and the
	// courier rows are locked, bonus settings are read, and settlement
	// updates both aggregates atomically.
	DeliverOrderUoW interface {
		TxManager
		OrderRepoFactory
		CourierRepoFactory
		BonusSettingsRepoFactory
	}

	// DeliverOrderUoWFactory creates new delivery unit of work instances.
	DeliverOrderUoWFactory interface {
		Create() DeliverOrderUoW
	}
)
