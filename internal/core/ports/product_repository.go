package ports

import (
	"context"

	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"
)

// ProductRepository reads catalog reference data. Checkout resolves every
// cart line through it to snapshot the product name and current price.
type ProductRepository interface {
	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error)
}
