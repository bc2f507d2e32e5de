// Package catalog provides the read-only product reference data consumed by
// the order core. Catalog management itself (restaurants, categories, product
// CRUD) lives outside this service; checkout only needs to resolve product
// identity, name and current price.
package catalog

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a catalog entry. The order core treats products as immutable
// reference data: checkout snapshots the name and price into order items, so
// a later price change never affects placed orders.
type Product struct {
	id    kernel.UUID
	name  string
	price kernel.Money

	guard guard.ConstructorGuard
}

// NewProduct creates a catalog entry.
func NewProduct(id kernel.UUID, name string, price kernel.Money) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("product name")
	}

	return &Product{
		id:    id,
		name:  name,
		price: price,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the current catalog price of one unit.
func (p *Product) Price() kernel.Money {
	return p.price
}
