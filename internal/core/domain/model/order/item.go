package order

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a single order line: a product snapshot frozen at order time.
// The product name and unit price are copied from the catalog when the order
// is placed, so later catalog changes never retroactively alter placed orders.
//
// Item is immutable. Its line price always equals unit price multiplied by
// quantity; that is computed once in the constructor and never recalculated.
type Item struct {
	productID   kernel.UUID
	productName string
	quantity    int
	unitPrice   kernel.Money
	price       kernel.Money

	isConstructed bool
}

// NewItem creates an order line from a catalog snapshot.
//
// Parameters:
//   - productID: Identifier of the ordered product (must be valid)
//   - productName: Product name at order time (must be non-empty)
//   - quantity: Number of units (must be positive)
//   - unitPrice: Catalog price of one unit at order time
//
// The line price is computed as unitPrice × quantity.
func NewItem(productID kernel.UUID, productName string, quantity int, unitPrice kernel.Money) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if productName == "" {
		return Item{}, errs.NewValueIsRequiredError("product name")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return Item{
		productID:     productID,
		productName:   productName,
		quantity:      quantity,
		unitPrice:     unitPrice,
		price:         unitPrice.MulQuantity(quantity),
		isConstructed: true,
	}, nil
}

// RestoreItem reconstructs an order line from persistent storage, keeping the
// persisted line price rather than recomputing it.
func RestoreItem(
	productID kernel.UUID,
	productName string,
	quantity int,
	unitPrice kernel.Money,
	price kernel.Money,
) (Item, error) {
	item, err := NewItem(productID, productName, quantity, unitPrice)
	if err != nil {
		return Item{}, err
	}

	item.price = price
	return item, nil
}

// Validate ensures the Item was created through NewItem or RestoreItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ProductID returns the identifier of the ordered product.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// ProductName returns the product name snapshot taken at order time.
func (i Item) ProductName() string {
	return i.productName
}

// Quantity returns the number of ordered units.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-unit price snapshot taken at order time.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Price returns the line total (unit price × quantity).
func (i Item) Price() kernel.Money {
	return i.price
}
