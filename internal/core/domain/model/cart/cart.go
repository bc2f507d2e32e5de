// Package cart provides the shopping cart aggregate for the food-ordering
// system.
//
// A cart belongs to exactly one client and holds at most one line per
// product; adding an already present product increments its quantity instead
// of appending a duplicate line. Checkout drains the cart atomically: the
// lines become order items and the cart is cleared in the same transaction.
package cart

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// Domain errors for cart operations.
var (
	// ErrCartIsEmpty is returned when attempting to check out a cart with no lines.
	ErrCartIsEmpty = errs.NewConflictError("cart is empty")
	// ErrCartIsNotConstructed is returned when using an improperly initialized Cart.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")
)

// Line is one product entry in a cart. A cart never holds two lines for the
// same product.
type Line struct {
	productID kernel.UUID
	quantity  int

	isConstructed bool
}

// NewLine creates a cart line for the given product and quantity.
func NewLine(productID kernel.UUID, quantity int) (Line, error) {
	if err := productID.Validate(); err != nil {
		return Line{}, err
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxLineQuantity)
	}

	return Line{
		productID:     productID,
		quantity:      quantity,
		isConstructed: true,
	}, nil
}

// maxLineQuantity caps a single cart line. Larger orders are a data-entry
// mistake far more often than a real purchase.
const maxLineQuantity = 1000

// ProductID returns the product this line refers to.
func (l Line) ProductID() kernel.UUID {
	return l.productID
}

// Quantity returns the number of units in this line.
func (l Line) Quantity() int {
	return l.quantity
}

// Cart is the per-client shopping cart aggregate.
type Cart struct {
	clientID kernel.UUID
	lines    []Line

	guard guard.ConstructorGuard
}

// NewCart creates an empty cart for the given client.
func NewCart(clientID kernel.UUID) (*Cart, error) {
	if err := clientID.Validate(); err != nil {
		return nil, err
	}

	return &Cart{
		clientID: clientID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// RestoreCart reconstructs a cart from persistent storage.
func RestoreCart(clientID kernel.UUID, lines []Line) (*Cart, error) {
	cart, err := NewCart(clientID)
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		if !line.isConstructed {
			return nil, errs.NewValueIsInvalidErrorWithCause("lines", ErrCartIsNotConstructed)
		}
		if cart.indexOf(line.productID) >= 0 {
			return nil, errs.NewValueIsInvalidError("lines: duplicate product")
		}
		cart.lines = append(cart.lines, line)
	}

	return cart, nil
}

// Validate ensures the Cart instance was properly constructed.
func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

// ClientID returns the owner of the cart.
func (c *Cart) ClientID() kernel.UUID {
	return c.clientID
}

// Lines returns a copy of the cart lines.
func (c *Cart) Lines() []Line {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// AddItem puts quantity units of a product into the cart. If the product is
// already present its quantity is incremented, keeping the one-line-per-product
// invariant.
func (c *Cart) AddItem(productID kernel.UUID, quantity int) error {
	if i := c.indexOf(productID); i >= 0 {
		merged, err := NewLine(productID, c.lines[i].quantity+quantity)
		if err != nil {
			return err
		}
		c.lines[i] = merged
		return nil
	}

	line, err := NewLine(productID, quantity)
	if err != nil {
		return err
	}
	c.lines = append(c.lines, line)
	return nil
}

// RemoveItem drops a product's line from the cart entirely.
func (c *Cart) RemoveItem(productID kernel.UUID) error {
	i := c.indexOf(productID)
	if i < 0 {
		return errs.NewObjectNotFoundError("product", productID)
	}

	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return nil
}

func (c *Cart) indexOf(productID kernel.UUID) int {
	for i, line := range c.lines {
		if line.productID.IsEqual(productID) {
			return i
		}
	}
	return -1
}
