package order

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a client's food order. It is the aggregate root that manages
// the order lifecycle from checkout through courier acceptance to delivery.
//
// Order follows these invariants:
//   - Must have valid unique identifiers for itself and its client
//   - Must contain at least one item
//   - Total price always equals the sum of its item line prices
//   - Status transitions follow the Pending -> Shipped -> Delivered workflow
//     (with Pending -> Cancelled as the only branch)
//   - A courier is set exactly when the order has been accepted
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// clientID identifies the client who placed the order
	clientID kernel.UUID

	// courierID is the accepting courier's ID (nil until accepted)
	courierID *kernel.UUID

	// items are the order lines, frozen at checkout
	items []Item

	// totalPrice is the sum of all item line prices
	totalPrice kernel.Money

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is the checkout timestamp
	createdAt time.Time

	// address is the delivery address supplied at checkout
	address string

	// phone is the client's contact phone number
	phone string

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order at checkout time. This is the only way to
// create a valid Order, ensuring all business invariants hold.
//
// The total price is computed once from the item line prices and frozen into
// the aggregate; later catalog price changes never affect a placed order.
//
// Parameters:
//   - id: Unique identifier for the order
//   - clientID: Identifier of the ordering client
//   - items: Non-empty set of order lines with prices captured at order time
//   - address: Delivery address (required)
//   - phone: Contact phone number (required)
//   - createdAt: Checkout timestamp
//
// The order starts in Pending status with no courier assigned.
func NewOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	items []Item,
	address string,
	phone string,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setClientID(clientID),
		order.setItems(items),
		order.setAddress(address),
		order.setPhone(phone),
	); err != nil {
		return nil, err
	}

	total := kernel.ZeroMoney()
	for _, item := range order.items {
		total = total.Add(item.Price())
	}
	order.totalPrice = total

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder it accepts any lifecycle status and an optional courier,
// but it still enforces every aggregate invariant, including that the
// persisted total equals the sum of the item line prices and that the
// status is consistent with the courier assignment.
func RestoreOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	items []Item,
	totalPrice kernel.Money,
	status Status,
	courierID *kernel.UUID,
	createdAt time.Time,
	address string,
	phone string,
) (*Order, error) {
	order, err := NewOrder(id, clientID, items, address, phone, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return nil, err
	}
	if courierID != nil {
		if err = courierID.Validate(); err != nil {
			return nil, err
		}
	}
	if !order.totalPrice.IsEqual(totalPrice) {
		return nil, errs.NewValueIsInvalidError("total price does not match the sum of item prices")
	}

	order.status = status
	order.courierID = courierID
	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientID returns the identifier of the client who placed the order.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// Courier returns the accepting courier's ID.
// Returns nil while the order has not been accepted.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalPrice returns the frozen order total.
func (o *Order) TotalPrice() kernel.Money {
	return o.totalPrice
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the checkout timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Address returns the delivery address.
func (o *Order) Address() string {
	return o.address
}

// Phone returns the client's contact phone number.
func (o *Order) Phone() string {
	return o.phone
}

// Accept assigns the order to the accepting courier and moves it to Shipped.
//
// Business rules:
//   - The courier ID must be valid
//   - The order must still be Pending
//   - The order must not already have a courier (first acceptance wins;
//     a second acceptor gets a ConflictError)
//
// The caller is responsible for loading the order under a row lock so that
// two concurrent acceptances serialize and exactly one of them succeeds.
func (o *Order) Accept(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	if o.courierID != nil {
		return errs.NewConflictError("order is already taken")
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	return nil
}

// MarkDelivered marks the order as delivered by the given courier.
//
// Business rules:
//   - Only the assigned courier may complete the order (NotAuthorizedError otherwise)
//   - The order must be Shipped; completing a Pending or already Delivered
//     order fails with a ConflictError
//
// The ConflictError on a repeated call is what guarantees bonus settlement
// runs at most once per order, provided the status check and the status write
// share one transaction.
func (o *Order) MarkDelivered(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	if o.courierID == nil || !o.courierID.IsEqual(courierID) {
		return errs.NewNotAuthorizedError("order is assigned to another courier")
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel withdraws a Pending order. Orders already accepted by a courier
// cannot be cancelled.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

func (o *Order) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone number")
	}
	o.phone = phone
	return nil
}
