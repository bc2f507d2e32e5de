package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
	ErrAddressIsRequired = errors.New("address is required")
	ErrPhoneIsRequired   = errors.New("phone is required")
)

// CheckoutCommand represents a request to turn a client's cart into an order.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCheckoutCommand(orderID, clientID, "Lenina st. 1", "+79990001122")
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	handler := NewCheckoutCommandHandler(uowFactory)
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
//	fmt.Printf("Order %s placed for %s", placed.ID(), placed.TotalPrice())
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	clientID kernel.UUID
	address  string
	phone    string

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a checkout command.
// Validates that both identifiers are valid and the delivery address and
// contact phone are not empty.
func NewCheckoutCommand(orderID, clientID kernel.UUID, address, phone string) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setClientID(clientID),
		cmd.setAddress(address),
		cmd.setPhone(phone),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CheckoutCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the client placing the order.
func (c CheckoutCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Address returns the delivery address.
func (c CheckoutCommand) Address() string {
	return c.address
}

// Phone returns the contact phone number.
func (c CheckoutCommand) Phone() string {
	return c.phone
}

func (c *CheckoutCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CheckoutCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CheckoutCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *CheckoutCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}
