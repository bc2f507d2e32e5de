package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrRemoveFromCartCommandIsNotConstructed = errors.New(
	"RemoveFromCartCommand must be created via NewRemoveFromCartCommand constructor",
)

// RemoveFromCartCommand represents a request to drop a product line from a
// client's cart. The whole line is removed regardless of quantity.
type RemoveFromCartCommand struct { //nolint:recvcheck //using for validation
	clientID  kernel.UUID
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveFromCartCommand creates a command to remove a product from a cart.
func NewRemoveFromCartCommand(clientID, productID kernel.UUID) (RemoveFromCartCommand, error) {
	cmd := RemoveFromCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClientID(clientID),
		cmd.setProductID(productID),
	); err != nil {
		return RemoveFromCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveFromCartCommand) Validate() error {
	return c.guard.Validate(ErrRemoveFromCartCommandIsNotConstructed)
}

// ClientID returns the cart owner.
func (c RemoveFromCartCommand) ClientID() kernel.UUID {
	return c.clientID
}

// ProductID returns the product to remove.
func (c RemoveFromCartCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c *RemoveFromCartCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *RemoveFromCartCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
