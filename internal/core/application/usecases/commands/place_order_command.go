package commands

import (
	"errors"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
	"github.com/BarinovG/EShop-API/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderCommand represents a request to turn the buyer's cart into
// a placed order, binding the delivery contact in the same step.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	buyerID   kernel.UUID
	orderID   kernel.UUID
	contactID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order.
func NewPlaceOrderCommand(buyerID, orderID, contactID kernel.UUID) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBuyerID(buyerID),
		cmd.setOrderID(orderID),
		cmd.setContactID(contactID),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// BuyerID returns the buyer placing the order.
func (c PlaceOrderCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// OrderID returns the cart being placed.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ContactID returns the delivery contact bound at placement.
func (c PlaceOrderCommand) ContactID() kernel.UUID {
	return c.contactID
}

func (c *PlaceOrderCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	c.buyerID = buyerID
	return nil
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setContactID(contactID kernel.UUID) error {
	if err := contactID.Validate(); err != nil {
		return err
	}

	c.contactID = contactID
	return nil
}
