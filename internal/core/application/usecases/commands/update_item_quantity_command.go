package commands

import (
	"errors"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
	"github.com/BarinovG/EShop-API/internal/pkg/guard"
)

var (
	ErrUpdateItemQuantityCommandIsNotConstructed = errors.New(
		"UpdateItemQuantityCommand must be created via NewUpdateItemQuantityCommand constructor",
	)
)

// UpdateItemQuantityCommand represents a request to change the quantity
// of one line item in the buyer's open cart.
type UpdateItemQuantityCommand struct { //nolint:recvcheck //using for validation
	buyerID  kernel.UUID
	itemID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

// NewUpdateItemQuantityCommand creates a command to change a line item's
// quantity. Validates both identifiers and requires a positive quantity.
func NewUpdateItemQuantityCommand(buyerID, itemID kernel.UUID, quantity int) (UpdateItemQuantityCommand, error) {
	cmd := UpdateItemQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBuyerID(buyerID),
		cmd.setItemID(itemID),
		cmd.setQuantity(quantity),
	); err != nil {
		return UpdateItemQuantityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemQuantityCommandIsNotConstructed)
}

// BuyerID returns the buyer whose cart holds the item.
func (c UpdateItemQuantityCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// ItemID returns the line item being changed.
func (c UpdateItemQuantityCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Quantity returns the new amount.
func (c UpdateItemQuantityCommand) Quantity() int {
	return c.quantity
}

func (c *UpdateItemQuantityCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	c.buyerID = buyerID
	return nil
}

func (c *UpdateItemQuantityCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *UpdateItemQuantityCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
