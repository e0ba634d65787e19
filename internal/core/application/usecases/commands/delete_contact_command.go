package commands

import (
	"errors"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
	"github.com/BarinovG/EShop-API/internal/pkg/guard"
)

var (
	ErrDeleteContactCommandIsNotConstructed = errors.New(
		"DeleteContactCommand must be created via NewDeleteContactCommand constructor",
	)
)

// DeleteContactCommand represents a buyer's request to remove a saved
// delivery contact.
type DeleteContactCommand struct { //nolint:recvcheck //using for validation
	buyerID   kernel.UUID
	contactID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteContactCommand creates a command to delete a delivery contact.
func NewDeleteContactCommand(buyerID, contactID kernel.UUID) (DeleteContactCommand, error) {
	cmd := DeleteContactCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBuyerID(buyerID),
		cmd.setContactID(contactID),
	); err != nil {
		return DeleteContactCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteContactCommand) Validate() error {
	return c.guard.Validate(ErrDeleteContactCommandIsNotConstructed)
}

// BuyerID returns the buyer owning the contact.
func (c DeleteContactCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// ContactID returns the contact being deleted.
func (c DeleteContactCommand) ContactID() kernel.UUID {
	return c.contactID
}

func (c *DeleteContactCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	c.buyerID = buyerID
	return nil
}

func (c *DeleteContactCommand) setContactID(contactID kernel.UUID) error {
	if err := contactID.Validate(); err != nil {
		return err
	}

	c.contactID = contactID
	return nil
}
