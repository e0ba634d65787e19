package commands

import (
	"errors"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
	"github.com/BarinovG/EShop-API/internal/pkg/errs"
	"github.com/BarinovG/EShop-API/internal/pkg/guard"
)

var (
	ErrUpdateContactCommandIsNotConstructed = errors.New(
		"UpdateContactCommand must be created via NewUpdateContactCommand constructor",
	)
)

// UpdateContactCommand represents a buyer's request to overwrite an
// existing delivery contact's fields.
type UpdateContactCommand struct { //nolint:recvcheck //using for validation
	buyerID   kernel.UUID
	contactID kernel.UUID
	city      string
	street    string
	house     string
	phone     string

	guard guard.ConstructorGuard
}

// NewUpdateContactCommand creates a command to update a delivery contact.
func NewUpdateContactCommand(
	buyerID, contactID kernel.UUID,
	city, street, house, phone string,
) (UpdateContactCommand, error) {
	cmd := UpdateContactCommand{
		house: house,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBuyerID(buyerID),
		cmd.setContactID(contactID),
		cmd.setCity(city),
		cmd.setStreet(street),
		cmd.setPhone(phone),
	); err != nil {
		return UpdateContactCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateContactCommand) Validate() error {
	return c.guard.Validate(ErrUpdateContactCommandIsNotConstructed)
}

// BuyerID returns the buyer owning the contact.
func (c UpdateContactCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// ContactID returns the contact being updated.
func (c UpdateContactCommand) ContactID() kernel.UUID {
	return c.contactID
}

// City returns the new city.
func (c UpdateContactCommand) City() string {
	return c.city
}

// Street returns the new street.
func (c UpdateContactCommand) Street() string {
	return c.street
}

// House returns the new house, possibly empty.
func (c UpdateContactCommand) House() string {
	return c.house
}

// Phone returns the new phone number.
func (c UpdateContactCommand) Phone() string {
	return c.phone
}

func (c *UpdateContactCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	c.buyerID = buyerID
	return nil
}

func (c *UpdateContactCommand) setContactID(contactID kernel.UUID) error {
	if err := contactID.Validate(); err != nil {
		return err
	}

	c.contactID = contactID
	return nil
}

func (c *UpdateContactCommand) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}

	c.city = city
	return nil
}

func (c *UpdateContactCommand) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}

	c.street = street
	return nil
}

func (c *UpdateContactCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}

	c.phone = phone
	return nil
}
