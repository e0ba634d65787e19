package commands

import (
	"errors"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
	"github.com/BarinovG/EShop-API/internal/pkg/errs"
	"github.com/BarinovG/EShop-API/internal/pkg/guard"
)

var (
	ErrAddContactCommandIsNotConstructed = errors.New(
		"AddContactCommand must be created via NewAddContactCommand constructor",
	)
)

// AddContactCommand represents a buyer's request to save a new delivery
// contact. House is optional; city, street, and phone are required.
type AddContactCommand struct { //nolint:recvcheck //using for validation
	buyerID kernel.UUID
	city    string
	street  string
	house   string
	phone   string

	guard guard.ConstructorGuard
}

// NewAddContactCommand creates a command to add a delivery contact.
func NewAddContactCommand(buyerID kernel.UUID, city, street, house, phone string) (AddContactCommand, error) {
	cmd := AddContactCommand{
		house: house,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBuyerID(buyerID),
		cmd.setCity(city),
		cmd.setStreet(street),
		cmd.setPhone(phone),
	); err != nil {
		return AddContactCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddContactCommand) Validate() error {
	return c.guard.Validate(ErrAddContactCommandIsNotConstructed)
}

// BuyerID returns the buyer owning the contact.
func (c AddContactCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// City returns the contact's city.
func (c AddContactCommand) City() string {
	return c.city
}

// Street returns the contact's street.
func (c AddContactCommand) Street() string {
	return c.street
}

// House returns the contact's house, possibly empty.
func (c AddContactCommand) House() string {
	return c.house
}

// Phone returns the contact's phone number.
func (c AddContactCommand) Phone() string {
	return c.phone
}

func (c *AddContactCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	c.buyerID = buyerID
	return nil
}

func (c *AddContactCommand) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}

	c.city = city
	return nil
}

func (c *AddContactCommand) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}

	c.street = street
	return nil
}

func (c *AddContactCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}

	c.phone = phone
	return nil
}
