// Package contact provides the delivery contact entity: an address and
// phone record owned by a buyer. Placed orders reference a contact but
// never own it.
package contact

import (
	"errors"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
	"github.com/BarinovG/EShop-API/internal/pkg/errs"
)

var (
	// ErrContactIsNotConstructed is returned when a Contact was not created
	// through NewContact or RestoreContact.
	ErrContactIsNotConstructed = errors.New("Contact must be created via NewContact constructor")
)

// Contact is a buyer-owned delivery address and phone record.
type Contact struct {
	id            kernel.UUID
	buyerID       kernel.UUID
	city          string
	street        string
	house         string
	phone         string
	isConstructed bool
}

// NewContact creates a validated contact. City, street, and phone are
// required; house may be empty for addresses without one.
func NewContact(id, buyerID kernel.UUID, city, street, house, phone string) (*Contact, error) {
	c := &Contact{
		house:         house,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setBuyerID(buyerID),
		c.setCity(city),
		c.setStreet(street),
		c.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreContact reconstructs a contact from persistence.
func RestoreContact(id, buyerID kernel.UUID, city, street, house, phone string) (*Contact, error) {
	return NewContact(id, buyerID, city, street, house, phone)
}

// Validate ensures the Contact was properly constructed.
func (c *Contact) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrContactIsNotConstructed
	}
	return nil
}

// ID returns the contact's unique identifier.
func (c *Contact) ID() kernel.UUID {
	return c.id
}

// BuyerID returns the owning buyer's identifier.
func (c *Contact) BuyerID() kernel.UUID {
	return c.buyerID
}

// City returns the city part of the address.
func (c *Contact) City() string {
	return c.city
}

// Street returns the street part of the address.
func (c *Contact) Street() string {
	return c.street
}

// House returns the house part of the address (may be empty).
func (c *Contact) House() string {
	return c.house
}

// Phone returns the contact phone number.
func (c *Contact) Phone() string {
	return c.phone
}

// Update replaces the address and phone fields after validating them.
// Ownership and identity never change.
func (c *Contact) Update(city, street, house, phone string) error {
	updated := Contact{}
	if err := errors.Join(
		updated.setCity(city),
		updated.setStreet(street),
		updated.setPhone(phone),
	); err != nil {
		return err
	}

	c.city = city
	c.street = street
	c.house = house
	c.phone = phone
	return nil
}

func (c *Contact) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Contact) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}
	c.buyerID = buyerID
	return nil
}

func (c *Contact) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	c.city = city
	return nil
}

func (c *Contact) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	c.street = street
	return nil
}

func (c *Contact) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}
