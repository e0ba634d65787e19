package catalog

import (
	"errors"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
	"github.com/BarinovG/EShop-API/internal/pkg/errs"
)

var (
	// ErrShopIsNotConstructed is returned when a Shop was not created
	// through NewShop or RestoreShop.
	ErrShopIsNotConstructed = errors.New("Shop must be created via NewShop constructor")
)

// Shop is a seller's storefront. It owns offers and is itself owned by
// exactly one seller account; seller order listings resolve through
// this ownership.
type Shop struct {
	id            kernel.UUID
	ownerID       kernel.UUID
	name          string
	acceptsOrders bool
	isConstructed bool
}

// NewShop creates a validated shop that accepts orders.
func NewShop(id, ownerID kernel.UUID, name string) (*Shop, error) {
	s := &Shop{
		acceptsOrders: true,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOwnerID(ownerID),
		s.setName(name),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShop reconstructs a shop from persistence.
func RestoreShop(id, ownerID kernel.UUID, name string, acceptsOrders bool) (*Shop, error) {
	s, err := NewShop(id, ownerID, name)
	if err != nil {
		return nil, err
	}
	s.acceptsOrders = acceptsOrders
	return s, nil
}

// Validate ensures the Shop was properly constructed.
func (s *Shop) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShopIsNotConstructed
	}
	return nil
}

// ID returns the shop's unique identifier.
func (s *Shop) ID() kernel.UUID {
	return s.id
}

// OwnerID returns the owning seller's identifier.
func (s *Shop) OwnerID() kernel.UUID {
	return s.ownerID
}

// Name returns the shop name.
func (s *Shop) Name() string {
	return s.name
}

// AcceptsOrders reports whether the shop currently takes new orders.
func (s *Shop) AcceptsOrders() bool {
	return s.acceptsOrders
}

// SetAcceptsOrders toggles whether the shop takes new orders.
func (s *Shop) SetAcceptsOrders(accepts bool) {
	s.acceptsOrders = accepts
}

func (s *Shop) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shop) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	s.ownerID = ownerID
	return nil
}

func (s *Shop) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}
