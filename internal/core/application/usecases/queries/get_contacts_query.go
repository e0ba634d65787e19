package queries

import (
	"errors"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
	"github.com/BarinovG/EShop-API/internal/pkg/guard"
)

var (
	ErrGetContactsQueryIsNotConstructed = errors.New(
		"GetContactsQuery must be created via NewGetContactsQuery constructor",
	)
)

// GetContactsQuery retrieves every delivery contact the buyer has saved.
type GetContactsQuery struct {
	buyerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetContactsQuery creates a query for the buyer's saved contacts.
func NewGetContactsQuery(buyerID kernel.UUID) (GetContactsQuery, error) {
	if err := buyerID.Validate(); err != nil {
		return GetContactsQuery{}, err
	}

	return GetContactsQuery{
		buyerID: buyerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetContactsQuery) Validate() error {
	return q.guard.Validate(ErrGetContactsQueryIsNotConstructed)
}

// BuyerID returns the buyer whose contacts are being read.
func (q GetContactsQuery) BuyerID() kernel.UUID {
	return q.buyerID
}

// ContactResponse is one saved delivery contact.
type ContactResponse struct {
	ContactID kernel.UUID
	City      string
	Street    string
	House     string
	Phone     string
}
