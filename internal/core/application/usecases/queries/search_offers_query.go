package queries

import (
	"errors"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
	"github.com/BarinovG/EShop-API/internal/pkg/guard"
)

var (
	ErrSearchOffersQueryIsNotConstructed = errors.New(
		"SearchOffersQuery must be created via NewSearchOffersQuery constructor",
	)
)

// SearchOffersQuery searches the catalog by offer name. Only offers of
// shops currently accepting orders are visible; an empty term matches
// everything.
type SearchOffersQuery struct {
	term string

	guard guard.ConstructorGuard
}

// NewSearchOffersQuery creates a catalog search query.
func NewSearchOffersQuery(term string) SearchOffersQuery {
	return SearchOffersQuery{
		term:  term,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q SearchOffersQuery) Validate() error {
	return q.guard.Validate(ErrSearchOffersQueryIsNotConstructed)
}

// Term returns the search term.
func (q SearchOffersQuery) Term() string {
	return q.term
}

// OfferResponse is one catalog offer visible to buyers.
type OfferResponse struct {
	OfferID  kernel.UUID
	ShopID   kernel.UUID
	ShopName string
	Name     string
	Price    int64
	Stock    int
}
