package queries

import (
	"errors"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
	"github.com/BarinovG/EShop-API/internal/pkg/guard"
)

var (
	ErrGetCartItemQueryIsNotConstructed = errors.New(
		"GetCartItemQuery must be created via NewGetCartItemQuery constructor",
	)
)

// GetCartItemQuery retrieves a single line from the buyer's open cart.
// The lookup is buyer-scoped: another buyer's item id resolves to
// nothing, exactly like an id that never existed.
type GetCartItemQuery struct {
	buyerID kernel.UUID
	itemID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartItemQuery creates a query for one cart line.
func NewGetCartItemQuery(buyerID, itemID kernel.UUID) (GetCartItemQuery, error) {
	if err := errors.Join(buyerID.Validate(), itemID.Validate()); err != nil {
		return GetCartItemQuery{}, err
	}

	return GetCartItemQuery{
		buyerID: buyerID,
		itemID:  itemID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartItemQuery) Validate() error {
	return q.guard.Validate(ErrGetCartItemQueryIsNotConstructed)
}

// BuyerID returns the buyer whose cart is being read.
func (q GetCartItemQuery) BuyerID() kernel.UUID {
	return q.buyerID
}

// ItemID returns the cart line being read.
func (q GetCartItemQuery) ItemID() kernel.UUID {
	return q.itemID
}
