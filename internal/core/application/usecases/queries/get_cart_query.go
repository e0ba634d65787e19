package queries

import (
	"errors"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
	"github.com/BarinovG/EShop-API/internal/pkg/guard"
)

var (
	ErrGetCartQueryIsNotConstructed = errors.New(
		"GetCartQuery must be created via NewGetCartQuery constructor",
	)
)

// GetCartQuery retrieves the contents of the buyer's open cart.
// A buyer with no open cart gets an empty item list, not an error:
// an absent cart and an empty cart look the same from outside.
//
// Example:
//
//	query, err := NewGetCartQuery(buyerID)
//	if err != nil {
//	    return err
//	}
//
//	cart, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get cart: %w", err)
//	}
//
//	fmt.Printf("%d items, total %d\n", len(cart.Items), cart.Total)
type GetCartQuery struct {
	buyerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for the buyer's cart contents.
func NewGetCartQuery(buyerID kernel.UUID) (GetCartQuery, error) {
	if err := buyerID.Validate(); err != nil {
		return GetCartQuery{}, err
	}

	return GetCartQuery{
		buyerID: buyerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// BuyerID returns the buyer whose cart is being read.
func (q GetCartQuery) BuyerID() kernel.UUID {
	return q.buyerID
}

// CartItemResponse is one cart line with its derived subtotal
// (quantity x current offer price).
type CartItemResponse struct {
	ItemID    kernel.UUID
	OfferID   kernel.UUID
	OfferName string
	Quantity  int
	UnitPrice int64
	Subtotal  int64
}

// GetCartQueryResponse is the full cart view: every line plus the
// aggregate total over all lines.
type GetCartQueryResponse struct {
	Items []CartItemResponse
	Total int64
}
