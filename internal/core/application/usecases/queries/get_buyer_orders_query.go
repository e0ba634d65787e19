package queries

import (
	"errors"
	"time"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
	"github.com/BarinovG/EShop-API/internal/pkg/guard"
)

var (
	ErrGetBuyerOrdersQueryIsNotConstructed = errors.New(
		"GetBuyerOrdersQuery must be created via NewGetBuyerOrdersQuery constructor",
	)
)

// GetBuyerOrdersQuery retrieves the buyer's placed orders. The open
// cart is excluded: it is not an order until placement.
type GetBuyerOrdersQuery struct {
	buyerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBuyerOrdersQuery creates a query for the buyer's order history.
func NewGetBuyerOrdersQuery(buyerID kernel.UUID) (GetBuyerOrdersQuery, error) {
	if err := buyerID.Validate(); err != nil {
		return GetBuyerOrdersQuery{}, err
	}

	return GetBuyerOrdersQuery{
		buyerID: buyerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBuyerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetBuyerOrdersQueryIsNotConstructed)
}

// BuyerID returns the buyer whose orders are being read.
func (q GetBuyerOrdersQuery) BuyerID() kernel.UUID {
	return q.buyerID
}

// OrderResponse is one placed order with its aggregate total, summed
// over every line at the offers' current prices.
type OrderResponse struct {
	OrderID   kernel.UUID
	Status    string
	Total     int64
	CreatedAt time.Time
}
