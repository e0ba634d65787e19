package queries

import (
	"errors"
	"time"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
	"github.com/BarinovG/EShop-API/internal/pkg/guard"
)

var (
	ErrGetSellerOrdersQueryIsNotConstructed = errors.New(
		"GetSellerOrdersQuery must be created via NewGetSellerOrdersQuery constructor",
	)
)

// GetSellerOrdersQuery retrieves placed orders containing at least one
// offer from the seller's shop. Each order appears once no matter how
// many of its lines belong to the seller, and the reported total covers
// the whole order, other sellers' lines included.
type GetSellerOrdersQuery struct {
	sellerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSellerOrdersQuery creates a query for a seller's incoming orders.
func NewGetSellerOrdersQuery(sellerID kernel.UUID) (GetSellerOrdersQuery, error) {
	if err := sellerID.Validate(); err != nil {
		return GetSellerOrdersQuery{}, err
	}

	return GetSellerOrdersQuery{
		sellerID: sellerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSellerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetSellerOrdersQueryIsNotConstructed)
}

// SellerID returns the seller whose incoming orders are being read.
func (q GetSellerOrdersQuery) SellerID() kernel.UUID {
	return q.sellerID
}

// SellerOrderResponse is one incoming order from the seller's point of
// view: the order header, its full total, and the delivery contact
// bound at placement.
type SellerOrderResponse struct {
	OrderID   kernel.UUID
	Status    string
	Total     int64
	CreatedAt time.Time
	City      string
	Street    string
	House     string
	Phone     string
}
