package ports

import (
	"context"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
	"github.com/BarinovG/EShop-API/internal/core/domain/model/order"
)

// LineItemRepository defines the persistence contract for line items.
// Item lookups are always scoped to the buyer's open cart, so a buyer
// can never resolve another buyer's items.
type LineItemRepository interface {
	// Add persists a new line item. A duplicate (order, offer) pair
	// violates a uniqueness constraint and surfaces as a storage error.
	Add(ctx context.Context, item *order.LineItem) error

	// Update persists a changed quantity for an existing line item.
	Update(ctx context.Context, item *order.LineItem) error

	// GetForBuyerCart retrieves one line item if it belongs to the
	// buyer's open cart. Returns an ObjectNotFoundError otherwise.
	GetForBuyerCart(ctx context.Context, buyerID, itemID kernel.UUID) (*order.LineItem, error)

	// DeleteForBuyerCart deletes the line item under the buyer+open-cart
	// scope. Deleting an already absent item is not an error.
	DeleteForBuyerCart(ctx context.Context, buyerID, itemID kernel.UUID) error

	// CountByOrder returns the number of line items in an order.
	CountByOrder(ctx context.Context, orderID kernel.UUID) (int64, error)

	// DeleteByOrder removes every line item of an order. Used by the
	// stale-cart cleanup job.
	DeleteByOrder(ctx context.Context, orderID kernel.UUID) error
}
