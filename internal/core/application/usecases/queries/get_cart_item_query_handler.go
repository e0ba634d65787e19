package queries

import (
	"context"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
	"github.com/BarinovG/EShop-API/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCartItemQueryHandler reads one line of the buyer's open cart.
type GetCartItemQueryHandler struct {
	db *gorm.DB
}

// NewGetCartItemQueryHandler creates a handler for single cart line reads.
func NewGetCartItemQueryHandler(db *gorm.DB) GetCartItemQueryHandler {
	return GetCartItemQueryHandler{db: db}
}

// Handle executes the query. Returns (nil, nil) when the item is not in
// the buyer's open cart; the caller decides whether that is an error.
func (h GetCartItemQueryHandler) Handle(
	ctx context.Context,
	query GetCartItemQuery,
) (*CartItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			li.id,
			li.offer_id,
			ofr.name,
			li.quantity,
			ofr.price,
			li.quantity * ofr.price AS subtotal
		FROM line_items li
		JOIN orders o ON o.id = li.order_id
		JOIN offers ofr ON ofr.id = li.offer_id
		WHERE li.id = ? AND o.buyer_id = ? AND o.status = ?
	`, query.ItemID().String(), query.BuyerID().String(), order.OpenCart).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var item CartItemResponse
	var itemID, offerID uuid.UUID

	err = rows.Scan(
		&itemID,
		&offerID,
		&item.OfferName,
		&item.Quantity,
		&item.UnitPrice,
		&item.Subtotal,
	)
	if err != nil {
		return nil, err
	}

	if item.ItemID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
		return nil, err
	}
	if item.OfferID, err = kernel.UUIDFromBytes(offerID[:]); err != nil {
		return nil, err
	}

	return &item, nil
}
