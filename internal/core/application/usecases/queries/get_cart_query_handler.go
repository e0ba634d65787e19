package queries

import (
	"context"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
	"github.com/BarinovG/EShop-API/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCartQueryHandler reads the buyer's open cart straight from the
// database. Subtotals are computed in SQL against the offer's current
// price; the cart itself never stores money.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart reads.
// Requires a GORM database connection for query execution.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the cart query. Lines are sorted by item id for
// consistent output; the total is the sum of line subtotals.
func (h GetCartQueryHandler) Handle(
	ctx context.Context,
	query GetCartQuery,
) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	response := GetCartQueryResponse{
		Items: make([]CartItemResponse, 0),
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
		WHERE o.buyer_id = ? AND o.status = ?
		ORDER BY li.id
	`, query.BuyerID().String(), order.OpenCart).Rows()
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
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
			return GetCartQueryResponse{}, err
		}

		if item.ItemID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
			return GetCartQueryResponse{}, err
		}
		if item.OfferID, err = kernel.UUIDFromBytes(offerID[:]); err != nil {
			return GetCartQueryResponse{}, err
		}

		response.Total += item.Subtotal
		response.Items = append(response.Items, item)
	}

	if err = rows.Err(); err != nil {
		return GetCartQueryResponse{}, err
	}

	return response, nil
}
