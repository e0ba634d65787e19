package queries

import (
	"context"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
	"github.com/BarinovG/EShop-API/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBuyerOrdersQueryHandler reads the buyer's placed orders with their
// totals aggregated in SQL.
type GetBuyerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetBuyerOrdersQueryHandler creates a handler for order history reads.
func NewGetBuyerOrdersQueryHandler(db *gorm.DB) GetBuyerOrdersQueryHandler {
	return GetBuyerOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by order id for
// consistent output; a buyer with no placed orders gets an empty slice.
func (h GetBuyerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetBuyerOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			COALESCE(SUM(li.quantity * ofr.price), 0) AS total,
			o.created_at
		FROM orders o
		LEFT JOIN line_items li ON li.order_id = o.id
		LEFT JOIN offers ofr ON ofr.id = li.offer_id
		WHERE o.buyer_id = ? AND o.status != ?
		GROUP BY o.id, o.status, o.created_at
		ORDER BY o.id
	`, query.BuyerID().String(), order.OpenCart).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp OrderResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&status,
			&resp.Total,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.OrderID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		resp.Status = order.Status(status).String()

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
