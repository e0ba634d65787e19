package queries

import (
	"context"
	"database/sql"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
	"github.com/BarinovG/EShop-API/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSellerOrdersQueryHandler reads a seller's incoming orders. The
// seller filter is an EXISTS over the order's lines, so the aggregate
// total stays a sum over ALL lines of the order, not just the seller's.
type GetSellerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetSellerOrdersQueryHandler creates a handler for seller order reads.
func NewGetSellerOrdersQueryHandler(db *gorm.DB) GetSellerOrdersQueryHandler {
	return GetSellerOrdersQueryHandler{db: db}
}

// Handle executes the query. The contact join is a LEFT JOIN: placed
// orders always carry a contact, but the read side does not rely on it.
func (h GetSellerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetSellerOrdersQuery,
) ([]SellerOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]SellerOrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			COALESCE(SUM(li.quantity * ofr.price), 0) AS total,
			o.created_at,
			c.city,
			c.street,
			c.house,
			c.phone
		FROM orders o
		JOIN line_items li ON li.order_id = o.id
		JOIN offers ofr ON ofr.id = li.offer_id
		LEFT JOIN contacts c ON c.id = o.contact_id
		WHERE o.status = ?
		  AND EXISTS (
			SELECT 1
			FROM line_items li2
			JOIN offers ofr2 ON ofr2.id = li2.offer_id
			JOIN shops s ON s.id = ofr2.shop_id
			WHERE li2.order_id = o.id AND s.owner_id = ?
		  )
		GROUP BY o.id, o.status, o.created_at, c.city, c.street, c.house, c.phone
		ORDER BY o.id
	`, order.Placed, query.SellerID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp SellerOrderResponse
		var id uuid.UUID
		var status int
		var city, street, house, phone sql.NullString

		err = rows.Scan(
			&id,
			&status,
			&resp.Total,
			&resp.CreatedAt,
			&city,
			&street,
			&house,
			&phone,
		)
		if err != nil {
			return nil, err
		}

		if resp.OrderID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		resp.Status = order.Status(status).String()
		resp.City = city.String
		resp.Street = street.String
		resp.House = house.String
		resp.Phone = phone.String

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
