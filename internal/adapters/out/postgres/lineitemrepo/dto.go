// Package lineitemrepo provides data transfer objects and mapping functions
// for cart line item persistence.
package lineitemrepo

import (
	"time"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
	"github.com/BarinovG/EShop-API/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// LineItemDTO represents the database structure for persisting line items.
// The composite unique index on (order_id, offer_id) guarantees an offer
// appears at most once per order; a second add of the same offer fails
// at the store instead of silently merging quantities.
type LineItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_line_items_order_offer"`
	OfferID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_line_items_order_offer"`
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for line item entities.
func (LineItemDTO) TableName() string {
	return "line_items"
}

func fromDomain(item *order.LineItem) LineItemDTO {
	return LineItemDTO{
		ID:       item.ID().Bytes(),
		OrderID:  item.OrderID().Bytes(),
		OfferID:  item.OfferID().Bytes(),
		Quantity: item.Quantity(),
	}
}

func toDomain(dto LineItemDTO) (*order.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	offerID, err := kernel.UUIDFromBytes(dto.OfferID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreLineItem(id, orderID, offerID, dto.Quantity)
}
