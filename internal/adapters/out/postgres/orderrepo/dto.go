// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
	"github.com/BarinovG/EShop-API/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// A partial unique index on (buyer_id) WHERE status = open enforces the
// one-open-cart-per-buyer rule; it is created during migration
// because GORM tags cannot express partial indexes.
type OrderDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BuyerID   uuid.UUID  `gorm:"type:uuid;index"`
	ContactID *uuid.UUID `gorm:"type:uuid"`
	Status    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var contactID *uuid.UUID
	if id := aggregate.Contact(); id != nil {
		raw := id.Bytes()
		contactID = &raw
	}

	return OrderDTO{
		ID:        aggregate.ID().Bytes(),
		BuyerID:   aggregate.BuyerID().Bytes(),
		ContactID: contactID,
		Status:    int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to an order aggregate.
// Reconstructs the aggregate including status and contact binding using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	var contactID *kernel.UUID
	if dto.ContactID != nil {
		cID, contactErr := kernel.UUIDFromBytes((*dto.ContactID)[:])
		if contactErr != nil {
			return nil, contactErr
		}

		contactID = &cID
	}

	return order.RestoreOrder(id, buyerID, order.Status(dto.Status), contactID)
}
