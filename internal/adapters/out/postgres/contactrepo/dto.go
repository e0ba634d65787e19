// Package contactrepo provides data transfer objects and mapping functions
// for delivery contact persistence.
package contactrepo

import (
	"time"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/contact"
	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ContactDTO represents the database structure for persisting contacts.
type ContactDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	BuyerID   uuid.UUID `gorm:"type:uuid;index"`
	City      string
	Street    string
	House     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for contact entities.
func (ContactDTO) TableName() string {
	return "contacts"
}

func fromDomain(c *contact.Contact) ContactDTO {
	return ContactDTO{
		ID:      c.ID().Bytes(),
		BuyerID: c.BuyerID().Bytes(),
		City:    c.City(),
		Street:  c.Street(),
		House:   c.House(),
		Phone:   c.Phone(),
	}
}

func toDomain(dto ContactDTO) (*contact.Contact, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	return contact.RestoreContact(id, buyerID, dto.City, dto.Street, dto.House, dto.Phone)
}
