// Package catalogrepo provides data transfer objects and mapping functions
// for shop and offer persistence.
package catalogrepo

import (
	"time"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/catalog"
	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// OfferDTO represents the database structure for persisting offers.
// Price is stored in minor currency units.
type OfferDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShopID    uuid.UUID `gorm:"type:uuid;index"`
	Name      string
	Price     int64
	Stock     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for offer entities.
func (OfferDTO) TableName() string {
	return "offers"
}

// ShopDTO represents the database structure for persisting shops.
// A seller owns at most one shop, enforced by the unique owner index.
type ShopDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Name          string
	AcceptsOrders bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the database table name for shop entities.
func (ShopDTO) TableName() string {
	return "shops"
}

func offerFromDomain(offer *catalog.Offer) OfferDTO {
	return OfferDTO{
		ID:     offer.ID().Bytes(),
		ShopID: offer.ShopID().Bytes(),
		Name:   offer.Name(),
		Price:  offer.Price().Amount(),
		Stock:  offer.Stock(),
	}
}

func offerToDomain(dto OfferDTO) (*catalog.Offer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shopID, err := kernel.UUIDFromBytes(dto.ShopID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	return catalog.RestoreOffer(id, shopID, dto.Name, price, dto.Stock)
}

func shopFromDomain(shop *catalog.Shop) ShopDTO {
	return ShopDTO{
		ID:            shop.ID().Bytes(),
		OwnerID:       shop.OwnerID().Bytes(),
		Name:          shop.Name(),
		AcceptsOrders: shop.AcceptsOrders(),
	}
}

func shopToDomain(dto ShopDTO) (*catalog.Shop, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	return catalog.RestoreShop(id, ownerID, dto.Name, dto.AcceptsOrders)
}
