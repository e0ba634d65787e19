package ports

import (
	"context"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/catalog"
	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
)

// OfferRepository defines the persistence contract for catalog offers.
// Cart operations read offers freshly for every stock check; the cart
// never caches price or stock.
type OfferRepository interface {
	// Add persists a new offer.
	Add(ctx context.Context, offer *catalog.Offer) error

	// Upsert creates the offer or replaces its name, price, and stock.
	// Used by the partner price-list import.
	Upsert(ctx context.Context, offer *catalog.Offer) error

	// Get retrieves an offer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Offer, error)
}

// ShopRepository defines the persistence contract for shops.
type ShopRepository interface {
	// Add persists a new shop.
	Add(ctx context.Context, shop *catalog.Shop) error

	// Update persists changes to an existing shop.
	Update(ctx context.Context, shop *catalog.Shop) error

	// GetByOwner retrieves the shop owned by the given seller.
	// Returns an ObjectNotFoundError when the seller has no shop.
	GetByOwner(ctx context.Context, ownerID kernel.UUID) (*catalog.Shop, error)
}
