package catalogrepo

import (
	"context"
	"errors"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/catalog"
	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
	"github.com/BarinovG/EShop-API/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrOfferBoundToAnotherShop is reported when a price-list import
// reuses an offer id that already belongs to a different shop.
var ErrOfferBoundToAnotherShop = errors.New("offer id is bound to another shop")

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormOfferRepository implements OfferRepository using GORM.
type GormOfferRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormOfferRepository creates a new GORM offer repository.
func NewGormOfferRepository(db *gorm.DB, tracker aggregateTracker) *GormOfferRepository {
	return &GormOfferRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new offer to the database.
func (r *GormOfferRepository) Add(ctx context.Context, offer *catalog.Offer) error {
	if err := offer.Validate(); err != nil {
		return err
	}

	dto := offerFromDomain(offer)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(offer.ID(), offer)
	return nil
}

// Upsert creates the offer or overwrites its name, price, and stock.
// The shop binding is immutable: the conflict update only fires when
// the stored row already belongs to the same shop, so an offer id
// cannot migrate between shops and one shop's import cannot touch
// another shop's rows.
func (r *GormOfferRepository) Upsert(ctx context.Context, offer *catalog.Offer) error {
	if err := offer.Validate(); err != nil {
		return err
	}

	dto := offerFromDomain(offer)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			Where: clause.Where{Exprs: []clause.Expression{
				clause.Eq{Column: "offers.shop_id", Value: dto.ShopID},
			}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "price", "stock", "updated_at"}),
		}).
		Create(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewValueIsInvalidErrorWithCause("offerID", ErrOfferBoundToAnotherShop)
	}

	r.tracker.TrackAggregate(offer.ID(), offer)
	return nil
}

// Get retrieves an offer by ID.
func (r *GormOfferRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Offer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OfferDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("offer", id.String())
		}
		return nil, err
	}

	return offerToDomain(dto)
}

// GormShopRepository implements ShopRepository using GORM.
type GormShopRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormShopRepository creates a new GORM shop repository.
func NewGormShopRepository(db *gorm.DB, tracker aggregateTracker) *GormShopRepository {
	return &GormShopRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shop to the database.
func (r *GormShopRepository) Add(ctx context.Context, shop *catalog.Shop) error {
	if err := shop.Validate(); err != nil {
		return err
	}

	dto := shopFromDomain(shop)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(shop.ID(), shop)
	return nil
}

// Update saves an existing shop to the database.
func (r *GormShopRepository) Update(ctx context.Context, shop *catalog.Shop) error {
	if err := shop.Validate(); err != nil {
		return err
	}

	dto := shopFromDomain(shop)
	result := r.db.WithContext(ctx).
		Model(&ShopDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":           dto.Name,
			"accepts_orders": dto.AcceptsOrders,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shop", shop.ID().String())
	}

	r.tracker.TrackAggregate(shop.ID(), shop)
	return nil
}

// GetByOwner retrieves the shop owned by the given seller.
func (r *GormShopRepository) GetByOwner(ctx context.Context, ownerID kernel.UUID) (*catalog.Shop, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	var dto ShopDTO
	if err := r.db.WithContext(ctx).First(&dto, "owner_id = ?", ownerID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shop", ownerID.String())
		}
		return nil, err
	}

	return shopToDomain(dto)
}
