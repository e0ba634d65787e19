package orderrepo

import (
	"context"
	"errors"
	"time"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
	"github.com/BarinovG/EShop-API/internal/core/domain/model/order"
	"github.com/BarinovG/EShop-API/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetOpenCart retrieves the buyer's open cart.
func (r *GormOrderRepository) GetOpenCart(ctx context.Context, buyerID kernel.UUID) (*order.Order, error) {
	if err := buyerID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		First(&dto, "buyer_id = ? AND status = ?", buyerID.Bytes(), int(order.OpenCart)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("open cart", buyerID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Place flips the order to placed and binds the contact with a single
// conditional update. The filter carries the ownership and status
// checks, so absent, foreign, and already placed orders all land in the
// zero-rows branch and are reported as not found.
func (r *GormOrderRepository) Place(ctx context.Context, buyerID, orderID, contactID kernel.UUID) error {
	if err := errors.Join(buyerID.Validate(), orderID.Validate(), contactID.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND buyer_id = ? AND status = ?",
			orderID.Bytes(), buyerID.Bytes(), int(order.OpenCart)).
		Updates(map[string]any{
			"contact_id": contactID.Bytes(),
			"status":     int(order.Placed),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", orderID.String())
	}

	return nil
}

// GetStaleOpenCarts retrieves open carts last updated before the cutoff.
func (r *GormOrderRepository) GetStaleOpenCarts(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND updated_at < ?", int(order.OpenCart), cutoff).Error
	if err != nil {
		return nil, err
	}

	carts := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		cart, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		carts = append(carts, cart)
	}

	return carts, nil
}

// Delete removes an order row by ID.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes()).Error
}
