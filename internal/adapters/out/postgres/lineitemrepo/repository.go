package lineitemrepo

import (
	"context"
	"errors"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
	"github.com/BarinovG/EShop-API/internal/core/domain/model/order"
	"github.com/BarinovG/EShop-API/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLineItemRepository implements LineItemRepository using GORM.
// Item lookups join through the orders table so every read and delete
// is scoped to the buyer's open cart.
type GormLineItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLineItemRepository creates a new GORM line item repository.
func NewGormLineItemRepository(db *gorm.DB, tracker aggregateTracker) *GormLineItemRepository {
	return &GormLineItemRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new line item to the database.
func (r *GormLineItemRepository) Add(ctx context.Context, item *order.LineItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Update saves a changed quantity for an existing line item.
func (r *GormLineItemRepository) Update(ctx context.Context, item *order.LineItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).
		Model(&LineItemDTO{}).
		Where("id = ?", dto.ID).
		Update("quantity", dto.Quantity)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("line item", item.ID().String())
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// GetForBuyerCart retrieves a line item if it belongs to the buyer's
// open cart.
func (r *GormLineItemRepository) GetForBuyerCart(
	ctx context.Context,
	buyerID, itemID kernel.UUID,
) (*order.LineItem, error) {
	if err := errors.Join(buyerID.Validate(), itemID.Validate()); err != nil {
		return nil, err
	}

	var dto LineItemDTO
	err := r.db.WithContext(ctx).
		Joins("JOIN orders ON orders.id = line_items.order_id").
		Where("line_items.id = ? AND orders.buyer_id = ? AND orders.status = ?",
			itemID.Bytes(), buyerID.Bytes(), int(order.OpenCart)).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("line item", itemID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// DeleteForBuyerCart deletes a line item under the buyer+open-cart
// scope. Deleting an absent item is a no-op.
func (r *GormLineItemRepository) DeleteForBuyerCart(ctx context.Context, buyerID, itemID kernel.UUID) error {
	if err := errors.Join(buyerID.Validate(), itemID.Validate()); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("id = ? AND order_id IN (SELECT id FROM orders WHERE buyer_id = ? AND status = ?)",
			itemID.Bytes(), buyerID.Bytes(), int(order.OpenCart)).
		Delete(&LineItemDTO{}).Error
}

// CountByOrder returns the number of line items in an order.
func (r *GormLineItemRepository) CountByOrder(ctx context.Context, orderID kernel.UUID) (int64, error) {
	if err := orderID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&LineItemDTO{}).
		Where("order_id = ?", orderID.Bytes()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// DeleteByOrder removes every line item of an order.
func (r *GormLineItemRepository) DeleteByOrder(ctx context.Context, orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Delete(&LineItemDTO{}).Error
}
