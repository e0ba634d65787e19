package contactrepo

import (
	"context"
	"errors"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/contact"
	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
	"github.com/BarinovG/EShop-API/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormContactRepository implements ContactRepository using GORM.
// Every lookup and delete is scoped to the owning buyer.
type GormContactRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormContactRepository creates a new GORM contact repository.
func NewGormContactRepository(db *gorm.DB, tracker aggregateTracker) *GormContactRepository {
	return &GormContactRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new contact to the database.
func (r *GormContactRepository) Add(ctx context.Context, c *contact.Contact) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := fromDomain(c)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(c.ID(), c)
	return nil
}

// Update saves changes to an existing contact owned by the buyer.
func (r *GormContactRepository) Update(ctx context.Context, c *contact.Contact) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := fromDomain(c)
	result := r.db.WithContext(ctx).
		Model(&ContactDTO{}).
		Where("id = ? AND buyer_id = ?", dto.ID, dto.BuyerID).
		Updates(map[string]any{
			"city":   dto.City,
			"street": dto.Street,
			"house":  dto.House,
			"phone":  dto.Phone,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("contact", c.ID().String())
	}

	r.tracker.TrackAggregate(c.ID(), c)
	return nil
}

// Get retrieves a contact if it is owned by the buyer.
func (r *GormContactRepository) Get(ctx context.Context, buyerID, contactID kernel.UUID) (*contact.Contact, error) {
	if err := errors.Join(buyerID.Validate(), contactID.Validate()); err != nil {
		return nil, err
	}

	var dto ContactDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND buyer_id = ?", contactID.Bytes(), buyerID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("contact", contactID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByBuyer retrieves all contacts owned by the buyer.
func (r *GormContactRepository) GetAllByBuyer(ctx context.Context, buyerID kernel.UUID) ([]*contact.Contact, error) {
	if err := buyerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ContactDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "buyer_id = ?", buyerID.Bytes()).Error; err != nil {
		return nil, err
	}

	contacts := make([]*contact.Contact, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}

	return contacts, nil
}

// Delete removes the contact under the buyer scope. Deleting an absent
// contact is a no-op.
func (r *GormContactRepository) Delete(ctx context.Context, buyerID, contactID kernel.UUID) error {
	if err := errors.Join(buyerID.Validate(), contactID.Validate()); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("id = ? AND buyer_id = ?", contactID.Bytes(), buyerID.Bytes()).
		Delete(&ContactDTO{}).Error
}
