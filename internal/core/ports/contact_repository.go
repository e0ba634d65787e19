package ports

import (
	"context"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/contact"
	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
)

// ContactRepository defines the persistence contract for delivery
// contacts. All lookups are scoped to the owning buyer.
type ContactRepository interface {
	// Add persists a new contact.
	Add(ctx context.Context, c *contact.Contact) error

	// Update persists changes to an existing contact owned by the buyer.
	Update(ctx context.Context, c *contact.Contact) error

	// Get retrieves a contact if it is owned by the buyer.
	// Returns an ObjectNotFoundError otherwise.
	Get(ctx context.Context, buyerID, contactID kernel.UUID) (*contact.Contact, error)

	// GetAllByBuyer retrieves all contacts owned by the buyer.
	GetAllByBuyer(ctx context.Context, buyerID kernel.UUID) ([]*contact.Contact, error)

	// Delete removes the contact under the buyer scope.
	// Deleting an absent contact is not an error.
	Delete(ctx context.Context, buyerID, contactID kernel.UUID) error
}
