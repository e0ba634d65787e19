package queries

import (
	"context"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetContactsQueryHandler reads the buyer's saved delivery contacts.
type GetContactsQueryHandler struct {
	db *gorm.DB
}

// NewGetContactsQueryHandler creates a handler for contact list reads.
func NewGetContactsQueryHandler(db *gorm.DB) GetContactsQueryHandler {
	return GetContactsQueryHandler{db: db}
}

// Handle executes the query. A buyer with no contacts gets an empty slice.
func (h GetContactsQueryHandler) Handle(
	ctx context.Context,
	query GetContactsQuery,
) ([]ContactResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	contacts := make([]ContactResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			city,
			street,
			house,
			phone
		FROM contacts
		WHERE buyer_id = ?
		ORDER BY id
	`, query.BuyerID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ContactResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.City,
			&resp.Street,
			&resp.House,
			&resp.Phone,
		)
		if err != nil {
			return nil, err
		}

		if resp.ContactID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		contacts = append(contacts, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return contacts, nil
}
