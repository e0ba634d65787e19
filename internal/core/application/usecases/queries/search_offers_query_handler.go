package queries

import (
	"context"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SearchOffersQueryHandler searches visible catalog offers by name.
type SearchOffersQueryHandler struct {
	db *gorm.DB
}

// NewSearchOffersQueryHandler creates a handler for catalog search.
func NewSearchOffersQueryHandler(db *gorm.DB) SearchOffersQueryHandler {
	return SearchOffersQueryHandler{db: db}
}

// Handle executes the search. Matching is a case-insensitive substring
// match on the offer name; offers of paused shops are filtered out.
func (h SearchOffersQueryHandler) Handle(
	ctx context.Context,
	query SearchOffersQuery,
) ([]OfferResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	offers := make([]OfferResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			ofr.id,
			ofr.shop_id,
			s.name,
			ofr.name,
			ofr.price,
			ofr.stock
		FROM offers ofr
		JOIN shops s ON s.id = ofr.shop_id
		WHERE s.accepts_orders AND ofr.name ILIKE ?
		ORDER BY ofr.name, ofr.id
	`, "%"+query.Term()+"%").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp OfferResponse
		var offerID, shopID uuid.UUID

		err = rows.Scan(
			&offerID,
			&shopID,
			&resp.ShopName,
			&resp.Name,
			&resp.Price,
			&resp.Stock,
		)
		if err != nil {
			return nil, err
		}

		if resp.OfferID, err = kernel.UUIDFromBytes(offerID[:]); err != nil {
			return nil, err
		}
		if resp.ShopID, err = kernel.UUIDFromBytes(shopID[:]); err != nil {
			return nil, err
		}

		offers = append(offers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return offers, nil
}
