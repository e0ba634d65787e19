package ports

import (
	"context"
	"time"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
	"github.com/BarinovG/EShop-API/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order in OpenCart status is the buyer's cart; placement is a
// conditional update whose filter carries the ownership check.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetOpenCart retrieves the buyer's open cart.
	// Returns an ObjectNotFoundError when the buyer has no open cart.
	GetOpenCart(ctx context.Context, buyerID kernel.UUID) (*order.Order, error)

	// Place atomically binds the contact and flips the status to Placed
	// with a single conditional update filtered on
	// (id, buyer, OpenCart status). Zero rows affected is reported as an
	// ObjectNotFoundError: the caller cannot distinguish "no such
	// order", "foreign order", and "already placed", matching the
	// one-shot transition semantics. No locking beyond the single
	// statement is used.
	Place(ctx context.Context, buyerID, orderID, contactID kernel.UUID) error

	// GetStaleOpenCarts retrieves open carts last touched before the
	// cutoff. Used by the stale-cart cleanup job.
	GetStaleOpenCarts(ctx context.Context, cutoff time.Time) ([]*order.Order, error)

	// Delete removes an order row. Only open carts are ever deleted;
	// placed orders are permanent.
	Delete(ctx context.Context, id kernel.UUID) error
}
