package ports

import (
	"context"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
)

// Notifier is the asynchronous notification collaborator. Delivery is
// best-effort: callers fire after their own write has committed, log a
// returned error, and never let it affect the committed transition.
type Notifier interface {
	// OrderPlaced announces that the buyer's cart became a placed order.
	OrderPlaced(ctx context.Context, buyerID, orderID kernel.UUID) error
}
