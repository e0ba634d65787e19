package commands

import (
	"context"
	"time"
)

// CleanupStaleCartsCommandHandler purges abandoned open carts. Placed
// orders are never touched: the stale query filters on open status, so
// a cart placed between the read and the delete survives via the
// transaction's snapshot.
type CleanupStaleCartsCommandHandler struct {
	uowFactory CleanupUoWFactory
}

// NewCleanupStaleCartsCommandHandler creates a handler for cart cleanup.
func NewCleanupStaleCartsCommandHandler(uowFactory CleanupUoWFactory) CleanupStaleCartsCommandHandler {
	return CleanupStaleCartsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes every open cart last touched before now minus the TTL,
// deleting line items first to satisfy the foreign key. Returns the
// number of carts removed.
func (h CleanupStaleCartsCommandHandler) Handle(ctx context.Context, cmd CleanupStaleCartsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-cmd.TTL())

	carts, err := uow.OrderRepository().GetStaleOpenCarts(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	for _, cart := range carts {
		if err = uow.LineItemRepository().DeleteByOrder(ctx, cart.ID()); err != nil {
			return 0, err
		}

		if err = uow.OrderRepository().Delete(ctx, cart.ID()); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(carts), nil
}
