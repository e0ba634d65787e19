package commands

import (
	"context"
)

// RemoveItemCommandHandler handles removing a line item from the
// buyer's open cart. Removal is idempotent: deleting an item that is
// already gone (or was never in the buyer's cart) succeeds silently.
type RemoveItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveItemCommandHandler creates a handler for cart item removal.
func NewRemoveItemCommandHandler(uowFactory CartUoWFactory) RemoveItemCommandHandler {
	return RemoveItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove-item command. The delete is scoped to the
// buyer's open cart, so a foreign item id is indistinguishable from an
// absent one.
func (h RemoveItemCommandHandler) Handle(ctx context.Context, cmd RemoveItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.LineItemRepository().DeleteForBuyerCart(ctx, cmd.BuyerID(), cmd.ItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
