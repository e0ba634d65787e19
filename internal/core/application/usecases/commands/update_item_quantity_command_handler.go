package commands

import (
	"context"
)

// UpdateItemQuantityCommandHandler handles quantity changes for line
// items in the buyer's open cart.
//
// The offer's stock is looked up freshly for each update, never cached.
// Reading stock and writing the quantity are two separate statements
// with no guard against a concurrent stock change in between; the store
// offers no stronger guarantee here and this layer does not add one.
type UpdateItemQuantityCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewUpdateItemQuantityCommandHandler creates a handler for cart
// quantity updates. Requires a CartUoWFactory for transactional persistence.
func NewUpdateItemQuantityCommandHandler(uowFactory CartUoWFactory) UpdateItemQuantityCommandHandler {
	return UpdateItemQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the quantity update.
// Resolves the item under the buyer+open-cart scope, validates the new
// quantity against the referenced offer's current stock, and persists
// the change. Returns the updated item with its recomputed subtotal.
// Applying the same valid quantity twice yields the same stored state.
func (h UpdateItemQuantityCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateItemQuantityCommand,
) (LineItemResult, error) {
	if err := cmd.Validate(); err != nil {
		return LineItemResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return LineItemResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	item, err := uow.LineItemRepository().GetForBuyerCart(ctx, cmd.BuyerID(), cmd.ItemID())
	if err != nil {
		return LineItemResult{}, err
	}

	offer, err := uow.OfferRepository().Get(ctx, item.OfferID())
	if err != nil {
		return LineItemResult{}, err
	}

	if !offer.HasStock(cmd.Quantity()) {
		return LineItemResult{}, ErrInsufficientStock
	}

	if err = item.ChangeQuantity(cmd.Quantity()); err != nil {
		return LineItemResult{}, err
	}

	if err = uow.LineItemRepository().Update(ctx, item); err != nil {
		return LineItemResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return LineItemResult{}, err
	}

	return LineItemResult{
		ItemID:   item.ID(),
		OrderID:  item.OrderID(),
		OfferID:  item.OfferID(),
		Quantity: item.Quantity(),
		Subtotal: item.Subtotal(offer.Price()),
	}, nil
}
