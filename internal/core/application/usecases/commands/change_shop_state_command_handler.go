package commands

import (
	"context"
)

// ChangeShopStateCommandHandler handles toggling a shop's availability.
type ChangeShopStateCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewChangeShopStateCommandHandler creates a handler for shop state changes.
func NewChangeShopStateCommandHandler(uowFactory CatalogUoWFactory) ChangeShopStateCommandHandler {
	return ChangeShopStateCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the state change. A seller without a shop gets an
// ObjectNotFoundError from the lookup.
func (h ChangeShopStateCommandHandler) Handle(ctx context.Context, cmd ChangeShopStateCommand) error {
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

	shop, err := uow.ShopRepository().GetByOwner(ctx, cmd.SellerID())
	if err != nil {
		return err
	}

	shop.SetAcceptsOrders(cmd.AcceptsOrders())

	if err = uow.ShopRepository().Update(ctx, shop); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
