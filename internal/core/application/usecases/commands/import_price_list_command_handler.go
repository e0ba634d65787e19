package commands

import (
	"context"
	"errors"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/catalog"
	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
	"github.com/BarinovG/EShop-API/internal/core/ports"
	"github.com/BarinovG/EShop-API/internal/pkg/errs"
)

// ImportPriceListCommandHandler handles partner price-list imports.
// The seller's shop is created on first import; subsequent imports
// upsert offers under it, so repeating an import converges to the same
// catalog state.
type ImportPriceListCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewImportPriceListCommandHandler creates a handler for price-list imports.
func NewImportPriceListCommandHandler(uowFactory CatalogUoWFactory) ImportPriceListCommandHandler {
	return ImportPriceListCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the import command. All entries are applied in one
// transaction: either the whole price list lands or none of it does.
func (h ImportPriceListCommandHandler) Handle(ctx context.Context, cmd ImportPriceListCommand) error {
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

	shop, err := getOrCreateShop(ctx, uow.ShopRepository(), cmd.SellerID(), cmd.ShopName())
	if err != nil {
		return err
	}

	for _, entry := range cmd.Entries() {
		price, err := kernel.NewPrice(entry.Price)
		if err != nil {
			return err
		}

		offer, err := catalog.NewOffer(entry.OfferID, shop.ID(), entry.Name, price, entry.Stock)
		if err != nil {
			return err
		}

		if err = uow.OfferRepository().Upsert(ctx, offer); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// getOrCreateShop resolves the seller's shop, creating it on first
// import with the name carried by the price list.
func getOrCreateShop(
	ctx context.Context,
	repo ports.ShopRepository,
	sellerID kernel.UUID,
	name string,
) (*catalog.Shop, error) {
	shop, err := repo.GetByOwner(ctx, sellerID)
	if err == nil {
		return shop, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	shop, err = catalog.NewShop(kernel.NewUUID(), sellerID, name)
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, shop); err != nil {
		return nil, err
	}

	return shop, nil
}
