package commands

import (
	"errors"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
	"github.com/BarinovG/EShop-API/internal/pkg/errs"
	"github.com/BarinovG/EShop-API/internal/pkg/guard"
)

var (
	ErrImportPriceListCommandIsNotConstructed = errors.New(
		"ImportPriceListCommand must be created via NewImportPriceListCommand constructor",
	)
)

// PriceListEntry is one offer row of a partner price list. Prices come
// in as minor currency units; stock is the absolute quantity on hand.
type PriceListEntry struct {
	OfferID kernel.UUID
	Name    string
	Price   int64
	Stock   int
}

// ImportPriceListCommand represents a partner's bulk catalog update.
// Listed offers are created or overwritten under the seller's shop.
type ImportPriceListCommand struct { //nolint:recvcheck //using for validation
	sellerID kernel.UUID
	shopName string
	entries  []PriceListEntry

	guard guard.ConstructorGuard
}

// NewImportPriceListCommand creates a command to import a price list.
// The entry slice must be non-empty and every entry must carry a valid
// offer id, a non-empty name, a positive price, and non-negative stock.
func NewImportPriceListCommand(
	sellerID kernel.UUID,
	shopName string,
	entries []PriceListEntry,
) (ImportPriceListCommand, error) {
	cmd := ImportPriceListCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSellerID(sellerID),
		cmd.setShopName(shopName),
		cmd.setEntries(entries),
	); err != nil {
		return ImportPriceListCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ImportPriceListCommand) Validate() error {
	return c.guard.Validate(ErrImportPriceListCommandIsNotConstructed)
}

// SellerID returns the seller importing the price list.
func (c ImportPriceListCommand) SellerID() kernel.UUID {
	return c.sellerID
}

// ShopName returns the shop name carried by the price list.
func (c ImportPriceListCommand) ShopName() string {
	return c.shopName
}

// Entries returns the offer rows of the price list.
func (c ImportPriceListCommand) Entries() []PriceListEntry {
	return c.entries
}

func (c *ImportPriceListCommand) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}

	c.sellerID = sellerID
	return nil
}

func (c *ImportPriceListCommand) setShopName(shopName string) error {
	if shopName == "" {
		return errs.NewValueIsRequiredError("shopName")
	}

	c.shopName = shopName
	return nil
}

func (c *ImportPriceListCommand) setEntries(entries []PriceListEntry) error {
	if len(entries) == 0 {
		return errs.NewValueIsRequiredError("entries")
	}

	for _, entry := range entries {
		if err := entry.OfferID.Validate(); err != nil {
			return err
		}
		if entry.Name == "" {
			return errs.NewValueIsRequiredError("entry.Name")
		}
		if entry.Price <= 0 {
			return errs.NewValueIsInvalidError("entry.Price")
		}
		if entry.Stock < 0 {
			return errs.NewValueIsInvalidError("entry.Stock")
		}
	}

	c.entries = entries
	return nil
}
