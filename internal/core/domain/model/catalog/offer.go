// Package catalog provides the domain entities for a shop's priced,
// stocked product listings. An Offer supplies the unit price and the
// available stock the cart operations validate against; from the
// cart's perspective offers are immutable.
package catalog

import (
	"errors"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
	"github.com/BarinovG/EShop-API/internal/pkg/errs"
)

var (
	// ErrOfferIsNotConstructed is returned when an Offer was not created
	// through NewOffer or RestoreOffer.
	ErrOfferIsNotConstructed = errors.New("Offer must be created via NewOffer constructor")
)

// Offer is a shop-scoped listing of a catalog product with a unit
// price and an available stock quantity.
type Offer struct {
	id            kernel.UUID
	shopID        kernel.UUID
	name          string
	price         kernel.Price
	stock         int
	isConstructed bool
}

// NewOffer creates a validated offer. Stock may be zero (sold out) but
// never negative.
func NewOffer(id, shopID kernel.UUID, name string, price kernel.Price, stock int) (*Offer, error) {
	o := &Offer{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setShopID(shopID),
		o.setName(name),
		o.setPrice(price),
		o.setStock(stock),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOffer reconstructs an offer from persistence.
func RestoreOffer(id, shopID kernel.UUID, name string, price kernel.Price, stock int) (*Offer, error) {
	return NewOffer(id, shopID, name, price, stock)
}

// Validate ensures the Offer was properly constructed.
func (o *Offer) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOfferIsNotConstructed
	}
	return nil
}

// ID returns the offer's unique identifier.
func (o *Offer) ID() kernel.UUID {
	return o.id
}

// ShopID returns the owning shop's identifier.
func (o *Offer) ShopID() kernel.UUID {
	return o.shopID
}

// Name returns the product name of the listing.
func (o *Offer) Name() string {
	return o.name
}

// Price returns the unit price.
func (o *Offer) Price() kernel.Price {
	return o.price
}

// Stock returns the available stock quantity.
func (o *Offer) Stock() int {
	return o.stock
}

// HasStock reports whether the requested quantity can be fulfilled by
// the currently known stock. Callers must look the offer up freshly
// before the check.
func (o *Offer) HasStock(quantity int) bool {
	return quantity <= o.stock
}

func (o *Offer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Offer) setShopID(shopID kernel.UUID) error {
	if err := shopID.Validate(); err != nil {
		return err
	}
	o.shopID = shopID
	return nil
}

func (o *Offer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	o.name = name
	return nil
}

func (o *Offer) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	o.price = price
	return nil
}

func (o *Offer) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidError("stock")
	}
	o.stock = stock
	return nil
}
