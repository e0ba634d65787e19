package commands

import (
	"errors"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
	"github.com/BarinovG/EShop-API/internal/pkg/guard"
)

var (
	ErrChangeShopStateCommandIsNotConstructed = errors.New(
		"ChangeShopStateCommand must be created via NewChangeShopStateCommand constructor",
	)
)

// ChangeShopStateCommand represents a seller's request to toggle
// whether their shop accepts orders. Offers of a paused shop disappear
// from search but stay in already-built carts.
type ChangeShopStateCommand struct { //nolint:recvcheck //using for validation
	sellerID      kernel.UUID
	acceptsOrders bool

	guard guard.ConstructorGuard
}

// NewChangeShopStateCommand creates a command to toggle shop availability.
func NewChangeShopStateCommand(sellerID kernel.UUID, acceptsOrders bool) (ChangeShopStateCommand, error) {
	cmd := ChangeShopStateCommand{
		acceptsOrders: acceptsOrders,
		guard:         guard.NewConstructorGuard(),
	}

	if err := cmd.setSellerID(sellerID); err != nil {
		return ChangeShopStateCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeShopStateCommand) Validate() error {
	return c.guard.Validate(ErrChangeShopStateCommandIsNotConstructed)
}

// SellerID returns the seller toggling their shop.
func (c ChangeShopStateCommand) SellerID() kernel.UUID {
	return c.sellerID
}

// AcceptsOrders returns the requested availability state.
func (c ChangeShopStateCommand) AcceptsOrders() bool {
	return c.acceptsOrders
}

func (c *ChangeShopStateCommand) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}

	c.sellerID = sellerID
	return nil
}
