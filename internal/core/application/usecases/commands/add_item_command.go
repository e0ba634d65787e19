package commands

import (
	"errors"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
	"github.com/BarinovG/EShop-API/internal/pkg/guard"
)

var (
	ErrAddItemCommandIsNotConstructed = errors.New(
		"AddItemCommand must be created via NewAddItemCommand constructor",
	)
	// ErrQuantityIsInvalid rejects non-positive quantities before any
	// persistence call is made.
	ErrQuantityIsInvalid = errors.New("quantity must be a positive integer")
)

// AddItemCommand represents a request to put a catalog offer into the
// buyer's open cart. The cart row is created lazily when the buyer has
// none yet.
//
// Example:
//
//	cmd, err := NewAddItemCommand(buyerID, offerID, 2)
//	if err != nil {
//	    return fmt.Errorf("invalid cart input: %w", err)
//	}
//
//	handler := NewAddItemCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
type AddItemCommand struct { //nolint:recvcheck //using for validation
	buyerID  kernel.UUID
	offerID  kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

// NewAddItemCommand creates a command to add an offer to the cart.
// Validates that both identifiers are valid and quantity is positive.
func NewAddItemCommand(buyerID, offerID kernel.UUID, quantity int) (AddItemCommand, error) {
	cmd := AddItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBuyerID(buyerID),
		cmd.setOfferID(offerID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddItemCommandIsNotConstructed if validation fails.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

// BuyerID returns the buyer whose cart receives the item.
func (c AddItemCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// OfferID returns the catalog offer being added.
func (c AddItemCommand) OfferID() kernel.UUID {
	return c.offerID
}

// Quantity returns the requested amount.
func (c AddItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddItemCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	c.buyerID = buyerID
	return nil
}

func (c *AddItemCommand) setOfferID(offerID kernel.UUID) error {
	if err := offerID.Validate(); err != nil {
		return err
	}

	c.offerID = offerID
	return nil
}

func (c *AddItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
