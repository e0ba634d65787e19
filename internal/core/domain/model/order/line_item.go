package order

import (
	"errors"
	"fmt"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
	"github.com/BarinovG/EShop-API/internal/pkg/errs"
)

var (
	// ErrLineItemIsNotConstructed is returned when a LineItem was not created
	// through NewLineItem or RestoreLineItem.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")
)

// LineItem is one quantity-bound reference to a catalog offer within a
// cart or order. It belongs to exactly one order; the parent's status
// decides whether the item is still mutable (OpenCart) or frozen
// (Placed).
//
// Quantity must always be a positive integer. Whether the quantity fits
// the offer's available stock is checked against a freshly loaded offer
// at write time, not here: stock is not part of this entity's state.
type LineItem struct {
	// id is the unique identifier for the line item
	id kernel.UUID

	// orderID is the owning cart-or-order
	orderID kernel.UUID

	// offerID references the catalog offer supplying price and stock
	offerID kernel.UUID

	// quantity is the ordered amount (always positive)
	quantity int

	// isConstructed ensures the item was created via a constructor
	isConstructed bool
}

// NewLineItem creates a validated line item bound to an order and an
// offer.
func NewLineItem(id, orderID, offerID kernel.UUID, quantity int) (*LineItem, error) {
	li := &LineItem{
		isConstructed: true,
	}

	if err := errors.Join(
		li.setID(id),
		li.setOrderID(orderID),
		li.setOfferID(offerID),
		li.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return li, nil
}

// RestoreLineItem reconstructs a line item from persistence.
func RestoreLineItem(id, orderID, offerID kernel.UUID, quantity int) (*LineItem, error) {
	return NewLineItem(id, orderID, offerID, quantity)
}

// Validate ensures the LineItem was properly constructed.
func (li *LineItem) Validate() error {
	if li == nil || !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}

	return nil
}

// ID returns the line item's unique identifier.
func (li *LineItem) ID() kernel.UUID {
	return li.id
}

// OrderID returns the owning order's identifier.
func (li *LineItem) OrderID() kernel.UUID {
	return li.orderID
}

// OfferID returns the referenced offer's identifier.
func (li *LineItem) OfferID() kernel.UUID {
	return li.offerID
}

// Quantity returns the ordered amount.
func (li *LineItem) Quantity() int {
	return li.quantity
}

// ChangeQuantity replaces the ordered amount. The new quantity must be
// a positive integer; applying the same quantity twice is a no-op that
// yields the same state, so the operation is idempotent.
func (li *LineItem) ChangeQuantity(quantity int) error {
	return li.setQuantity(quantity)
}

// Subtotal returns quantity x unit price for the given offer price.
// The value is always derived, never stored.
func (li *LineItem) Subtotal(price kernel.Price) int64 {
	return price.MultiplyQuantity(li.quantity)
}

func (li *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	li.id = id
	return nil
}

func (li *LineItem) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	li.orderID = orderID
	return nil
}

func (li *LineItem) setOfferID(offerID kernel.UUID) error {
	if err := offerID.Validate(); err != nil {
		return err
	}
	li.offerID = offerID
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	li.quantity = quantity
	return nil
}
