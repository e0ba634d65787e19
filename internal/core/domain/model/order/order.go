package order

import (
	"errors"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root for the cart-to-order lifecycle. An order
// in OpenCart status is the buyer's shopping cart; placement binds a
// delivery contact and flips the status to Placed in a single one-way
// transition.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must be owned by exactly one buyer
//   - OpenCart orders carry no contact; Placed orders carry exactly one
//   - The only status transition is OpenCart -> Placed
//   - Can only be created through NewOrder or RestoreOrder
//
// The aggregate total is never stored on the order: it is always
// recomputed from the line items' quantity x unit price.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// buyerID is the owning buyer's ID
	buyerID kernel.UUID

	// contactID is the bound delivery contact (nil until placed)
	contactID *kernel.UUID

	// status represents the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a buyer's open cart. This is the only way a new
// order comes into existence: the row is created lazily when the buyer
// first needs a cart, and it stays in OpenCart status until placement.
//
// Parameters:
//   - id: unique identifier for the order (must be a valid UUID)
//   - buyerID: owning buyer (must be a valid UUID)
//
// Returns the created order in OpenCart status with no contact bound,
// or a validation error if any parameter is invalid.
func NewOrder(id kernel.UUID, buyerID kernel.UUID) (*Order, error) {
	o := &Order{
		status:        OpenCart,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setBuyerID(buyerID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. It validates the
// status value and the status/contact consistency so a corrupted row
// cannot produce an aggregate that violates the invariants.
func RestoreOrder(id kernel.UUID, buyerID kernel.UUID, status Status, contactID *kernel.UUID) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHaveContact(contactID != nil); err != nil {
		return nil, err
	}

	o := &Order{
		status:        status,
		contactID:     contactID,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setBuyerID(buyerID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed for zero-value instances.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// BuyerID returns the owning buyer's identifier.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Contact returns the bound delivery contact's ID.
// Returns nil while the order is still an open cart.
func (o *Order) Contact() *kernel.UUID {
	return o.contactID
}

// IsOpenCart reports whether the order is still the buyer's cart.
func (o *Order) IsOpenCart() bool {
	return o.status == OpenCart
}

// Place converts the open cart into a placed order, binding the
// delivery contact and flipping the status in one step.
//
// This method enforces the following business rules:
//   - The contact ID must be valid
//   - The order must be in OpenCart status
//   - Placement cannot be repeated
//
// After successful placement no further mutation of the order or its
// line items is permitted.
func (o *Order) Place(contactID kernel.UUID) error {
	if err := contactID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Place()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.contactID = &contactID
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setBuyerID validates and sets the owning buyer.
// This is a private method used only during construction.
func (o *Order) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}
	o.buyerID = buyerID
	return nil
}
