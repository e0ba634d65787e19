package kernel

import (
	"fmt"

	"github.com/BarinovG/EShop-API/internal/pkg/errs"
)

// ErrPriceIsNotConstructed indicates that a Price was not created through
// the NewPrice constructor.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError("Price must be created via NewPrice")

// Price is a value object representing a money amount in minor currency
// units (e.g. cents). It is used for offer unit prices and for derived
// line-item subtotals; aggregate totals are never stored, always
// recomputed from quantity and unit price.
//
// The zero value is invalid; construct through NewPrice.
// Price is immutable and safe for concurrent use.
type Price struct {
	amount        int64
	isConstructed bool
}

// NewPrice creates a validated Price. The amount must be positive.
func NewPrice(amount int64) (Price, error) {
	if amount <= 0 {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%d is not greater than 0", amount),
		)
	}

	return Price{amount: amount, isConstructed: true}, nil
}

// Amount returns the amount in minor currency units.
func (p Price) Amount() int64 {
	return p.amount
}

// MultiplyQuantity returns quantity x unit price, the per-line subtotal.
func (p Price) MultiplyQuantity(quantity int) int64 {
	return p.amount * int64(quantity)
}

// IsEqual reports whether two prices represent the same amount.
func (p Price) IsEqual(other Price) bool {
	return p.amount == other.amount
}

// Validate returns ErrPriceIsNotConstructed for a zero-value Price and
// nil otherwise.
func (p Price) Validate() error {
	if !p.isConstructed {
		return ErrPriceIsNotConstructed
	}
	return nil
}
