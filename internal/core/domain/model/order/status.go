package order

import (
	"fmt"

	"github.com/BarinovG/EShop-API/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	OpenCart ──> Placed
//
// An order in OpenCart status is the buyer's shopping cart; placement
// is the one-way, one-shot transition that turns it into a real order.
// Placed is terminal within this system's responsibility: later
// fulfillment states (shipped, delivered, cancelled) are not modeled.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// OpenCart is the initial status. An order in this status is the
	// buyer's mutable shopping cart; there is at most one per buyer.
	OpenCart

	// Placed indicates the cart has been converted into an order with
	// a bound delivery contact. Line items are frozen from this point.
	Placed
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		OpenCart: "OpenCart",
		Placed:   "Placed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		OpenCart: "OpenCart",
		Placed:   "Placed",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: OpenCart, Placed. Unknown (0) and any other
// values are invalid. Used to reject Status values coming from
// external sources (database, API) before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value,
// including invalid ones, for which it returns "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidatePlace checks if the status allows placement without
// performing the transition. Only OpenCart can be placed; placing an
// already placed order is invalid, which is what makes placement
// one-shot.
func (s Status) ValidatePlace() error {
	if s != OpenCart {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to place", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveContact validates the consistency between order status
// and the delivery contact binding.
//
// Business rules:
//   - OpenCart orders must not have a contact bound
//   - Placed orders must have a contact bound
func (s Status) ValidateCanHaveContact(contact bool) error {
	if contact && s != Placed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a contact", s.String()),
		)
	}

	if !contact && s == Placed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no contact", s.String()),
		)
	}

	return nil
}

// Place transitions the status to Placed.
//
// Valid transitions:
//   - OpenCart -> Placed
//
// Any other starting status returns an error; Placed is terminal.
func (s Status) Place() (Status, error) {
	if err := s.ValidatePlace(); err != nil {
		return 0, err
	}

	return Placed, nil
}
