// Package order provides domain entities and business logic for the
// cart-to-order lifecycle in the marketplace. It implements the Order
// aggregate root with its LineItem entities and the status state machine.
//
// The package includes:
//   - Order: the aggregate root owning identity, buyer, contact binding, and lifecycle
//   - LineItem: a quantity-bound reference to a catalog offer within a cart or order
//   - Status: a state machine that enforces the single OpenCart -> Placed transition
//
// Key business rules:
//   - An order in OpenCart status is the buyer's shopping cart; at most one per buyer
//   - Line item quantity must always be a positive integer
//   - Placement binds a delivery contact and flips the status in one step
//   - Placed is terminal; no further mutation of the order or its items is permitted
//   - Totals are derived from quantity x unit price, never stored
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
