// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"github.com/BarinovG/EShop-API/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// LineItemRepoFactory provides access to the line item repository within a transaction.
	LineItemRepoFactory interface {
		LineItemRepository() ports.LineItemRepository
	}

	// OfferRepoFactory provides access to the offer repository within a transaction.
	OfferRepoFactory interface {
		OfferRepository() ports.OfferRepository
	}

	// ShopRepoFactory provides access to the shop repository within a transaction.
	ShopRepoFactory interface {
		ShopRepository() ports.ShopRepository
	}

	// ContactRepoFactory provides access to the contact repository within a transaction.
	ContactRepoFactory interface {
		ContactRepository() ports.ContactRepository
	}

	// CartUoW manages transactions for cart mutations: adding, changing,
	// and removing line items against the buyer's open cart, with fresh
	// offer lookups for stock validation.
	CartUoW interface {
		TxManager
		OrderRepoFactory
		LineItemRepoFactory
		OfferRepoFactory
	}

	// CartUoWFactory creates new cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// PlaceOrderUoW manages the cart-to-order transition. The contact
	// is resolved under the buyer's scope before the status flip, so a
	// foreign contact id is rejected before any write.
	PlaceOrderUoW interface {
		TxManager
		OrderRepoFactory
		LineItemRepoFactory
		ContactRepoFactory
	}

	// PlaceOrderUoWFactory creates new placement unit of work instances.
	PlaceOrderUoWFactory interface {
		Create() PlaceOrderUoW
	}

	// CleanupUoW manages transactions for the stale-cart cleanup job:
	// abandoned open carts and their line items are removed together.
	CleanupUoW interface {
		TxManager
		OrderRepoFactory
		LineItemRepoFactory
	}

	// CleanupUoWFactory creates new cleanup unit of work instances.
	CleanupUoWFactory interface {
		Create() CleanupUoW
	}

	// CatalogUoW manages transactions touching shops and their offers.
	CatalogUoW interface {
		TxManager
		ShopRepoFactory
		OfferRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// ContactUoW manages transactions for contact CRUD.
	ContactUoW interface {
		TxManager
		ContactRepoFactory
	}

	// ContactUoWFactory creates new contact unit of work instances.
	ContactUoWFactory interface {
		Create() ContactUoW
	}
)
