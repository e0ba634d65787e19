package commands

import (
	"context"
	"errors"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
	"github.com/BarinovG/EShop-API/internal/core/domain/model/order"
	"github.com/BarinovG/EShop-API/internal/core/ports"
	"github.com/BarinovG/EShop-API/internal/pkg/errs"
)

var (
	// ErrInsufficientStock is returned when the requested quantity
	// exceeds the offer's available stock at the time of write.
	ErrInsufficientStock = errors.New("requested quantity exceeds available stock")
)

// LineItemResult is the snapshot returned by cart mutations: the stored
// line item together with its derived per-line subtotal
// (quantity x offer unit price).
type LineItemResult struct {
	ItemID   kernel.UUID
	OrderID  kernel.UUID
	OfferID  kernel.UUID
	Quantity int
	Subtotal int64
}

// AddItemCommandHandler handles adding a catalog offer to the buyer's
// open cart. The cart row is created lazily inside the same transaction
// when the buyer has none, keeping the one-open-cart-per-buyer rule
// explicit instead of relying on ambient convention.
//
// The stock check mirrors the one performed on quantity updates, so
// both write paths validate against the offer's available stock.
type AddItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddItemCommandHandler creates a handler for add-to-cart operations.
// Requires a CartUoWFactory for transactional persistence.
func NewAddItemCommandHandler(uowFactory CartUoWFactory) AddItemCommandHandler {
	return AddItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-to-cart command.
// Looks the offer up freshly for the stock check, gets or creates the
// buyer's open cart, and persists the new line item, all within a
// single transaction. Returns the created item with its subtotal.
func (h AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) (LineItemResult, error) {
	if err := cmd.Validate(); err != nil {
		return LineItemResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return LineItemResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	offer, err := uow.OfferRepository().Get(ctx, cmd.OfferID())
	if err != nil {
		return LineItemResult{}, err
	}

	if !offer.HasStock(cmd.Quantity()) {
		return LineItemResult{}, ErrInsufficientStock
	}

	cart, err := getOrCreateOpenCart(ctx, uow.OrderRepository(), cmd.BuyerID())
	if err != nil {
		return LineItemResult{}, err
	}

	item, err := order.NewLineItem(kernel.NewUUID(), cart.ID(), cmd.OfferID(), cmd.Quantity())
	if err != nil {
		return LineItemResult{}, err
	}

	if err = uow.LineItemRepository().Add(ctx, item); err != nil {
		return LineItemResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return LineItemResult{}, err
	}

	return LineItemResult{
		ItemID:   item.ID(),
		OrderID:  cart.ID(),
		OfferID:  item.OfferID(),
		Quantity: item.Quantity(),
		Subtotal: item.Subtotal(offer.Price()),
	}, nil
}

// getOrCreateOpenCart resolves the buyer's open cart, creating the row
// lazily on first use. The partial unique index on open carts makes a
// concurrent double-create impossible; the losing writer simply fails
// its insert and the transaction rolls back.
func getOrCreateOpenCart(
	ctx context.Context,
	repo ports.OrderRepository,
	buyerID kernel.UUID,
) (*order.Order, error) {
	cart, err := repo.GetOpenCart(ctx, buyerID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	cart, err = order.NewOrder(kernel.NewUUID(), buyerID)
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}
