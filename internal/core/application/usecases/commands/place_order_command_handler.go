package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/BarinovG/EShop-API/internal/core/ports"
	"github.com/BarinovG/EShop-API/internal/pkg/errs"
)

var (
	// ErrEmptyCart is returned when placement targets a cart with no
	// line items. An empty cart is never a valid order.
	ErrEmptyCart = errors.New("cart has no items")
)

// PlaceOrderCommandHandler handles the one-shot cart-to-order
// transition. The store performs a single conditional update filtered
// on (order, buyer, open status); zero affected rows means the order is
// absent, foreign, or already placed, and the handler reports all three
// identically as not found.
//
// After the transaction commits, the handler announces the placement
// through the Notifier. Delivery is best-effort: a notification failure
// is logged and swallowed, never unwinding the committed transition.
type PlaceOrderCommandHandler struct {
	uowFactory PlaceOrderUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(
	uowFactory PlaceOrderUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "PlaceOrderCommandHandler"),
	}
}

// Handle processes the placement command.
// The target must resolve as the buyer's open cart before any other
// check runs, so an absent, foreign, or already placed order is
// reported as not found without revealing whether it is empty. The
// contact is resolved under the same buyer scope; the status flip and
// contact binding stay a single conditional update.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cart, err := uow.OrderRepository().GetOpenCart(ctx, cmd.BuyerID())
	if err != nil {
		return err
	}

	if !cart.ID().IsEqual(cmd.OrderID()) {
		return errs.NewObjectNotFoundError("orderID", cmd.OrderID())
	}

	if _, err = uow.ContactRepository().Get(ctx, cmd.BuyerID(), cmd.ContactID()); err != nil {
		return err
	}

	count, err := uow.LineItemRepository().CountByOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if count == 0 {
		return ErrEmptyCart
	}

	if err = uow.OrderRepository().Place(ctx, cmd.BuyerID(), cmd.OrderID(), cmd.ContactID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.notifier.OrderPlaced(ctx, cmd.BuyerID(), cmd.OrderID()); err != nil {
		h.logger.Warn("order placed notification failed",
			"order_id", cmd.OrderID().String(),
			"error", err)
	}

	return nil
}
