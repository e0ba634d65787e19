package commands_test

import (
	"errors"
	"testing"

	"github.com/BarinovG/EShop-API/internal/core/application/usecases/commands"
	"github.com/BarinovG/EShop-API/internal/core/domain/model/catalog"
	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
	"github.com/BarinovG/EShop-API/internal/core/domain/model/order"
	"github.com/BarinovG/EShop-API/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func makeOffer(t *testing.T, id kernel.UUID, priceAmount int64, stock int) *catalog.Offer {
	t.Helper()
	price, err := kernel.NewPrice(priceAmount)
	require.NoError(t, err)
	offer, err := catalog.RestoreOffer(id, kernel.NewUUID(), "usb cable", price, stock)
	require.NoError(t, err)
	return offer
}

func TestAddItemCommandHandler_Handle_ExistingCart(t *testing.T) {
	ctx := t.Context()
	buyerID := kernel.NewUUID()
	offerID := kernel.NewUUID()
	cmd, _ := commands.NewAddItemCommand(buyerID, offerID, 2)

	offer := makeOffer(t, offerID, 100, 10)
	cart, err := order.NewOrder(kernel.NewUUID(), buyerID)
	require.NoError(t, err)

	offerRepo := new(MockOfferRepository)
	orderRepo := new(MockOrderRepository)
	itemRepo := new(MockLineItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OfferRepository").Return(offerRepo).Once(),
		offerRepo.On("Get", mock.Anything, offerID).Return(offer, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetOpenCart", mock.Anything, buyerID).Return(cart, nil).Once(),
		uow.On("LineItemRepository").Return(itemRepo).Once(),
		itemRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.LineItem")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddItemCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, cart.ID(), result.OrderID)
	assert.Equal(t, offerID, result.OfferID)
	assert.Equal(t, 2, result.Quantity)
	assert.Equal(t, int64(200), result.Subtotal)
	uow.AssertExpectations(t)
	offerRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	itemRepo.AssertExpectations(t)
}

func TestAddItemCommandHandler_Handle_CreatesCartLazily(t *testing.T) {
	ctx := t.Context()
	buyerID := kernel.NewUUID()
	offerID := kernel.NewUUID()
	cmd, _ := commands.NewAddItemCommand(buyerID, offerID, 1)

	offer := makeOffer(t, offerID, 250, 5)

	offerRepo := new(MockOfferRepository)
	orderRepo := new(MockOrderRepository)
	itemRepo := new(MockLineItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OfferRepository").Return(offerRepo).Once(),
		offerRepo.On("Get", mock.Anything, offerID).Return(offer, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetOpenCart", mock.Anything, buyerID).
			Return(nil, errs.NewObjectNotFoundError("buyerID", buyerID)).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("LineItemRepository").Return(itemRepo).Once(),
		itemRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.LineItem")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddItemCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, int64(250), result.Subtotal)

	created := orderRepo.Calls[1].Arguments.Get(1).(*order.Order)
	assert.True(t, created.IsOpenCart())
	assert.Equal(t, created.ID(), result.OrderID)
	uow.AssertExpectations(t)
}

func TestAddItemCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()
	buyerID := kernel.NewUUID()
	offerID := kernel.NewUUID()
	cmd, _ := commands.NewAddItemCommand(buyerID, offerID, 11)

	offer := makeOffer(t, offerID, 100, 10)

	offerRepo := new(MockOfferRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OfferRepository").Return(offerRepo).Once(),
		offerRepo.On("Get", mock.Anything, offerID).Return(offer, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddItemCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrInsufficientStock)
	uow.AssertExpectations(t)
}

func TestAddItemCommandHandler_Handle_OfferNotFound(t *testing.T) {
	ctx := t.Context()
	offerID := kernel.NewUUID()
	cmd, _ := commands.NewAddItemCommand(kernel.NewUUID(), offerID, 1)

	offerRepo := new(MockOfferRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OfferRepository").Return(offerRepo).Once(),
		offerRepo.On("Get", mock.Anything, offerID).
			Return(nil, errs.NewObjectNotFoundError("offerID", offerID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddItemCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAddItemCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockCartUoWFactory)
	h := commands.NewAddItemCommandHandler(factory)
	_, err := h.Handle(ctx, commands.AddItemCommand{})
	require.Error(t, err)
}

func TestAddItemCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddItemCommand(kernel.NewUUID(), kernel.NewUUID(), 1)

	uow := new(MockUoW)
	factory := new(MockCartUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewAddItemCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
