package commands_test

import (
	"testing"

	"github.com/BarinovG/EShop-API/internal/core/application/usecases/commands"
	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
	"github.com/BarinovG/EShop-API/internal/core/domain/model/order"
	"github.com/BarinovG/EShop-API/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateItemQuantityCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	buyerID := kernel.NewUUID()
	itemID := kernel.NewUUID()
	offerID := kernel.NewUUID()
	cmd, _ := commands.NewUpdateItemQuantityCommand(buyerID, itemID, 3)

	item, err := order.RestoreLineItem(itemID, kernel.NewUUID(), offerID, 2)
	require.NoError(t, err)
	offer := makeOffer(t, offerID, 100, 10)

	itemRepo := new(MockLineItemRepository)
	offerRepo := new(MockOfferRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LineItemRepository").Return(itemRepo).Once(),
		itemRepo.On("GetForBuyerCart", mock.Anything, buyerID, itemID).Return(item, nil).Once(),
		uow.On("OfferRepository").Return(offerRepo).Once(),
		offerRepo.On("Get", mock.Anything, offerID).Return(offer, nil).Once(),
		uow.On("LineItemRepository").Return(itemRepo).Once(),
		itemRepo.On("Update", mock.Anything, item).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateItemQuantityCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, itemID, result.ItemID)
	assert.Equal(t, 3, result.Quantity)
	assert.Equal(t, int64(300), result.Subtotal)
	uow.AssertExpectations(t)
	itemRepo.AssertExpectations(t)
	offerRepo.AssertExpectations(t)
}

func TestUpdateItemQuantityCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()
	buyerID := kernel.NewUUID()
	itemID := kernel.NewUUID()
	offerID := kernel.NewUUID()
	cmd, _ := commands.NewUpdateItemQuantityCommand(buyerID, itemID, 11)

	item, err := order.RestoreLineItem(itemID, kernel.NewUUID(), offerID, 2)
	require.NoError(t, err)
	offer := makeOffer(t, offerID, 100, 10)

	itemRepo := new(MockLineItemRepository)
	offerRepo := new(MockOfferRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LineItemRepository").Return(itemRepo).Once(),
		itemRepo.On("GetForBuyerCart", mock.Anything, buyerID, itemID).Return(item, nil).Once(),
		uow.On("OfferRepository").Return(offerRepo).Once(),
		offerRepo.On("Get", mock.Anything, offerID).Return(offer, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateItemQuantityCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrInsufficientStock)

	// quantity stays untouched when the stock check fails
	assert.Equal(t, 2, item.Quantity())
	uow.AssertExpectations(t)
}

func TestUpdateItemQuantityCommandHandler_Handle_ItemNotFound(t *testing.T) {
	ctx := t.Context()
	buyerID := kernel.NewUUID()
	itemID := kernel.NewUUID()
	cmd, _ := commands.NewUpdateItemQuantityCommand(buyerID, itemID, 1)

	itemRepo := new(MockLineItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LineItemRepository").Return(itemRepo).Once(),
		itemRepo.On("GetForBuyerCart", mock.Anything, buyerID, itemID).
			Return(nil, errs.NewObjectNotFoundError("itemID", itemID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateItemQuantityCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewUpdateItemQuantityCommand_InvalidQuantity(t *testing.T) {
	_, err := commands.NewUpdateItemQuantityCommand(kernel.NewUUID(), kernel.NewUUID(), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
}
