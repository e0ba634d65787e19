package postgres_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	pgadapter "github.com/BarinovG/EShop-API/internal/adapters/out/postgres"
	"github.com/BarinovG/EShop-API/internal/core/application/usecases/commands"
	"github.com/BarinovG/EShop-API/internal/core/application/usecases/queries"
	"github.com/BarinovG/EShop-API/internal/core/domain/model/catalog"
	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
	"github.com/BarinovG/EShop-API/internal/core/domain/model/order"
	"github.com/BarinovG/EShop-API/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type funcCartUoWFactory func() commands.CartUoW

func (f funcCartUoWFactory) Create() commands.CartUoW { return f() }

type funcPlaceOrderUoWFactory func() commands.PlaceOrderUoW

func (f funcPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW { return f() }

type funcCatalogUoWFactory func() commands.CatalogUoW

func (f funcCatalogUoWFactory) Create() commands.CatalogUoW { return f() }

type funcContactUoWFactory func() commands.ContactUoW

func (f funcContactUoWFactory) Create() commands.ContactUoW { return f() }

// recordingNotifier captures placement notifications instead of publishing them.
type recordingNotifier struct {
	orderIDs []kernel.UUID
}

func (n *recordingNotifier) OrderPlaced(_ context.Context, _, orderID kernel.UUID) error {
	n.orderIDs = append(n.orderIDs, orderID)
	return nil
}

// UnitOfWorkIntegrationTestSuite exercises transaction semantics and runs
// whole business operations through the real command handlers against
// a PostgreSQL container.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *pgadapter.GormUnitOfWorkFactory
	notifier  *recordingNotifier
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(pgadapter.Migrate(db))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, line_items, offers, shops, contacts CASCADE").Error)

	suite.factory = pgadapter.NewGormUnitOfWorkFactory(suite.db)
	suite.notifier = &recordingNotifier{}
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) cartFactory() commands.CartUoWFactory {
	return funcCartUoWFactory(func() commands.CartUoW { return suite.factory.Create() })
}

func (suite *UnitOfWorkIntegrationTestSuite) placeFactory() commands.PlaceOrderUoWFactory {
	return funcPlaceOrderUoWFactory(func() commands.PlaceOrderUoW { return suite.factory.Create() })
}

func (suite *UnitOfWorkIntegrationTestSuite) catalogFactory() commands.CatalogUoWFactory {
	return funcCatalogUoWFactory(func() commands.CatalogUoW { return suite.factory.Create() })
}

func (suite *UnitOfWorkIntegrationTestSuite) contactFactory() commands.ContactUoWFactory {
	return funcContactUoWFactory(func() commands.ContactUoW { return suite.factory.Create() })
}

func (suite *UnitOfWorkIntegrationTestSuite) seedOffer(amount int64, stock int) *catalog.Offer {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	shop, err := catalog.NewShop(kernel.NewUUID(), kernel.NewUUID(), "Test Shop")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ShopRepository().Add(ctx, shop))

	price, err := kernel.NewPrice(amount)
	suite.Require().NoError(err)
	offer, err := catalog.NewOffer(kernel.NewUUID(), shop.ID(), "Widget", price, stock)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OfferRepository().Add(ctx, offer))

	suite.Require().NoError(uow.Commit(ctx))
	return offer
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	cart, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, cart))
	suite.Require().NoError(uow.Commit(ctx))

	loaded, err := suite.factory.Create().OrderRepository().Get(ctx, cart.ID())
	suite.Require().NoError(err)
	suite.True(cart.IsEqual(loaded))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	cart, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, cart))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err = suite.factory.Create().OrderRepository().Get(ctx, cart.ID())
	suite.Require().Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackWithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Rollback(context.Background()), gorm.ErrInvalidTransaction)
}

// TestCartToOrderFlow walks the full buyer journey: fill the cart, adjust
// a quantity, attach a contact, place the order and read it back.
func (suite *UnitOfWorkIntegrationTestSuite) TestCartToOrderFlow() {
	ctx := context.Background()
	buyerID := kernel.NewUUID()
	offer := suite.seedOffer(100, 10)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	addItem := commands.NewAddItemCommandHandler(suite.cartFactory())
	updateItem := commands.NewUpdateItemQuantityCommandHandler(suite.cartFactory())
	addContact := commands.NewAddContactCommandHandler(suite.contactFactory())
	placeOrder := commands.NewPlaceOrderCommandHandler(suite.placeFactory(), suite.notifier, logger)

	addCmd, err := commands.NewAddItemCommand(buyerID, offer.ID(), 2)
	suite.Require().NoError(err)
	added, err := addItem.Handle(ctx, addCmd)
	suite.Require().NoError(err)
	suite.Equal(int64(200), added.Subtotal)

	updateCmd, err := commands.NewUpdateItemQuantityCommand(buyerID, added.ItemID, 3)
	suite.Require().NoError(err)
	updated, err := updateItem.Handle(ctx, updateCmd)
	suite.Require().NoError(err)
	suite.Equal(int64(300), updated.Subtotal)

	cartQuery, err := queries.NewGetCartQuery(buyerID)
	suite.Require().NoError(err)
	cartView, err := queries.NewGetCartQueryHandler(suite.db).Handle(ctx, cartQuery)
	suite.Require().NoError(err)
	suite.Require().Len(cartView.Items, 1)
	suite.Equal(int64(300), cartView.Total)

	contactCmd, err := commands.NewAddContactCommand(buyerID, "Moscow", "Lenina", "5", "+79990001122")
	suite.Require().NoError(err)
	contactID, err := addContact.Handle(ctx, contactCmd)
	suite.Require().NoError(err)

	placeCmd, err := commands.NewPlaceOrderCommand(buyerID, added.OrderID, contactID)
	suite.Require().NoError(err)
	suite.Require().NoError(placeOrder.Handle(ctx, placeCmd))
	suite.Require().Len(suite.notifier.orderIDs, 1)
	suite.Equal(added.OrderID, suite.notifier.orderIDs[0])

	// the cart is gone, the placed order shows the priced total
	cartView, err = queries.NewGetCartQueryHandler(suite.db).Handle(ctx, cartQuery)
	suite.Require().NoError(err)
	suite.Empty(cartView.Items)

	ordersQuery, err := queries.NewGetBuyerOrdersQuery(buyerID)
	suite.Require().NoError(err)
	orders, err := queries.NewGetBuyerOrdersQueryHandler(suite.db).Handle(ctx, ordersQuery)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal(added.OrderID, orders[0].OrderID)
	suite.Equal(int64(300), orders[0].Total)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestPlaceEmptyCart_LeavesCartOpen() {
	ctx := context.Background()
	buyerID := kernel.NewUUID()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	cart, err := order.NewOrder(kernel.NewUUID(), buyerID)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, cart))
	suite.Require().NoError(uow.Commit(ctx))

	contactCmd, err := commands.NewAddContactCommand(buyerID, "Moscow", "Lenina", "5", "+79990001122")
	suite.Require().NoError(err)
	contactID, err := commands.NewAddContactCommandHandler(suite.contactFactory()).Handle(ctx, contactCmd)
	suite.Require().NoError(err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	placeOrder := commands.NewPlaceOrderCommandHandler(suite.placeFactory(), suite.notifier, logger)

	placeCmd, err := commands.NewPlaceOrderCommand(buyerID, cart.ID(), contactID)
	suite.Require().NoError(err)
	suite.Require().ErrorIs(placeOrder.Handle(ctx, placeCmd), commands.ErrEmptyCart)
	suite.Empty(suite.notifier.orderIDs)

	loaded, err := suite.factory.Create().OrderRepository().Get(ctx, cart.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsOpenCart())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestPlaceUnknownOrder_ReturnsNotFound() {
	ctx := context.Background()
	buyerID := kernel.NewUUID()

	contactCmd, err := commands.NewAddContactCommand(buyerID, "Moscow", "Lenina", "5", "+79990001122")
	suite.Require().NoError(err)
	contactID, err := commands.NewAddContactCommandHandler(suite.contactFactory()).Handle(ctx, contactCmd)
	suite.Require().NoError(err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	placeOrder := commands.NewPlaceOrderCommandHandler(suite.placeFactory(), suite.notifier, logger)

	// no cart exists at all: this must read as not found, never as
	// an empty cart
	placeCmd, err := commands.NewPlaceOrderCommand(buyerID, kernel.NewUUID(), contactID)
	suite.Require().NoError(err)
	err = placeOrder.Handle(ctx, placeCmd)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Require().NotErrorIs(err, commands.ErrEmptyCart)
	suite.Empty(suite.notifier.orderIDs)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestPlaceWithForeignContact_ReturnsNotFound() {
	ctx := context.Background()
	buyerID := kernel.NewUUID()
	offer := suite.seedOffer(100, 10)

	addCmd, err := commands.NewAddItemCommand(buyerID, offer.ID(), 1)
	suite.Require().NoError(err)
	added, err := commands.NewAddItemCommandHandler(suite.cartFactory()).Handle(ctx, addCmd)
	suite.Require().NoError(err)

	foreignBuyer := kernel.NewUUID()
	contactCmd, err := commands.NewAddContactCommand(foreignBuyer, "Perm", "Mira", "1", "+79991112233")
	suite.Require().NoError(err)
	foreignContactID, err := commands.NewAddContactCommandHandler(suite.contactFactory()).Handle(ctx, contactCmd)
	suite.Require().NoError(err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	placeOrder := commands.NewPlaceOrderCommandHandler(suite.placeFactory(), suite.notifier, logger)

	placeCmd, err := commands.NewPlaceOrderCommand(buyerID, added.OrderID, foreignContactID)
	suite.Require().NoError(err)
	suite.Require().ErrorIs(placeOrder.Handle(ctx, placeCmd), errs.ErrObjectNotFound)
	suite.Empty(suite.notifier.orderIDs)

	loaded, err := suite.factory.Create().OrderRepository().Get(ctx, added.OrderID)
	suite.Require().NoError(err)
	suite.True(loaded.IsOpenCart())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestAddItem_InsufficientStock_NothingPersisted() {
	ctx := context.Background()
	buyerID := kernel.NewUUID()
	offer := suite.seedOffer(100, 1)

	addItem := commands.NewAddItemCommandHandler(suite.cartFactory())
	addCmd, err := commands.NewAddItemCommand(buyerID, offer.ID(), 5)
	suite.Require().NoError(err)

	_, err = addItem.Handle(ctx, addCmd)
	suite.Require().ErrorIs(err, commands.ErrInsufficientStock)

	// the lazily opened cart must not survive the rollback
	var count int64
	suite.Require().NoError(suite.db.Table("orders").Count(&count).Error)
	suite.Equal(int64(0), count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
