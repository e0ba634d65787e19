package orderrepo_test

import (
	"context"
	"testing"
	"time"

	pgadapter "github.com/BarinovG/EShop-API/internal/adapters/out/postgres"
	"github.com/BarinovG/EShop-API/internal/adapters/out/postgres/contactrepo"
	"github.com/BarinovG/EShop-API/internal/adapters/out/postgres/orderrepo"
	"github.com/BarinovG/EShop-API/internal/core/domain/model/contact"
	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"
	"github.com/BarinovG/EShop-API/internal/core/domain/model/order"
	"github.com/BarinovG/EShop-API/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	repository  *orderrepo.GormOrderRepository
	contactRepo *contactrepo.GormContactRepository
	tracker     *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, line_items, contacts CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
	suite.contactRepo = contactrepo.NewGormContactRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) addContact(buyerID kernel.UUID) kernel.UUID {
	c, err := contact.NewContact(kernel.NewUUID(), buyerID, "Moscow", "Lenina", "5", "+79990001122")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.contactRepo.Add(context.Background(), c))
	return c.ID()
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	cart, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, cart))

	loaded, err := suite.repository.Get(ctx, cart.ID())
	suite.Require().NoError(err)
	suite.True(cart.IsEqual(loaded))
	suite.True(loaded.IsOpenCart())
	suite.Nil(loaded.Contact())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetOpenCart_NoCart_ReturnsNotFound() {
	_, err := suite.repository.GetOpenCart(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetOpenCart_ReturnsBuyersCart() {
	ctx := context.Background()
	buyerID := kernel.NewUUID()
	cart, err := order.NewOrder(kernel.NewUUID(), buyerID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, cart))

	// another buyer's cart must not leak in
	other, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, other))

	loaded, err := suite.repository.GetOpenCart(ctx, buyerID)
	suite.Require().NoError(err)
	suite.Equal(cart.ID(), loaded.ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestOneOpenCartPerBuyer_SecondInsertFails() {
	ctx := context.Background()
	buyerID := kernel.NewUUID()

	first, err := order.NewOrder(kernel.NewUUID(), buyerID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second, err := order.NewOrder(kernel.NewUUID(), buyerID)
	suite.Require().NoError(err)
	suite.Require().Error(suite.repository.Add(ctx, second))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestPlace_FlipsStatusAndBindsContact() {
	ctx := context.Background()
	buyerID := kernel.NewUUID()
	contactID := suite.addContact(buyerID)

	cart, err := order.NewOrder(kernel.NewUUID(), buyerID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, cart))

	suite.Require().NoError(suite.repository.Place(ctx, buyerID, cart.ID(), contactID))

	loaded, err := suite.repository.Get(ctx, cart.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Placed, loaded.Status())
	suite.Require().NotNil(loaded.Contact())
	suite.True(loaded.Contact().IsEqual(contactID))

	// placement frees the cart slot: the buyer can open a new one
	next, err := order.NewOrder(kernel.NewUUID(), buyerID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, next))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestPlace_ForeignOrder_ReturnsNotFound() {
	ctx := context.Background()
	ownerID := kernel.NewUUID()
	cart, err := order.NewOrder(kernel.NewUUID(), ownerID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, cart))

	attackerID := kernel.NewUUID()
	contactID := suite.addContact(attackerID)

	err = suite.repository.Place(ctx, attackerID, cart.ID(), contactID)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	loaded, getErr := suite.repository.Get(ctx, cart.ID())
	suite.Require().NoError(getErr)
	suite.True(loaded.IsOpenCart())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestPlace_AlreadyPlaced_ReturnsNotFound() {
	ctx := context.Background()
	buyerID := kernel.NewUUID()
	contactID := suite.addContact(buyerID)

	cart, err := order.NewOrder(kernel.NewUUID(), buyerID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, cart))
	suite.Require().NoError(suite.repository.Place(ctx, buyerID, cart.ID(), contactID))

	err = suite.repository.Place(ctx, buyerID, cart.ID(), contactID)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestPlace_DanglingContact_Fails() {
	ctx := context.Background()
	buyerID := kernel.NewUUID()

	cart, err := order.NewOrder(kernel.NewUUID(), buyerID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, cart))

	err = suite.repository.Place(ctx, buyerID, cart.ID(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().NotErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetStaleOpenCarts_FiltersByCutoffAndStatus() {
	ctx := context.Background()
	buyerID := kernel.NewUUID()
	contactID := suite.addContact(buyerID)

	stale, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, stale))

	placed, err := order.NewOrder(kernel.NewUUID(), buyerID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, placed))
	suite.Require().NoError(suite.repository.Place(ctx, buyerID, placed.ID(), contactID))

	// push both rows into the past
	suite.Require().NoError(suite.db.Exec(
		"UPDATE orders SET updated_at = now() - interval '2 days'").Error)

	fresh, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, fresh))

	carts, err := suite.repository.GetStaleOpenCarts(ctx, time.Now().UTC().Add(-24*time.Hour))
	suite.Require().NoError(err)
	suite.Require().Len(carts, 1)
	suite.Equal(stale.ID(), carts[0].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesRow() {
	ctx := context.Background()
	cart, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, cart))

	suite.Require().NoError(suite.repository.Delete(ctx, cart.ID()))

	_, err = suite.repository.Get(ctx, cart.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
