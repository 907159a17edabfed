package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"production/internal/adapters/out/postgres/orderrepo"
	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/core/domain/model/stage"
	"production/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence behavior
// against a real PostgreSQL instance.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) newPendingOrder() *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), "ORD-001", "Shopping Bags 12x16", 5000, "D-Cut", stage.Flexo)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) verifiedRecord(id kernel.UUID) *order.VerifiedRecord {
	record, err := order.NewVerifiedRecord(id, order.ParameterSet{
		"rollSize":     "24in",
		"gsm":          "80",
		"fabricColor":  "white",
		"bagType":      "D-Cut",
		"printColor":   "blue",
		"cylinderSize": "32",
	}, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	return &record
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_Get_Roundtrip() {
	ctx := context.Background()
	testOrder := suite.newPendingOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(testOrder))
	suite.Equal("ORD-001", loaded.OrderNumber())
	suite.Equal("Shopping Bags 12x16", loaded.JobName())
	suite.Equal(5000, loaded.Quantity())
	suite.Equal(stage.Flexo, loaded.Stage())
	suite.Equal(order.Pending, loaded.Status())
	suite.Equal(order.BillingNone, loaded.BillingStatus())
	suite.Nil(loaded.VerifiedData())
	suite.False(loaded.IsForwarded())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsVerifiedData() {
	ctx := context.Background()
	testOrder := suite.newPendingOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder)

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	cfg, err := stage.ConfigFor(stage.Flexo)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.Admit(suite.verifiedRecord(testOrder.ID()), cfg))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InProgress, loaded.Status())
	suite.Equal("80", loaded.VerifiedData()["gsm"])
	suite.Equal("blue", loaded.VerifiedData()["printColor"])
	suite.Equal(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC), loaded.VerifiedAt().UTC())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ClearsVerifiedDataOnDeactivate() {
	ctx := context.Background()
	testOrder := suite.newPendingOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder)

	cfg, err := stage.ConfigFor(stage.Flexo)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.Admit(suite.verifiedRecord(testOrder.ID()), cfg))
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.Deactivate())
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Pending, reloaded.Status())
	suite.Nil(reloaded.VerifiedData())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleStatus_Conflict() {
	ctx := context.Background()
	testOrder := suite.newPendingOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Two commands load the same Pending order.
	first, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	cfg, err := stage.ConfigFor(stage.Flexo)
	suite.Require().NoError(err)

	// The first one wins.
	suite.tracker.On("TrackAggregate", first.ID(), first)
	suite.Require().NoError(first.Admit(suite.verifiedRecord(first.ID()), cfg))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	// The second saw Pending but the row is InProgress now; its conditional
	// write must not apply.
	suite.Require().NoError(second.Admit(suite.verifiedRecord(second.ID()), cfg))
	err = suite.repository.Update(ctx, second)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrVersionIsInvalid)

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InProgress, loaded.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MissingOrder_Conflict() {
	testOrder := suite.newPendingOrder()
	err := suite.repository.Update(context.Background(), testOrder)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrVersionIsInvalid)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_BilledForwardedFlagsSurvive() {
	ctx := context.Background()
	id := kernel.NewUUID()
	testOrder, err := order.RestoreOrder(id, "ORD-002", "Carry Bags", 1200, "W-Cut", stage.BagMaking,
		order.Completed, order.Billed, suite.verifiedRecord(id), false)
	suite.Require().NoError(err)
	suite.tracker.On("TrackAggregate", id, testOrder)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(order.Billed, loaded.BillingStatus())
	suite.False(loaded.IsForwarded())

	// Billed is terminal: the rehydrated order still refuses forwarding.
	suite.ErrorIs(loaded.MarkForwarded(), order.ErrOrderBilled)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
