package postgres_test

import (
	"context"
	"testing"
	"time"

	"production/internal/adapters/out/postgres"
	"production/internal/adapters/out/postgres/orderrepo"
	"production/internal/adapters/out/postgres/packagerepo"
	"production/internal/adapters/out/postgres/slotrepo"
	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/core/domain/model/stage"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies that order and slot writes inside
// one unit of work commit together or not at all. This is the atomicity the
// lifecycle engine relies on: a failed admission must leave both the slot
// and the order untouched.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&slotrepo.SlotDTO{},
		&packagerepo.PackageDTO{},
	))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, stage_slots, packages").Error)
	suite.Require().NoError(slotrepo.NewGormSlotRepository(suite.db).EnsureSlots(context.Background()))
	suite.factory = postgres.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) admittedOrder() *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), "ORD-001", "Shopping Bags 12x16", 5000, "D-Cut", stage.Flexo)
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_AppliesSlotAndOrderTogether() {
	ctx := context.Background()
	o := suite.admittedOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.SlotRepository().TryAcquire(ctx, stage.Flexo, o.ID()))
	suite.Require().NoError(uow.Commit(ctx))

	slot, err := slotrepo.NewGormSlotRepository(suite.db).Get(ctx, stage.Flexo)
	suite.Require().NoError(err)
	suite.Require().NotNil(slot.Occupant())
	suite.True(slot.Occupant().IsEqual(o.ID()))

	loaded, err := orderrepo.NewGormOrderRepository(suite.db, &noopTracker{}).Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(o))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsSlotAndOrderTogether() {
	ctx := context.Background()
	o := suite.admittedOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.SlotRepository().TryAcquire(ctx, stage.Flexo, o.ID()))
	suite.Require().NoError(uow.Rollback(ctx))

	// Nothing of the aborted admission survives: the slot is free and the
	// order was never stored.
	slot, err := slotrepo.NewGormSlotRepository(suite.db).Get(ctx, stage.Flexo)
	suite.Require().NoError(err)
	suite.False(slot.IsOccupied())

	_, err = orderrepo.NewGormOrderRepository(suite.db, &noopTracker{}).Get(ctx, o.ID())
	suite.Require().Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSlotHeldInTransaction_BlocksCommittedAcquisition() {
	ctx := context.Background()
	first := suite.admittedOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.SlotRepository().TryAcquire(ctx, stage.Flexo, first.ID()))
	suite.Require().NoError(uow.Commit(ctx))

	// A later unit of work cannot take the same slot.
	second := suite.factory.Create()
	suite.Require().NoError(second.Begin(ctx))
	err := second.SlotRepository().TryAcquire(ctx, stage.Flexo, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, stage.ErrSlotOccupied)
	suite.Require().NoError(second.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackAfterCommit_ReportsClosedTransaction() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))

	err := uow.Rollback(ctx)
	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_Twice_IsNoOp() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

// noopTracker satisfies the repositories' tracker dependency outside a unit
// of work.
type noopTracker struct{}

func (t *noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
