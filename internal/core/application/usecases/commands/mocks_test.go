package commands_test

import (
	"context"
	"testing"
	"time"

	"production/internal/core/application/usecases/commands"
	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/core/domain/model/produce"
	"production/internal/core/domain/model/stage"
	"production/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mocks and aggregate builders shared by the handler tests in this package.

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockSlotRepository struct{ mock.Mock }

func (m *MockSlotRepository) Get(ctx context.Context, st stage.Stage) (*stage.Slot, error) {
	args := m.Called(ctx, st)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stage.Slot), args.Error(1)
}

func (m *MockSlotRepository) TryAcquire(ctx context.Context, st stage.Stage, orderID kernel.UUID) error {
	args := m.Called(ctx, st, orderID)
	return args.Error(0)
}

func (m *MockSlotRepository) Release(ctx context.Context, st stage.Stage, orderID kernel.UUID) error {
	args := m.Called(ctx, st, orderID)
	return args.Error(0)
}

func (m *MockSlotRepository) ForceRelease(ctx context.Context, st stage.Stage) error {
	args := m.Called(ctx, st)
	return args.Error(0)
}

type MockPackageRepository struct{ mock.Mock }

func (m *MockPackageRepository) Add(ctx context.Context, p *produce.Package) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPackageRepository) Update(ctx context.Context, p *produce.Package) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPackageRepository) Get(ctx context.Context, id kernel.UUID) (*produce.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*produce.Package), args.Error(1)
}

func (m *MockPackageRepository) GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*produce.Package, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*produce.Package), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockLifecycleUoW struct{ mock.Mock }

func (m *MockLifecycleUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLifecycleUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLifecycleUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLifecycleUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockLifecycleUoW) SlotRepository() ports.SlotRepository {
	args := m.Called()
	return args.Get(0).(ports.SlotRepository)
}

type MockLifecycleUoWFactory struct{ mock.Mock }

func (m *MockLifecycleUoWFactory) Create() commands.LifecycleUoW {
	args := m.Called()
	return args.Get(0).(commands.LifecycleUoW)
}

type MockPackageUoW struct{ mock.Mock }

func (m *MockPackageUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPackageUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPackageUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPackageUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockPackageUoW) PackageRepository() ports.PackageRepository {
	args := m.Called()
	return args.Get(0).(ports.PackageRepository)
}

type MockPackageUoWFactory struct{ mock.Mock }

func (m *MockPackageUoWFactory) Create() commands.PackageUoW {
	args := m.Called()
	return args.Get(0).(commands.PackageUoW)
}

// measuredParamsFor returns a parameter set satisfying the stage's schema.
func measuredParamsFor(st stage.Stage) order.ParameterSet {
	switch st {
	case stage.Flexo:
		return order.ParameterSet{
			"rollSize":     "24in",
			"gsm":          "80",
			"fabricColor":  "white",
			"bagType":      "D-Cut",
			"printColor":   "blue",
			"cylinderSize": "32",
		}
	case stage.BagMaking:
		return order.ParameterSet{
			"bagSize":  "12x16",
			"bagColor": "white",
			"gsm":      "80",
			"weight":   "25.5",
		}
	default:
		return order.ParameterSet{"note": "no schema"}
	}
}

func verifiedRecordFor(t *testing.T, orderID kernel.UUID, st stage.Stage) *order.VerifiedRecord {
	t.Helper()
	record, err := order.NewVerifiedRecord(orderID, measuredParamsFor(st), time.Now())
	require.NoError(t, err)
	return &record
}

func pendingOrder(t *testing.T, id kernel.UUID, st stage.Stage) *order.Order {
	t.Helper()
	o, err := order.NewOrder(id, "ORD-001", "Shopping Bags 12x16", 5000, "D-Cut", st)
	require.NoError(t, err)
	return o
}

func inProgressOrder(t *testing.T, id kernel.UUID, st stage.Stage) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(id, "ORD-001", "Shopping Bags 12x16", 5000, "D-Cut", st,
		order.InProgress, order.BillingNone, verifiedRecordFor(t, id, st), false)
	require.NoError(t, err)
	return o
}

func completedOrder(t *testing.T, id kernel.UUID, st stage.Stage) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(id, "ORD-001", "Shopping Bags 12x16", 5000, "D-Cut", st,
		order.Completed, order.PendingBilling, verifiedRecordFor(t, id, st), false)
	require.NoError(t, err)
	return o
}

func billedOrder(t *testing.T, id kernel.UUID, st stage.Stage) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(id, "ORD-001", "Shopping Bags 12x16", 5000, "D-Cut", st,
		order.Completed, order.Billed, verifiedRecordFor(t, id, st), false)
	require.NoError(t, err)
	return o
}

func forwardedOrder(t *testing.T, id kernel.UUID, st stage.Stage) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(id, "ORD-001", "Shopping Bags 12x16", 5000, "D-Cut", st,
		order.Completed, order.PendingBilling, verifiedRecordFor(t, id, st), true)
	require.NoError(t, err)
	return o
}
