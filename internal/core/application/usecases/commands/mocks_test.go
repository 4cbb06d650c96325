package commands_test

import (
	"context"
	"testing"
	"time"

	"salesflow/internal/core/application/usecases/commands"
	"salesflow/internal/core/domain/model/customer"
	"salesflow/internal/core/domain/model/history"
	"salesflow/internal/core/domain/model/importlog"
	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/core/domain/model/order"
	"salesflow/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC)

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

func (m *MockOrderRepository) ExistsByOrderNo(ctx context.Context, orderNo string) (bool, error) {
	args := m.Called(ctx, orderNo)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) CountChildren(ctx context.Context, parentID kernel.UUID) (int, error) {
	args := m.Called(ctx, parentID)
	return args.Int(0), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockLineItemRepository struct{ mock.Mock }

func (m *MockLineItemRepository) AddAll(ctx context.Context, items []*order.LineItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockLineItemRepository) Update(ctx context.Context, item *order.LineItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockLineItemRepository) Get(ctx context.Context, id kernel.UUID) (*order.LineItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.LineItem), args.Error(1)
}

func (m *MockLineItemRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*order.LineItem, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.LineItem), args.Error(1)
}

func (m *MockLineItemRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.LineItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.LineItem), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindByName(ctx context.Context, name string) (*customer.Customer, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

type MockStageHistoryRepository struct{ mock.Mock }

func (m *MockStageHistoryRepository) Append(ctx context.Context, entries ...*history.StageEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockStageHistoryRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*history.StageEntry, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*history.StageEntry), args.Error(1)
}

func (m *MockStageHistoryRepository) PruneSnapshotsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockImportLogRepository struct{ mock.Mock }

func (m *MockImportLogRepository) Add(ctx context.Context, entry *importlog.ImportEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// MockUoW implements every unit of work interface of the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) LineItemRepository() ports.LineItemRepository {
	args := m.Called()
	return args.Get(0).(ports.LineItemRepository)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) StageHistoryRepository() ports.StageHistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.StageHistoryRepository)
}

func (m *MockUoW) ImportLogRepository() ports.ImportLogRepository {
	args := m.Called()
	return args.Get(0).(ports.ImportLogRepository)
}

type MockWorkflowUoWFactory struct{ mock.Mock }

func (m *MockWorkflowUoWFactory) Create() commands.WorkflowUoW {
	args := m.Called()
	return args.Get(0).(commands.WorkflowUoW)
}

type MockImportUoWFactory struct{ mock.Mock }

func (m *MockImportUoWFactory) Create() commands.ImportUoW {
	args := m.Called()
	return args.Get(0).(commands.ImportUoW)
}

type MockHistoryUoWFactory struct{ mock.Mock }

func (m *MockHistoryUoWFactory) Create() commands.HistoryUoW {
	args := m.Called()
	return args.Get(0).(commands.HistoryUoW)
}

// workflowMocks wires a MockUoW with order, item and history repositories.
type workflowMocks struct {
	uow     *MockUoW
	orders  *MockOrderRepository
	items   *MockLineItemRepository
	history *MockStageHistoryRepository
	factory *MockWorkflowUoWFactory
	clock   kernel.FixedClock
}

func newWorkflowMocks() workflowMocks {
	m := workflowMocks{
		uow:     new(MockUoW),
		orders:  new(MockOrderRepository),
		items:   new(MockLineItemRepository),
		history: new(MockStageHistoryRepository),
		factory: new(MockWorkflowUoWFactory),
		clock:   kernel.NewFixedClock(testNow),
	}
	m.factory.On("Create").Return(m.uow).Once()
	m.uow.On("OrderRepository").Return(m.orders).Maybe()
	m.uow.On("LineItemRepository").Return(m.items).Maybe()
	m.uow.On("StageHistoryRepository").Return(m.history).Maybe()
	return m
}

func (m workflowMocks) assertExpectations(t *testing.T) {
	t.Helper()
	m.factory.AssertExpectations(t)
	m.uow.AssertExpectations(t)
	m.orders.AssertExpectations(t)
	m.items.AssertExpectations(t)
	m.history.AssertExpectations(t)
}

func newTestMaster(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewMasterOrder(kernel.NewUUID(), "SO1001", kernel.NewUUID(), "", testNow.Add(-time.Hour))
	require.NoError(t, err)
	return o
}

func newTestChild(t *testing.T, parent *order.Order) *order.Order {
	t.Helper()
	o, err := order.NewChildOrder(kernel.NewUUID(), parent, 1, nil, "", testNow.Add(-time.Hour))
	require.NoError(t, err)
	return o
}

func newTestItems(t *testing.T, owner *order.Order, n int) []*order.LineItem {
	t.Helper()
	items := make([]*order.LineItem, 0, n)
	for range n {
		item, err := order.NewLineItem(
			kernel.NewUUID(), owner.ID(), "Phone", "P1", 2, decimal.NewFromInt(100), testNow.Add(-time.Hour),
		)
		require.NoError(t, err)
		items = append(items, item)
	}
	return items
}
