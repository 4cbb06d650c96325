package commands_test

import (
	"errors"
	"testing"

	"salesflow/internal/core/application/usecases/commands"
	"salesflow/internal/core/domain/model/customer"
	"salesflow/internal/core/domain/model/importlog"
	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/core/domain/model/order"
	"salesflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func acmeLines() []commands.LineInput {
	return []commands.LineInput{
		{SkuName: "Phone", SkuCode: "P1", Quantity: 10, UnitRate: decimal.NewFromInt(100)},
		{SkuName: "Case", SkuCode: "C1", Quantity: 10, UnitRate: decimal.RequireFromString("7.50")},
	}
}

func TestNewCreateMasterOrderCommand(t *testing.T) {
	t.Run("should trim and keep input", func(t *testing.T) {
		cmd, err := commands.NewCreateMasterOrderCommand(" SO1001 ", " Acme ", "erp.xlsx", acmeLines(), testNow)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "SO1001", cmd.OrderNo())
		assert.Equal(t, "Acme", cmd.CustomerName())
		assert.Equal(t, "erp.xlsx", cmd.Source())
		assert.Len(t, cmd.Lines(), 2)
	})

	t.Run("should report every missing field", func(t *testing.T) {
		_, err := commands.NewCreateMasterOrderCommand("", "", "", nil, testNow)

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrOrderNoIsRequired)
		assert.ErrorIs(t, err, commands.ErrCustomerNameIsRequired)
		assert.ErrorIs(t, err, commands.ErrSourceIsRequired)
		assert.ErrorIs(t, err, commands.ErrLineItemsAreRequired)
	})

	t.Run("should reject bad lines", func(t *testing.T) {
		lines := []commands.LineInput{
			{SkuName: "", Quantity: 1},
			{SkuName: "Phone", Quantity: 0},
			{SkuName: "Case", Quantity: 1, UnitRate: decimal.NewFromInt(-1)},
		}

		_, err := commands.NewCreateMasterOrderCommand("SO1001", "Acme", "erp.xlsx", lines, testNow)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "line 1 sku name")
		assert.Contains(t, err.Error(), "line 2 quantity")
		assert.Contains(t, err.Error(), "line 3 unit rate")
	})
}

func TestCreateMasterOrderCommand_Validate_WhenNotConstructed_ShouldReturnError(t *testing.T) {
	var cmd commands.CreateMasterOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateMasterOrderCommandIsNotConstructed)
}

type importMocks struct {
	uow       *MockUoW
	customers *MockCustomerRepository
	orders    *MockOrderRepository
	items     *MockLineItemRepository
	importLog *MockImportLogRepository
	factory   *MockImportUoWFactory
}

func newImportMocks() importMocks {
	m := importMocks{
		uow:       new(MockUoW),
		customers: new(MockCustomerRepository),
		orders:    new(MockOrderRepository),
		items:     new(MockLineItemRepository),
		importLog: new(MockImportLogRepository),
		factory:   new(MockImportUoWFactory),
	}
	m.factory.On("Create").Return(m.uow).Once()
	m.uow.On("CustomerRepository").Return(m.customers).Maybe()
	m.uow.On("OrderRepository").Return(m.orders).Maybe()
	m.uow.On("LineItemRepository").Return(m.items).Maybe()
	m.uow.On("ImportLogRepository").Return(m.importLog).Maybe()
	return m
}

func TestCreateMasterOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should create customer order items and log entry", func(t *testing.T) {
		ctx := t.Context()
		m := newImportMocks()
		cmd, err := commands.NewCreateMasterOrderCommand("SO1001", "Acme", "erp.xlsx", acmeLines(), testNow)
		require.NoError(t, err)

		var (
			created *customer.Customer
			master  *order.Order
			items   []*order.LineItem
			entry   *importlog.ImportEntry
		)
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.orders.On("ExistsByOrderNo", ctx, "SO1001").Return(false, nil).Once(),
			m.customers.On("FindByName", ctx, "Acme").
				Return(nil, errs.NewObjectNotFoundError("customer", "Acme")).Once(),
			m.customers.On("Add", ctx, mock.AnythingOfType("*customer.Customer")).
				Run(func(args mock.Arguments) { created = args.Get(1).(*customer.Customer) }).
				Return(nil).Once(),
			m.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).
				Run(func(args mock.Arguments) { master = args.Get(1).(*order.Order) }).
				Return(nil).Once(),
			m.items.On("AddAll", ctx, mock.AnythingOfType("[]*order.LineItem")).
				Run(func(args mock.Arguments) { items = args.Get(1).([]*order.LineItem) }).
				Return(nil).Once(),
			m.importLog.On("Add", ctx, mock.AnythingOfType("*importlog.ImportEntry")).
				Run(func(args mock.Arguments) { entry = args.Get(1).(*importlog.ImportEntry) }).
				Return(nil).Once(),
			m.uow.On("Commit", ctx).Return(nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewCreateMasterOrderCommandHandler(m.factory, kernel.NewFixedClock(testNow))
		result, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Same(t, master, result)
		assert.True(t, result.IsMaster())
		assert.Equal(t, order.SalesSupport, result.Stage())
		assert.Equal(t, "Imported from erp.xlsx", result.Remarks())
		assert.True(t, created.ID().IsEqual(result.CustomerID()))
		require.Len(t, items, 2)
		for _, item := range items {
			assert.True(t, item.BelongsTo(result.ID()))
		}
		assert.Equal(t, []string{"P1", "C1"}, entry.SkuCodes())
		assert.Equal(t, "SO1001", entry.OrderNo())
		m.factory.AssertExpectations(t)
		m.uow.AssertExpectations(t)
		m.customers.AssertExpectations(t)
		m.orders.AssertExpectations(t)
		m.items.AssertExpectations(t)
		m.importLog.AssertExpectations(t)
	})

	t.Run("should reuse existing customer", func(t *testing.T) {
		ctx := t.Context()
		m := newImportMocks()
		acme, err := customer.NewCustomer(kernel.NewUUID(), "Acme", customer.Contact{})
		require.NoError(t, err)
		cmd, err := commands.NewCreateMasterOrderCommand("SO1002", "Acme", "erp.xlsx", acmeLines(), testNow)
		require.NoError(t, err)

		m.uow.On("Begin", ctx).Return(nil).Once()
		m.orders.On("ExistsByOrderNo", ctx, "SO1002").Return(false, nil).Once()
		m.customers.On("FindByName", ctx, "Acme").Return(acme, nil).Once()
		m.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
		m.items.On("AddAll", ctx, mock.AnythingOfType("[]*order.LineItem")).Return(nil).Once()
		m.importLog.On("Add", ctx, mock.AnythingOfType("*importlog.ImportEntry")).Return(nil).Once()
		m.uow.On("Commit", ctx).Return(nil).Once()
		m.uow.On("Rollback", ctx).Return(nil).Once()

		handler := commands.NewCreateMasterOrderCommandHandler(m.factory, kernel.NewFixedClock(testNow))
		result, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.True(t, acme.ID().IsEqual(result.CustomerID()))
		m.customers.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("should reject duplicate order number", func(t *testing.T) {
		ctx := t.Context()
		m := newImportMocks()
		cmd, err := commands.NewCreateMasterOrderCommand("SO1001", "Acme", "erp.xlsx", acmeLines(), testNow)
		require.NoError(t, err)

		m.uow.On("Begin", ctx).Return(nil).Once()
		m.orders.On("ExistsByOrderNo", ctx, "SO1001").Return(true, nil).Once()
		m.uow.On("Rollback", ctx).Return(nil).Once()

		handler := commands.NewCreateMasterOrderCommandHandler(m.factory, kernel.NewFixedClock(testNow))
		result, err := handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "already exists")
		assert.True(t, commands.IsDuplicateOrderNo(err))
		assert.Nil(t, result)
		m.uow.AssertNotCalled(t, "Commit", mock.Anything)
		m.orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("should not commit when items fail", func(t *testing.T) {
		ctx := t.Context()
		m := newImportMocks()
		cmd, err := commands.NewCreateMasterOrderCommand("SO1001", "Acme", "erp.xlsx", acmeLines(), testNow)
		require.NoError(t, err)
		storeErr := errors.New("disk full")

		m.uow.On("Begin", ctx).Return(nil).Once()
		m.orders.On("ExistsByOrderNo", ctx, "SO1001").Return(false, nil).Once()
		m.customers.On("FindByName", ctx, "Acme").
			Return(nil, errs.NewObjectNotFoundError("customer", "Acme")).Once()
		m.customers.On("Add", ctx, mock.Anything).Return(nil).Once()
		m.orders.On("Add", ctx, mock.Anything).Return(nil).Once()
		m.items.On("AddAll", ctx, mock.Anything).Return(storeErr).Once()
		m.uow.On("Rollback", ctx).Return(nil).Once()

		handler := commands.NewCreateMasterOrderCommandHandler(m.factory, kernel.NewFixedClock(testNow))
		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, storeErr)
		m.uow.AssertNotCalled(t, "Commit", mock.Anything)
		m.importLog.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("should reject unconstructed command", func(t *testing.T) {
		handler := commands.NewCreateMasterOrderCommandHandler(new(MockImportUoWFactory), kernel.NewFixedClock(testNow))
		_, err := handler.Handle(t.Context(), commands.CreateMasterOrderCommand{})
		require.ErrorIs(t, err, commands.ErrCreateMasterOrderCommandIsNotConstructed)
	})
}
