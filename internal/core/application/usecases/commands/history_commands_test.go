package commands_test

import (
	"errors"
	"testing"
	"time"

	"salesflow/internal/core/application/usecases/commands"
	"salesflow/internal/core/domain/model/health"
	"salesflow/internal/core/domain/model/history"
	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/core/domain/model/order"
	"salesflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type historyMocks struct {
	uow     *MockUoW
	orders  *MockOrderRepository
	history *MockStageHistoryRepository
	factory *MockHistoryUoWFactory
}

func newHistoryMocks() historyMocks {
	m := historyMocks{
		uow:     new(MockUoW),
		orders:  new(MockOrderRepository),
		history: new(MockStageHistoryRepository),
		factory: new(MockHistoryUoWFactory),
	}
	m.factory.On("Create").Return(m.uow).Once()
	m.uow.On("OrderRepository").Return(m.orders).Maybe()
	m.uow.On("StageHistoryRepository").Return(m.history).Maybe()
	return m
}

func TestSweepHealthCommandHandler_Handle(t *testing.T) {
	t.Run("should snapshot every order at one instant", func(t *testing.T) {
		ctx := t.Context()
		m := newHistoryMocks()
		master := newTestMaster(t)
		late := newTestChild(t, master)
		overdue := testNow.Add(-24 * time.Hour)
		require.NoError(t, late.AssignShipDate(&overdue, testNow))

		var entries []*history.StageEntry
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.orders.On("GetAll", ctx).Return([]*order.Order{master, late}, nil).Once(),
			m.history.On("Append", ctx, mock.AnythingOfType("[]*history.StageEntry")).
				Run(func(args mock.Arguments) { entries = args.Get(1).([]*history.StageEntry) }).
				Return(nil).Once(),
			m.uow.On("Commit", ctx).Return(nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		count, err := commands.NewSweepHealthCommandHandler(m.factory, kernel.NewFixedClock(testNow)).
			Handle(ctx, commands.NewSweepHealthCommand())

		require.NoError(t, err)
		assert.Equal(t, 2, count)
		require.Len(t, entries, 2)
		for _, entry := range entries {
			assert.Equal(t, history.HealthSnapshot, entry.Kind())
			assert.Equal(t, testNow, entry.EnteredAt())
		}
		assert.Equal(t, health.Green, entries[0].Color())
		assert.Equal(t, health.Red, entries[1].Color())
		m.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		m.uow.AssertExpectations(t)
	})

	t.Run("should write nothing without orders", func(t *testing.T) {
		ctx := t.Context()
		m := newHistoryMocks()

		m.uow.On("Begin", ctx).Return(nil).Once()
		m.orders.On("GetAll", ctx).Return([]*order.Order{}, nil).Once()
		m.uow.On("Rollback", ctx).Return(nil).Once()

		count, err := commands.NewSweepHealthCommandHandler(m.factory, kernel.NewFixedClock(testNow)).
			Handle(ctx, commands.NewSweepHealthCommand())

		require.NoError(t, err)
		assert.Zero(t, count)
		m.history.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})

	t.Run("should reject unconstructed command", func(t *testing.T) {
		_, err := commands.NewSweepHealthCommandHandler(new(MockHistoryUoWFactory), kernel.NewFixedClock(testNow)).
			Handle(t.Context(), commands.SweepHealthCommand{})
		require.ErrorIs(t, err, commands.ErrSweepHealthCommandIsNotConstructed)
	})
}

func TestPruneHistoryCommandHandler_Handle(t *testing.T) {
	t.Run("should prune snapshots older than the window", func(t *testing.T) {
		ctx := t.Context()
		m := newHistoryMocks()
		cutoff := testNow.Add(-30 * 24 * time.Hour)

		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.history.On("PruneSnapshotsBefore", ctx, cutoff).Return(int64(12), nil).Once(),
			m.uow.On("Commit", ctx).Return(nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewPruneHistoryCommand(30)
		require.NoError(t, err)

		deleted, err := commands.NewPruneHistoryCommandHandler(m.factory, kernel.NewFixedClock(testNow)).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, int64(12), deleted)
		m.uow.AssertExpectations(t)
		m.history.AssertExpectations(t)
	})

	t.Run("should not commit when pruning fails", func(t *testing.T) {
		ctx := t.Context()
		m := newHistoryMocks()
		failure := errors.New("lock timeout")

		m.uow.On("Begin", ctx).Return(nil).Once()
		m.history.On("PruneSnapshotsBefore", ctx, mock.AnythingOfType("time.Time")).Return(int64(0), failure).Once()
		m.uow.On("Rollback", ctx).Return(nil).Once()

		cmd, err := commands.NewPruneHistoryCommand(1)
		require.NoError(t, err)

		_, err = commands.NewPruneHistoryCommandHandler(m.factory, kernel.NewFixedClock(testNow)).Handle(ctx, cmd)

		require.ErrorIs(t, err, failure)
		m.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should require positive retention", func(t *testing.T) {
		_, err := commands.NewPruneHistoryCommand(0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
