package commands_test

import (
	"testing"
	"time"

	"salesflow/internal/core/application/usecases/commands"
	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/core/domain/model/order"
	"salesflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// expectMilestone sets up the load and save calls shared by item milestones.
func expectMilestone(t *testing.T, m workflowMocks, owner *order.Order, item *order.LineItem) {
	t.Helper()
	ctx := t.Context()
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.items.On("Get", ctx, item.ID()).Return(item, nil).Once(),
		m.orders.On("Get", ctx, owner.ID()).Return(owner, nil).Once(),
		m.items.On("Update", ctx, item).Return(nil).Once(),
		m.orders.On("Update", ctx, owner).Return(nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)
}

func TestMarkMaterialOrderedCommandHandler_Handle(t *testing.T) {
	m := newWorkflowMocks()
	child := newTestChild(t, newTestMaster(t))
	item := newTestItems(t, child, 1)[0]
	expected := testNow.Add(5 * 24 * time.Hour)
	expectMilestone(t, m, child, item)

	cmd, err := commands.NewMarkMaterialOrderedCommand(item.ID(), " BOM-7 ", &expected)
	require.NoError(t, err)

	err = commands.NewMarkMaterialOrderedCommandHandler(m.factory, m.clock).Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.True(t, item.MaterialOrdered())
	assert.Equal(t, "BOM-7", item.MaterialOrderRef())
	assert.Equal(t, &expected, item.MaterialExpectedDate())
	assert.Equal(t, testNow, item.LastUpdated())
	assert.Equal(t, testNow, child.LastActivity())
	m.assertExpectations(t)
}

func TestMarkMaterialReceivedCommandHandler_Handle(t *testing.T) {
	t.Run("should default receipt date to now", func(t *testing.T) {
		m := newWorkflowMocks()
		child := newTestChild(t, newTestMaster(t))
		item := newTestItems(t, child, 1)[0]
		expectMilestone(t, m, child, item)

		cmd, err := commands.NewMarkMaterialReceivedCommand(item.ID(), nil)
		require.NoError(t, err)

		err = commands.NewMarkMaterialReceivedCommandHandler(m.factory, m.clock).Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.True(t, item.MaterialReceived())
		require.NotNil(t, item.MaterialReceivedDate())
		assert.Equal(t, testNow, *item.MaterialReceivedDate())
		m.assertExpectations(t)
	})

	t.Run("should surface unknown item", func(t *testing.T) {
		ctx := t.Context()
		m := newWorkflowMocks()
		id := kernel.NewUUID()

		m.uow.On("Begin", ctx).Return(nil).Once()
		m.items.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("line item", id)).Once()
		m.uow.On("Rollback", ctx).Return(nil).Once()

		cmd, err := commands.NewMarkMaterialReceivedCommand(id, nil)
		require.NoError(t, err)

		err = commands.NewMarkMaterialReceivedCommandHandler(m.factory, m.clock).Handle(ctx, cmd)

		require.True(t, errs.IsNotFound(err))
		m.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}

func TestSetQAOutcomeCommandHandler_Handle(t *testing.T) {
	for _, tc := range []struct {
		name     string
		approved bool
		want     order.QAOutcome
	}{
		{name: "should record approval", approved: true, want: order.QAApproved},
		{name: "should record rejection", approved: false, want: order.QARejected},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := newWorkflowMocks()
			child := newTestChild(t, newTestMaster(t))
			item := newTestItems(t, child, 1)[0]
			expectMilestone(t, m, child, item)

			cmd, err := commands.NewSetQAOutcomeCommand(item.ID(), tc.approved)
			require.NoError(t, err)

			err = commands.NewSetQAOutcomeCommandHandler(m.factory, m.clock).Handle(t.Context(), cmd)

			require.NoError(t, err)
			assert.Equal(t, tc.want, item.QA())
			m.assertExpectations(t)
		})
	}
}

func TestItemMilestoneCommands_RequireItemID(t *testing.T) {
	_, err := commands.NewMarkMaterialOrderedCommand(kernel.UUID{}, "", nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewMarkMaterialReceivedCommand(kernel.UUID{}, nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewSetQAOutcomeCommand(kernel.UUID{}, true)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
