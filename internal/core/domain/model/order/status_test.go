package order_test

import (
	"testing"

	"salesflow/internal/core/domain/model/order"
	"salesflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.UnknownStatus))
		assert.Equal(t, 1, int(order.Created))
		assert.Equal(t, 2, int(order.ReadyForFG))
		assert.Equal(t, 3, int(order.Invoiced))
	})
}

func TestStatus_Parse(t *testing.T) {
	for _, status := range []order.Status{order.Created, order.ReadyForFG, order.Invoiced} {
		parsed, err := order.ParseStatus(status.String())
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	_, err := order.ParseStatus("Shipped")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.Error(t, order.UnknownStatus.Validate())
}

func TestStatus_MarkReadyForFG(t *testing.T) {
	t.Run("should move Created to ReadyForFG", func(t *testing.T) {
		next, err := order.Created.MarkReadyForFG()

		require.NoError(t, err)
		assert.Equal(t, order.ReadyForFG, next)
	})

	t.Run("should be idempotent on ReadyForFG", func(t *testing.T) {
		next, err := order.ReadyForFG.MarkReadyForFG()

		require.NoError(t, err)
		assert.Equal(t, order.ReadyForFG, next)
	})

	t.Run("should keep invoiced orders invoiced", func(t *testing.T) {
		next, err := order.Invoiced.MarkReadyForFG()

		require.NoError(t, err)
		assert.Equal(t, order.Invoiced, next)
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := order.UnknownStatus.MarkReadyForFG()
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Invoice(t *testing.T) {
	t.Run("should move ReadyForFG to Invoiced", func(t *testing.T) {
		next, err := order.ReadyForFG.Invoice()

		require.NoError(t, err)
		assert.Equal(t, order.Invoiced, next)
	})

	t.Run("should reject Created", func(t *testing.T) {
		_, err := order.Created.Invoice()

		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
		assert.Contains(t, err.Error(), "finished goods are not ready")
	})

	t.Run("should allow a second invoice", func(t *testing.T) {
		next, err := order.Invoiced.Invoice()

		require.NoError(t, err)
		assert.Equal(t, order.Invoiced, next)
	})
}

func TestQAOutcome(t *testing.T) {
	assert.Equal(t, order.QAPending, order.QAOutcome(0))
	assert.Equal(t, order.QAApproved, order.QAOutcomeFromApproval(true))
	assert.Equal(t, order.QARejected, order.QAOutcomeFromApproval(false))

	assert.True(t, order.QAApproved.IsApproved())
	assert.False(t, order.QAPending.IsApproved())
	assert.False(t, order.QARejected.IsApproved())

	parsed, err := order.ParseQAOutcome("Rejected")
	require.NoError(t, err)
	assert.Equal(t, order.QARejected, parsed)

	_, err = order.ParseQAOutcome("Maybe")
	require.Error(t, err)
	require.Error(t, order.QAOutcome(7).Validate())
}
