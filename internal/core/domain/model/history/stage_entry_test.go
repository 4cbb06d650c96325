package history_test

import (
	"testing"
	"time"

	"salesflow/internal/core/domain/model/health"
	"salesflow/internal/core/domain/model/history"
	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/core/domain/model/order"
	"salesflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC)

func newChild(t *testing.T, shipIn time.Duration) *order.Order {
	t.Helper()
	master, err := order.NewMasterOrder(kernel.NewUUID(), "SO1001", kernel.NewUUID(), "", now)
	require.NoError(t, err)
	var ship *time.Time
	if shipIn != 0 {
		at := now.Add(shipIn)
		ship = &at
	}
	child, err := order.NewChildOrder(kernel.NewUUID(), master, 1, ship, "Plant-A", now)
	require.NoError(t, err)
	return child
}

func TestNewTransitionEntry(t *testing.T) {
	t.Run("should capture stage and colour at entry", func(t *testing.T) {
		child := newChild(t, 48*time.Hour)

		entry, err := history.NewTransitionEntry(kernel.NewUUID(), child, history.Transition, now)

		require.NoError(t, err)
		require.NoError(t, entry.Validate())
		assert.Equal(t, child.ID(), entry.OrderID())
		assert.Equal(t, order.SalesSupport, entry.Stage())
		assert.Equal(t, history.Transition, entry.Kind())
		assert.Equal(t, health.Amber, entry.Color())
		assert.Equal(t, now, entry.EnteredAt())
	})

	t.Run("should reject snapshot kind", func(t *testing.T) {
		_, err := history.NewTransitionEntry(kernel.NewUUID(), newChild(t, 0), history.HealthSnapshot, now)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewHealthSnapshot(t *testing.T) {
	entry, err := history.NewHealthSnapshot(kernel.NewUUID(), newChild(t, -24*time.Hour), now)

	require.NoError(t, err)
	assert.Equal(t, history.HealthSnapshot, entry.Kind())
	assert.Equal(t, health.Red, entry.Color())
}

func TestRestoreStageEntry(t *testing.T) {
	_, err := history.RestoreStageEntry(kernel.NewUUID(), kernel.NewUUID(), history.Transition, order.Quality, time.Time{}, health.Green)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = history.RestoreStageEntry(kernel.NewUUID(), kernel.NewUUID(), history.UnknownKind, order.Quality, now, health.Green)
	require.Error(t, err)

	kind, err := history.ParseKind("DirectMove")
	require.NoError(t, err)
	assert.Equal(t, history.DirectMove, kind)
}
