package services_test

import (
	"testing"
	"time"

	"salesflow/internal/core/domain/model/order"
	"salesflow/internal/core/domain/services"
	"salesflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFulfillment_MarkAllFGReady(t *testing.T) {
	fulfillment := services.NewFulfillment()
	later := now.Add(time.Hour)

	t.Run("should require QA approval on every item", func(t *testing.T) {
		child := newChild(t, newMaster(t))
		items := newItems(t, child, 2)
		items[0].SetQAOutcome(true, later)

		err := fulfillment.MarkAllFGReady(child, items, later)

		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
		assert.Contains(t, err.Error(), "QA incomplete")
		assert.False(t, items[0].FGReady())
		assert.Equal(t, order.Created, child.Status())
	})

	t.Run("should flag items and order", func(t *testing.T) {
		child := newChild(t, newMaster(t))
		items := newItems(t, child, 2)
		for _, item := range items {
			item.SetQAOutcome(true, later)
		}

		require.NoError(t, fulfillment.MarkAllFGReady(child, items, later))
		require.NoError(t, fulfillment.MarkAllFGReady(child, items, later))

		assert.Equal(t, order.ReadyForFG, child.Status())
		for _, item := range items {
			assert.True(t, item.FGReady())
		}
	})

	t.Run("should pass order without items", func(t *testing.T) {
		child := newChild(t, newMaster(t))

		require.NoError(t, fulfillment.MarkAllFGReady(child, nil, later))

		assert.Equal(t, order.ReadyForFG, child.Status())
	})
}

func TestFulfillment_Invoice(t *testing.T) {
	fulfillment := services.NewFulfillment()
	later := now.Add(time.Hour)

	readyOrder := func(t *testing.T) (*order.Order, []*order.LineItem) {
		child := newChild(t, newMaster(t))
		items := newItems(t, child, 2)
		for _, item := range items {
			item.SetQAOutcome(true, later)
		}
		require.NoError(t, fulfillment.MarkAllFGReady(child, items, later))
		return child, items
	}

	t.Run("should require finished goods", func(t *testing.T) {
		child := newChild(t, newMaster(t))
		items := newItems(t, child, 1)

		err := fulfillment.Invoice(child, items, "INV-1", later)

		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
		assert.Contains(t, err.Error(), "FG not ready")
	})

	t.Run("should invoice items and order", func(t *testing.T) {
		child, items := readyOrder(t)

		require.NoError(t, fulfillment.Invoice(child, items, "INV-1", later))

		assert.Equal(t, order.Invoiced, child.Status())
		assert.Equal(t, "INV-1", child.InvoiceID())
		for _, item := range items {
			assert.True(t, item.InvoiceCreated())
			assert.Equal(t, "INV-1", item.InvoiceID())
		}

	})

	t.Run("should issue a fresh invoice on every call", func(t *testing.T) {
		child, items := readyOrder(t)
		require.NoError(t, fulfillment.Invoice(child, items, "INV-1", later))

		require.NoError(t, fulfillment.Invoice(child, items, "INV-2", later))

		assert.Equal(t, order.Invoiced, child.Status())
		assert.Equal(t, "INV-2", child.InvoiceID())
		for _, item := range items {
			assert.Equal(t, "INV-2", item.InvoiceID())
		}
	})

	t.Run("should keep invoiced status when FG is re-marked", func(t *testing.T) {
		child, items := readyOrder(t)
		require.NoError(t, fulfillment.Invoice(child, items, "INV-1", later))

		require.NoError(t, fulfillment.MarkAllFGReady(child, items, later))

		assert.Equal(t, order.Invoiced, child.Status())
	})

	t.Run("should invoice order without items", func(t *testing.T) {
		child := newChild(t, newMaster(t))

		require.NoError(t, fulfillment.Invoice(child, nil, "INV-1", later))

		assert.Equal(t, order.Invoiced, child.Status())
		assert.Equal(t, "INV-1", child.InvoiceID())
	})
}
