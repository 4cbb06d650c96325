package order_test

import (
	"testing"
	"time"

	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/core/domain/model/order"
	"salesflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(t *testing.T, orderID kernel.UUID) *order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), orderID, "Phone A", "PA1", 2, decimal.RequireFromString("10000"), testNow)
	require.NoError(t, err)
	return item
}

func TestNewLineItem(t *testing.T) {
	t.Run("should create item with unset milestones", func(t *testing.T) {
		orderID := kernel.NewUUID()

		item := newItem(t, orderID)

		require.NoError(t, item.Validate())
		assert.True(t, item.BelongsTo(orderID))
		assert.Equal(t, "Phone A", item.SkuName())
		assert.Equal(t, "PA1", item.SkuCode())
		assert.Equal(t, 2, item.Quantity())
		assert.False(t, item.MaterialOrdered())
		assert.False(t, item.MaterialReceived())
		assert.Equal(t, order.QAPending, item.QA())
		assert.False(t, item.FGReady())
		assert.False(t, item.InvoiceCreated())
		assert.True(t, decimal.RequireFromString("20000").Equal(item.LineTotal()))
	})

	t.Run("should reject bad values", func(t *testing.T) {
		testCases := []struct {
			name     string
			sku      string
			qty      int
			rate     string
			expected error
		}{
			{"blank sku", " ", 1, "1", order.ErrSkuNameIsRequired},
			{"zero quantity", "X", 0, "1", errs.ErrValueIsOutOfRange},
			{"negative rate", "X", 1, "-0.01", errs.ErrValueIsOutOfRange},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), tc.sku, "", tc.qty, decimal.RequireFromString(tc.rate), testNow)
				require.ErrorIs(t, err, tc.expected)
			})
		}
	})

	t.Run("should accept zero rate", func(t *testing.T) {
		_, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), "Sample", "", 1, decimal.Zero, testNow)
		require.NoError(t, err)
	})
}

func TestLineItem_Milestones(t *testing.T) {
	later := testNow.Add(time.Hour)

	t.Run("should record material order and receipt", func(t *testing.T) {
		item := newItem(t, kernel.NewUUID())
		expected := testNow.AddDate(0, 0, 4)

		item.MarkMaterialOrdered(" PO-77 ", &expected, later)
		item.MarkMaterialReceived(nil, later)

		assert.True(t, item.MaterialOrdered())
		assert.Equal(t, "PO-77", item.MaterialOrderRef())
		assert.Equal(t, &expected, item.MaterialExpectedDate())
		assert.True(t, item.MaterialReceived())
		require.NotNil(t, item.MaterialReceivedDate())
		assert.Equal(t, later, *item.MaterialReceivedDate())
		assert.Equal(t, later, item.LastUpdated())
	})

	t.Run("should accept rejection and later approval", func(t *testing.T) {
		item := newItem(t, kernel.NewUUID())

		item.SetQAOutcome(false, later)
		assert.Equal(t, order.QARejected, item.QA())
		require.ErrorIs(t, item.MarkFGReady(later), errs.ErrPreconditionFailed)

		item.SetQAOutcome(true, later)
		assert.Equal(t, order.QAApproved, item.QA())
		require.NoError(t, item.MarkFGReady(later))
		assert.True(t, item.FGReady())
	})

	t.Run("should invoice only finished goods", func(t *testing.T) {
		item := newItem(t, kernel.NewUUID())

		err := item.MarkInvoiced("INV-1", later)
		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
		assert.Contains(t, err.Error(), "FG not ready")

		item.SetQAOutcome(true, later)
		require.NoError(t, item.MarkFGReady(later))
		require.NoError(t, item.MarkInvoiced("INV-1", later))
		assert.True(t, item.InvoiceCreated())
		assert.Equal(t, "INV-1", item.InvoiceID())

		require.NoError(t, item.MarkInvoiced("INV-2", later))
		assert.Equal(t, "INV-2", item.InvoiceID())
	})

	t.Run("should move between orders", func(t *testing.T) {
		from, to := kernel.NewUUID(), kernel.NewUUID()
		item := newItem(t, from)

		require.NoError(t, item.MoveTo(to, later))

		assert.True(t, item.BelongsTo(to))
		assert.False(t, item.BelongsTo(from))
		require.Error(t, item.MoveTo(kernel.UUID{}, later))
		assert.True(t, item.BelongsTo(to))
	})
}

func TestRestoreLineItem(t *testing.T) {
	received := testNow
	params := order.LineItemParams{
		ID:                   kernel.NewUUID(),
		OrderID:              kernel.NewUUID(),
		SkuName:              "Phone B",
		SkuCode:              "PB1",
		Quantity:             1,
		UnitRate:             decimal.RequireFromString("12000.50"),
		MaterialOrdered:      true,
		MaterialReceived:     true,
		MaterialReceivedDate: &received,
		QA:                   order.QAApproved,
		FGReady:              true,
	}

	item, err := order.RestoreLineItem(params)

	require.NoError(t, err)
	assert.Equal(t, order.QAApproved, item.QA())
	assert.True(t, item.FGReady())
	assert.True(t, params.UnitRate.Equal(item.UnitRate()))

	params.QA = order.QAOutcome(5)
	_, err = order.RestoreLineItem(params)
	require.Error(t, err)
}
