package services_test

import (
	"testing"
	"time"

	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC)

func newMaster(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewMasterOrder(kernel.NewUUID(), "SO1001", kernel.NewUUID(), "", now)
	require.NoError(t, err)
	return o
}

func newChild(t *testing.T, parent *order.Order) *order.Order {
	t.Helper()
	o, err := order.NewChildOrder(kernel.NewUUID(), parent, 1, nil, "", now)
	require.NoError(t, err)
	return o
}

func newItems(t *testing.T, owner *order.Order, n int) []*order.LineItem {
	t.Helper()
	items := make([]*order.LineItem, 0, n)
	for range n {
		item, err := order.NewLineItem(kernel.NewUUID(), owner.ID(), "Phone", "P1", 1, decimal.NewFromInt(100), now)
		require.NoError(t, err)
		items = append(items, item)
	}
	return items
}
