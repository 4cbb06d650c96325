package services

import (
	"time"

	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/core/domain/model/order"
	"salesflow/internal/pkg/errs"
)

// ErrNoItemsToSplit is returned when a split names no line items.
var ErrNoItemsToSplit = errs.NewValueIsRequiredError("line item ids")

// OrderSplitter creates child orders. A child is numbered after the children
// its parent already has, so two splits of one master yield "/1" and "/2".
//
// Business rules:
//   - At least one item must be moved
//   - Items are taken from whichever order holds them, which need not be the parent
//   - Splitting a child is allowed and produces a grandchild
type OrderSplitter struct{}

func NewOrderSplitter() OrderSplitter {
	return OrderSplitter{}
}

// Split creates the child and moves items into it. existingChildren is the
// number of children parent had before this split. holders are the orders
// other than parent that currently own some of the items; they lose those
// items and are touched along with parent. Nothing is modified when an error
// is returned.
func (OrderSplitter) Split(
	childID kernel.UUID,
	parent *order.Order,
	existingChildren int,
	items []*order.LineItem,
	holders []*order.Order,
	shipDate *time.Time,
	plant string,
	now time.Time,
) (*order.Order, error) {
	if len(items) == 0 {
		return nil, ErrNoItemsToSplit
	}
	if existingChildren < 0 {
		return nil, errs.NewValueIsOutOfRangeError("existing children", existingChildren, 0, "unbounded")
	}
	if err := parent.Validate(); err != nil {
		return nil, err
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	for _, holder := range holders {
		if err := holder.Validate(); err != nil {
			return nil, err
		}
	}

	child, err := order.NewChildOrder(childID, parent, existingChildren+1, shipDate, plant, now)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := item.MoveTo(child.ID(), now); err != nil {
			return nil, err
		}
	}
	parent.Touch(now)
	for _, holder := range holders {
		holder.Touch(now)
	}

	return child, nil
}
