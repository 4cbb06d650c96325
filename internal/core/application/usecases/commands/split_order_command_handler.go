package commands

import (
	"context"

	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/core/domain/model/order"
	"salesflow/internal/core/domain/services"
	"salesflow/internal/core/ports"
)

// SplitResult is the new child order with the items moved into it.
type SplitResult struct {
	Child *order.Order
	Items []*order.LineItem
}

// SplitOrderCommandHandler creates a child order from the named items. Items
// are taken from whichever order holds them, so repeating a split moves them
// again into a new child. The parent and every former holder are updated in
// the same transaction, so concurrent splits touching the same orders fail on
// the version check instead of both succeeding.
type SplitOrderCommandHandler struct {
	uowFactory WorkflowUoWFactory
	clock      kernel.Clock
	splitter   services.OrderSplitter
}

func NewSplitOrderCommandHandler(uowFactory WorkflowUoWFactory, clock kernel.Clock) SplitOrderCommandHandler {
	return SplitOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		splitter:   services.NewOrderSplitter(),
	}
}

func (h SplitOrderCommandHandler) Handle(ctx context.Context, cmd SplitOrderCommand) (SplitResult, error) {
	if err := cmd.Validate(); err != nil {
		return SplitResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SplitResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	itemRepo := uow.LineItemRepository()

	parent, err := orderRepo.Get(ctx, cmd.ParentID())
	if err != nil {
		return SplitResult{}, err
	}

	existing, err := orderRepo.CountChildren(ctx, parent.ID())
	if err != nil {
		return SplitResult{}, err
	}

	items, err := itemRepo.GetByIDs(ctx, cmd.ItemIDs())
	if err != nil {
		return SplitResult{}, err
	}

	holders, err := h.loadHolders(ctx, orderRepo, parent, items)
	if err != nil {
		return SplitResult{}, err
	}

	child, err := h.splitter.Split(
		kernel.NewUUID(),
		parent,
		existing,
		items,
		holders,
		cmd.ShipDate(),
		cmd.Plant(),
		h.clock.Now(),
	)
	if err != nil {
		return SplitResult{}, err
	}

	if err = orderRepo.Add(ctx, child); err != nil {
		return SplitResult{}, err
	}
	for _, item := range items {
		if err = itemRepo.Update(ctx, item); err != nil {
			return SplitResult{}, err
		}
	}
	if err = orderRepo.Update(ctx, parent); err != nil {
		return SplitResult{}, err
	}
	for _, holder := range holders {
		if err = orderRepo.Update(ctx, holder); err != nil {
			return SplitResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return SplitResult{}, err
	}

	return SplitResult{Child: child, Items: items}, nil
}

// loadHolders returns the orders other than parent that own any of items,
// each once, in item order.
func (h SplitOrderCommandHandler) loadHolders(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	parent *order.Order,
	items []*order.LineItem,
) ([]*order.Order, error) {
	seen := map[kernel.UUID]bool{parent.ID(): true}
	var holders []*order.Order
	for _, item := range items {
		if seen[item.OrderID()] {
			continue
		}
		seen[item.OrderID()] = true

		holder, err := orderRepo.Get(ctx, item.OrderID())
		if err != nil {
			return nil, err
		}
		holders = append(holders, holder)
	}
	return holders, nil
}
