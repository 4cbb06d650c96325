package commands

import (
	"context"
	"errors"

	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/core/domain/services"
	"salesflow/internal/pkg/guard"
)

var ErrMarkAllFGReadyCommandIsNotConstructed = errors.New(
	"MarkAllFGReadyCommand must be created via NewMarkAllFGReadyCommand constructor",
)

// MarkAllFGReadyCommand flags every item of an order as finished goods.
type MarkAllFGReadyCommand struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewMarkAllFGReadyCommand(orderID kernel.UUID) (MarkAllFGReadyCommand, error) {
	if err := validateOrderID(orderID); err != nil {
		return MarkAllFGReadyCommand{}, err
	}
	return MarkAllFGReadyCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c MarkAllFGReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkAllFGReadyCommandIsNotConstructed)
}

func (c MarkAllFGReadyCommand) OrderID() kernel.UUID {
	return c.orderID
}

// MarkAllFGReadyCommandHandler fails with "QA incomplete" unless every item of
// the order is QA approved, and changes nothing in that case.
type MarkAllFGReadyCommandHandler struct {
	uowFactory  WorkflowUoWFactory
	clock       kernel.Clock
	fulfillment services.Fulfillment
}

func NewMarkAllFGReadyCommandHandler(uowFactory WorkflowUoWFactory, clock kernel.Clock) MarkAllFGReadyCommandHandler {
	return MarkAllFGReadyCommandHandler{
		uowFactory:  uowFactory,
		clock:       clock,
		fulfillment: services.NewFulfillment(),
	}
}

func (h MarkAllFGReadyCommandHandler) Handle(ctx context.Context, cmd MarkAllFGReadyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	itemRepo := uow.LineItemRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	items, err := itemRepo.GetByOrder(ctx, o.ID())
	if err != nil {
		return err
	}

	if err = h.fulfillment.MarkAllFGReady(o, items, h.clock.Now()); err != nil {
		return err
	}

	for _, item := range items {
		if err = itemRepo.Update(ctx, item); err != nil {
			return err
		}
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
