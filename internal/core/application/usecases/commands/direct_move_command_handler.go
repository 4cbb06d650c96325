package commands

import (
	"context"

	"salesflow/internal/core/domain/model/history"
	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/core/domain/model/order"
)

// DirectMoveCommandHandler applies an unguarded stage change. The move is
// still recorded in the stage history, as a DirectMove entry.
type DirectMoveCommandHandler struct {
	uowFactory WorkflowUoWFactory
	clock      kernel.Clock
}

func NewDirectMoveCommandHandler(uowFactory WorkflowUoWFactory, clock kernel.Clock) DirectMoveCommandHandler {
	return DirectMoveCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h DirectMoveCommandHandler) Handle(ctx context.Context, cmd DirectMoveCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	if _, err = o.MoveTo(cmd.Target(), now); err != nil {
		return nil, err
	}

	entry, err := history.NewTransitionEntry(kernel.NewUUID(), o, history.DirectMove, now)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}
	if err = uow.StageHistoryRepository().Append(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
