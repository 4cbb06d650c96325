package commands

import (
	"context"

	"salesflow/internal/core/domain/model/history"
	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/core/domain/model/order"
	"salesflow/internal/core/domain/services"
)

// AdvanceResult names the stages of a successful advance.
type AdvanceResult struct {
	From order.Stage
	To   order.Stage
}

// RequestAdvanceCommandHandler runs the stage gate for an order and, when it
// passes, stores the new stage together with a Transition history entry.
//
// Example:
//
//	res, err := handler.Handle(ctx, cmd)
//	switch {
//	case errs.IsNotFound(err):   // unknown order
//	case errs.IsNotAllowed(err): // master order or terminal stage
//	case errs.IsValidation(err): // err names the unmet precondition
//	}
type RequestAdvanceCommandHandler struct {
	uowFactory WorkflowUoWFactory
	clock      kernel.Clock
	gate       services.StageGate
}

func NewRequestAdvanceCommandHandler(uowFactory WorkflowUoWFactory, clock kernel.Clock) RequestAdvanceCommandHandler {
	return RequestAdvanceCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		gate:       services.NewStageGate(),
	}
}

func (h RequestAdvanceCommandHandler) Handle(ctx context.Context, cmd RequestAdvanceCommand) (AdvanceResult, error) {
	if err := cmd.Validate(); err != nil {
		return AdvanceResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AdvanceResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return AdvanceResult{}, err
	}

	items, err := uow.LineItemRepository().GetByOrder(ctx, o.ID())
	if err != nil {
		return AdvanceResult{}, err
	}

	now := h.clock.Now()
	from, to, err := h.gate.Advance(o, items, now)
	if err != nil {
		return AdvanceResult{}, err
	}

	entry, err := history.NewTransitionEntry(kernel.NewUUID(), o, history.Transition, now)
	if err != nil {
		return AdvanceResult{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return AdvanceResult{}, err
	}
	if err = uow.StageHistoryRepository().Append(ctx, entry); err != nil {
		return AdvanceResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AdvanceResult{}, err
	}

	return AdvanceResult{From: from, To: to}, nil
}
