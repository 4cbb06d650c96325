package commands

import (
	"context"
	"errors"
	"time"

	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/core/domain/model/order"
	"salesflow/internal/pkg/errs"
	"salesflow/internal/pkg/guard"
)

var ErrChangePriorityCommandIsNotConstructed = errors.New(
	"ChangePriorityCommand must be created via NewChangePriorityCommand constructor",
)

// ChangePriorityCommand sets the scheduling priority of an order.
type ChangePriorityCommand struct {
	orderID  kernel.UUID
	priority int
	guard    guard.ConstructorGuard
}

func NewChangePriorityCommand(orderID kernel.UUID, priority int) (ChangePriorityCommand, error) {
	var priorityErr error
	if priority < 0 {
		priorityErr = errs.NewValueIsOutOfRangeError("priority", priority, 0, "unbounded")
	}
	if err := errors.Join(validateOrderID(orderID), priorityErr); err != nil {
		return ChangePriorityCommand{}, err
	}
	return ChangePriorityCommand{
		orderID:  orderID,
		priority: priority,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ChangePriorityCommand) Validate() error {
	return c.guard.Validate(ErrChangePriorityCommandIsNotConstructed)
}

func (c ChangePriorityCommand) OrderID() kernel.UUID { return c.orderID }
func (c ChangePriorityCommand) Priority() int        { return c.priority }

type ChangePriorityCommandHandler struct {
	uowFactory WorkflowUoWFactory
	clock      kernel.Clock
}

func NewChangePriorityCommandHandler(uowFactory WorkflowUoWFactory, clock kernel.Clock) ChangePriorityCommandHandler {
	return ChangePriorityCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h ChangePriorityCommandHandler) Handle(ctx context.Context, cmd ChangePriorityCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return applyOrderChange(ctx, h.uowFactory, h.clock, cmd.OrderID(), func(o *order.Order, now time.Time) error {
		return o.ChangePriority(cmd.Priority(), now)
	})
}
