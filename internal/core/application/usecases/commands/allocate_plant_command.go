package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/core/domain/model/order"
	"salesflow/internal/pkg/guard"
)

var ErrAllocatePlantCommandIsNotConstructed = errors.New(
	"AllocatePlantCommand must be created via NewAllocatePlantCommand constructor",
)

// AllocatePlantCommand assigns the manufacturing plant of an order.
type AllocatePlantCommand struct {
	orderID kernel.UUID
	plant   string
	guard   guard.ConstructorGuard
}

func NewAllocatePlantCommand(orderID kernel.UUID, plant string) (AllocatePlantCommand, error) {
	plant = strings.TrimSpace(plant)
	var plantErr error
	if plant == "" {
		plantErr = order.ErrPlantIsRequired
	}
	if err := errors.Join(validateOrderID(orderID), plantErr); err != nil {
		return AllocatePlantCommand{}, err
	}
	return AllocatePlantCommand{
		orderID: orderID,
		plant:   plant,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AllocatePlantCommand) Validate() error {
	return c.guard.Validate(ErrAllocatePlantCommandIsNotConstructed)
}

func (c AllocatePlantCommand) OrderID() kernel.UUID { return c.orderID }
func (c AllocatePlantCommand) Plant() string        { return c.plant }

type AllocatePlantCommandHandler struct {
	uowFactory WorkflowUoWFactory
	clock      kernel.Clock
}

func NewAllocatePlantCommandHandler(uowFactory WorkflowUoWFactory, clock kernel.Clock) AllocatePlantCommandHandler {
	return AllocatePlantCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h AllocatePlantCommandHandler) Handle(ctx context.Context, cmd AllocatePlantCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return applyOrderChange(ctx, h.uowFactory, h.clock, cmd.OrderID(), func(o *order.Order, now time.Time) error {
		return o.AllocatePlant(cmd.Plant(), now)
	})
}
