package commands

import (
	"context"
	"errors"
	"time"

	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/core/domain/model/order"
	"salesflow/internal/pkg/guard"
)

var ErrAssignShipDateCommandIsNotConstructed = errors.New(
	"AssignShipDateCommand must be created via NewAssignShipDateCommand constructor",
)

// AssignShipDateCommand puts an order on the shipping calendar.
type AssignShipDateCommand struct {
	orderID  kernel.UUID
	shipDate time.Time
	guard    guard.ConstructorGuard
}

func NewAssignShipDateCommand(orderID kernel.UUID, shipDate time.Time) (AssignShipDateCommand, error) {
	var dateErr error
	if shipDate.IsZero() {
		dateErr = order.ErrShipDateIsRequired
	}
	if err := errors.Join(validateOrderID(orderID), dateErr); err != nil {
		return AssignShipDateCommand{}, err
	}
	return AssignShipDateCommand{
		orderID:  orderID,
		shipDate: shipDate,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c AssignShipDateCommand) Validate() error {
	return c.guard.Validate(ErrAssignShipDateCommandIsNotConstructed)
}

func (c AssignShipDateCommand) OrderID() kernel.UUID { return c.orderID }
func (c AssignShipDateCommand) ShipDate() time.Time  { return c.shipDate }

type AssignShipDateCommandHandler struct {
	uowFactory WorkflowUoWFactory
	clock      kernel.Clock
}

func NewAssignShipDateCommandHandler(uowFactory WorkflowUoWFactory, clock kernel.Clock) AssignShipDateCommandHandler {
	return AssignShipDateCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h AssignShipDateCommandHandler) Handle(ctx context.Context, cmd AssignShipDateCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return applyOrderChange(ctx, h.uowFactory, h.clock, cmd.OrderID(), func(o *order.Order, now time.Time) error {
		shipDate := cmd.ShipDate()
		return o.AssignShipDate(&shipDate, now)
	})
}
