package commands

import (
	"errors"

	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/core/domain/model/order"
	"salesflow/internal/pkg/errs"
	"salesflow/internal/pkg/guard"
)

var ErrDirectMoveCommandIsNotConstructed = errors.New(
	"DirectMoveCommand must be created via NewDirectMoveCommand constructor",
)

// DirectMoveCommand places an order in any stage without checking the stage
// gate. It is an administrative correction, exposed only to privileged callers.
type DirectMoveCommand struct {
	orderID kernel.UUID
	target  order.Stage
	guard   guard.ConstructorGuard
}

func NewDirectMoveCommand(orderID kernel.UUID, target order.Stage) (DirectMoveCommand, error) {
	var idErr error
	if err := orderID.Validate(); err != nil {
		idErr = errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	if err := errors.Join(idErr, target.Validate()); err != nil {
		return DirectMoveCommand{}, err
	}

	return DirectMoveCommand{
		orderID: orderID,
		target:  target,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c DirectMoveCommand) Validate() error {
	return c.guard.Validate(ErrDirectMoveCommandIsNotConstructed)
}

func (c DirectMoveCommand) OrderID() kernel.UUID { return c.orderID }
func (c DirectMoveCommand) Target() order.Stage  { return c.target }
