package commands

import (
	"errors"

	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/pkg/errs"
	"salesflow/internal/pkg/guard"
)

var ErrRequestAdvanceCommandIsNotConstructed = errors.New(
	"RequestAdvanceCommand must be created via NewRequestAdvanceCommand constructor",
)

// RequestAdvanceCommand asks for a child order to move to the next pipeline
// stage, subject to the stage gate.
type RequestAdvanceCommand struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewRequestAdvanceCommand(orderID kernel.UUID) (RequestAdvanceCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RequestAdvanceCommand{}, errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	return RequestAdvanceCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RequestAdvanceCommand) Validate() error {
	return c.guard.Validate(ErrRequestAdvanceCommandIsNotConstructed)
}

func (c RequestAdvanceCommand) OrderID() kernel.UUID {
	return c.orderID
}
