package commands

import (
	"context"
	"errors"
	"time"

	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/core/domain/model/order"
	"salesflow/internal/pkg/guard"
)

var ErrSetQAOutcomeCommandIsNotConstructed = errors.New(
	"SetQAOutcomeCommand must be created via NewSetQAOutcomeCommand constructor",
)

// SetQAOutcomeCommand records a quality decision for a line item. A rejection
// is stored like an approval; the item then blocks the Quality gate until it
// is approved after rework.
type SetQAOutcomeCommand struct {
	itemID   kernel.UUID
	approved bool
	guard    guard.ConstructorGuard
}

func NewSetQAOutcomeCommand(itemID kernel.UUID, approved bool) (SetQAOutcomeCommand, error) {
	if err := validateItemID(itemID); err != nil {
		return SetQAOutcomeCommand{}, err
	}
	return SetQAOutcomeCommand{
		itemID:   itemID,
		approved: approved,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c SetQAOutcomeCommand) Validate() error {
	return c.guard.Validate(ErrSetQAOutcomeCommandIsNotConstructed)
}

func (c SetQAOutcomeCommand) ItemID() kernel.UUID { return c.itemID }
func (c SetQAOutcomeCommand) Approved() bool      { return c.approved }

type SetQAOutcomeCommandHandler struct {
	uowFactory WorkflowUoWFactory
	clock      kernel.Clock
}

func NewSetQAOutcomeCommandHandler(uowFactory WorkflowUoWFactory, clock kernel.Clock) SetQAOutcomeCommandHandler {
	return SetQAOutcomeCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h SetQAOutcomeCommandHandler) Handle(ctx context.Context, cmd SetQAOutcomeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return applyItemMilestone(ctx, h.uowFactory, h.clock, cmd.ItemID(), func(item *order.LineItem, now time.Time) error {
		item.SetQAOutcome(cmd.Approved(), now)
		return nil
	})
}
