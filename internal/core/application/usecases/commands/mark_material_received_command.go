package commands

import (
	"context"
	"errors"
	"time"

	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/core/domain/model/order"
	"salesflow/internal/pkg/guard"
)

var ErrMarkMaterialReceivedCommandIsNotConstructed = errors.New(
	"MarkMaterialReceivedCommand must be created via NewMarkMaterialReceivedCommand constructor",
)

// MarkMaterialReceivedCommand records the raw-material receipt of a line
// item. A nil received date means the material arrived now.
type MarkMaterialReceivedCommand struct {
	itemID       kernel.UUID
	receivedDate *time.Time
	guard        guard.ConstructorGuard
}

func NewMarkMaterialReceivedCommand(itemID kernel.UUID, receivedDate *time.Time) (MarkMaterialReceivedCommand, error) {
	if err := validateItemID(itemID); err != nil {
		return MarkMaterialReceivedCommand{}, err
	}
	return MarkMaterialReceivedCommand{
		itemID:       itemID,
		receivedDate: receivedDate,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c MarkMaterialReceivedCommand) Validate() error {
	return c.guard.Validate(ErrMarkMaterialReceivedCommandIsNotConstructed)
}

func (c MarkMaterialReceivedCommand) ItemID() kernel.UUID      { return c.itemID }
func (c MarkMaterialReceivedCommand) ReceivedDate() *time.Time { return c.receivedDate }

type MarkMaterialReceivedCommandHandler struct {
	uowFactory WorkflowUoWFactory
	clock      kernel.Clock
}

func NewMarkMaterialReceivedCommandHandler(uowFactory WorkflowUoWFactory, clock kernel.Clock) MarkMaterialReceivedCommandHandler {
	return MarkMaterialReceivedCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h MarkMaterialReceivedCommandHandler) Handle(ctx context.Context, cmd MarkMaterialReceivedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return applyItemMilestone(ctx, h.uowFactory, h.clock, cmd.ItemID(), func(item *order.LineItem, now time.Time) error {
		item.MarkMaterialReceived(cmd.ReceivedDate(), now)
		return nil
	})
}
