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

var ErrMarkMaterialOrderedCommandIsNotConstructed = errors.New(
	"MarkMaterialOrderedCommand must be created via NewMarkMaterialOrderedCommand constructor",
)

// MarkMaterialOrderedCommand records the raw-material purchase of a line item.
type MarkMaterialOrderedCommand struct {
	itemID       kernel.UUID
	orderRef     string
	expectedDate *time.Time
	guard        guard.ConstructorGuard
}

func NewMarkMaterialOrderedCommand(itemID kernel.UUID, orderRef string, expectedDate *time.Time) (MarkMaterialOrderedCommand, error) {
	if err := validateItemID(itemID); err != nil {
		return MarkMaterialOrderedCommand{}, err
	}
	return MarkMaterialOrderedCommand{
		itemID:       itemID,
		orderRef:     strings.TrimSpace(orderRef),
		expectedDate: expectedDate,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c MarkMaterialOrderedCommand) Validate() error {
	return c.guard.Validate(ErrMarkMaterialOrderedCommandIsNotConstructed)
}

func (c MarkMaterialOrderedCommand) ItemID() kernel.UUID      { return c.itemID }
func (c MarkMaterialOrderedCommand) OrderRef() string         { return c.orderRef }
func (c MarkMaterialOrderedCommand) ExpectedDate() *time.Time { return c.expectedDate }

type MarkMaterialOrderedCommandHandler struct {
	uowFactory WorkflowUoWFactory
	clock      kernel.Clock
}

func NewMarkMaterialOrderedCommandHandler(uowFactory WorkflowUoWFactory, clock kernel.Clock) MarkMaterialOrderedCommandHandler {
	return MarkMaterialOrderedCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h MarkMaterialOrderedCommandHandler) Handle(ctx context.Context, cmd MarkMaterialOrderedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return applyItemMilestone(ctx, h.uowFactory, h.clock, cmd.ItemID(), func(item *order.LineItem, now time.Time) error {
		item.MarkMaterialOrdered(cmd.OrderRef(), cmd.ExpectedDate(), now)
		return nil
	})
}
