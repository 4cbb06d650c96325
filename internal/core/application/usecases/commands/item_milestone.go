package commands

import (
	"context"
	"time"

	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/core/domain/model/order"
	"salesflow/internal/pkg/errs"
)

// itemMutation changes a line item in memory.
type itemMutation func(item *order.LineItem, now time.Time) error

// applyItemMilestone loads a line item and its owning order, applies mutate
// and saves both in one transaction. Saving the owner records the activity
// and makes concurrent changes to items of one order conflict on its version.
func applyItemMilestone(
	ctx context.Context,
	uowFactory WorkflowUoWFactory,
	clock kernel.Clock,
	itemID kernel.UUID,
	mutate itemMutation,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	itemRepo := uow.LineItemRepository()
	orderRepo := uow.OrderRepository()

	item, err := itemRepo.Get(ctx, itemID)
	if err != nil {
		return err
	}

	owner, err := orderRepo.Get(ctx, item.OrderID())
	if err != nil {
		return err
	}

	now := clock.Now()
	if err = mutate(item, now); err != nil {
		return err
	}
	owner.Touch(now)

	if err = itemRepo.Update(ctx, item); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, owner); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func validateItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("line item id", err)
	}
	return nil
}
