package commands

import (
	"context"
	"errors"

	"salesflow/internal/core/domain/model/history"
	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/pkg/guard"
)

var ErrSweepHealthCommandIsNotConstructed = errors.New(
	"SweepHealthCommand must be created via NewSweepHealthCommand constructor",
)

// SweepHealthCommand snapshots the health colour of every order.
type SweepHealthCommand struct {
	guard guard.ConstructorGuard
}

func NewSweepHealthCommand() SweepHealthCommand {
	return SweepHealthCommand{guard: guard.NewConstructorGuard()}
}

func (c SweepHealthCommand) Validate() error {
	return c.guard.Validate(ErrSweepHealthCommandIsNotConstructed)
}

// SweepHealthCommandHandler appends one HealthSnapshot history entry per
// order, all stamped with the same instant, in a single transaction. Orders
// are only read.
type SweepHealthCommandHandler struct {
	uowFactory HistoryUoWFactory
	clock      kernel.Clock
}

func NewSweepHealthCommandHandler(uowFactory HistoryUoWFactory, clock kernel.Clock) SweepHealthCommandHandler {
	return SweepHealthCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle returns the number of snapshot entries written.
func (h SweepHealthCommandHandler) Handle(ctx context.Context, cmd SweepHealthCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetAll(ctx)
	if err != nil {
		return 0, err
	}
	if len(orders) == 0 {
		return 0, nil
	}

	now := h.clock.Now()
	entries := make([]*history.StageEntry, 0, len(orders))
	for _, o := range orders {
		entry, entryErr := history.NewHealthSnapshot(kernel.NewUUID(), o, now)
		if entryErr != nil {
			return 0, entryErr
		}
		entries = append(entries, entry)
	}

	if err = uow.StageHistoryRepository().Append(ctx, entries...); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(entries), nil
}
