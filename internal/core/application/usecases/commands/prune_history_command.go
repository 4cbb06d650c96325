package commands

import (
	"context"
	"errors"
	"time"

	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/pkg/errs"
	"salesflow/internal/pkg/guard"
)

var ErrPruneHistoryCommandIsNotConstructed = errors.New(
	"PruneHistoryCommand must be created via NewPruneHistoryCommand constructor",
)

// PruneHistoryCommand removes health snapshots older than the retention window.
type PruneHistoryCommand struct {
	retention time.Duration
	guard     guard.ConstructorGuard
}

// NewPruneHistoryCommand takes the retention window in whole days.
func NewPruneHistoryCommand(retentionDays int) (PruneHistoryCommand, error) {
	if retentionDays < 1 {
		return PruneHistoryCommand{}, errs.NewValueIsOutOfRangeError("retention days", retentionDays, 1, "unbounded")
	}
	return PruneHistoryCommand{
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c PruneHistoryCommand) Validate() error {
	return c.guard.Validate(ErrPruneHistoryCommandIsNotConstructed)
}

func (c PruneHistoryCommand) Retention() time.Duration {
	return c.retention
}

type PruneHistoryCommandHandler struct {
	uowFactory HistoryUoWFactory
	clock      kernel.Clock
}

func NewPruneHistoryCommandHandler(uowFactory HistoryUoWFactory, clock kernel.Clock) PruneHistoryCommandHandler {
	return PruneHistoryCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle returns the number of deleted snapshot entries.
func (h PruneHistoryCommandHandler) Handle(ctx context.Context, cmd PruneHistoryCommand) (int64, error) {
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

	cutoff := h.clock.Now().Add(-cmd.Retention())
	deleted, err := uow.StageHistoryRepository().PruneSnapshotsBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return deleted, nil
}
