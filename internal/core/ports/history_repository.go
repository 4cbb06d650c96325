package ports

import (
	"context"
	"time"

	"salesflow/internal/core/domain/model/history"
	"salesflow/internal/core/domain/model/importlog"
	"salesflow/internal/core/domain/model/kernel"
)

// StageHistoryRepository is the append-only store of stage history entries.
type StageHistoryRepository interface {
	Append(ctx context.Context, entries ...*history.StageEntry) error

	// ListByOrder returns the entries of orderID oldest first.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*history.StageEntry, error)

	// PruneSnapshotsBefore deletes health snapshots entered before cutoff and
	// returns how many were removed. Transition entries are never deleted.
	PruneSnapshotsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// ImportLogRepository is the append-only store of import log entries.
type ImportLogRepository interface {
	Add(ctx context.Context, entry *importlog.ImportEntry) error
}
