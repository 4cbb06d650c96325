package jobs

import (
	"context"
	"log/slog"

	"salesflow/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type historyPruner interface {
	Handle(ctx context.Context, cmd commands.PruneHistoryCommand) (int64, error)
}

// HistoryRetentionJob deletes health snapshots older than retentionDays.
// With retentionDays of 0 the job is disabled and Start schedules nothing.
type HistoryRetentionJob struct {
	handler       historyPruner
	schedule      string
	retentionDays int
	cron          *cron.Cron
	logger        *slog.Logger
}

func NewHistoryRetentionJob(
	handler historyPruner,
	schedule string,
	retentionDays int,
	logger *slog.Logger,
) *HistoryRetentionJob {
	return &HistoryRetentionJob{
		handler:       handler,
		schedule:      schedule,
		retentionDays: retentionDays,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With("component", "history_retention_job"),
	}
}

// Enabled reports whether pruning is configured.
func (j *HistoryRetentionJob) Enabled() bool {
	return j.retentionDays > 0
}

func (j *HistoryRetentionJob) Start() error {
	ctx := context.Background()
	if !j.Enabled() {
		j.logger.InfoContext(ctx, "History retention job disabled")
		return nil
	}

	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(ctx, "History retention job started",
		"schedule", j.schedule, "retention_days", j.retentionDays)
	return nil
}

// Run prunes once. It does nothing when the job is disabled.
func (j *HistoryRetentionJob) Run(ctx context.Context) {
	if !j.Enabled() {
		return
	}

	cmd, err := commands.NewPruneHistoryCommand(j.retentionDays)
	if err != nil {
		j.logger.ErrorContext(ctx, "History retention job failed", "error", err)
		return
	}

	deleted, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "History retention job failed", "error", err)
		return
	}
	j.logger.InfoContext(ctx, "History retention finished", "deleted", deleted)
}

func (j *HistoryRetentionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "History retention job stopped")
}
