package jobs

import (
	"context"
	"log/slog"

	"salesflow/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type healthSweeper interface {
	Handle(ctx context.Context, cmd commands.SweepHealthCommand) (int, error)
}

// HealthSweepJob records the health colour of every order on a schedule.
type HealthSweepJob struct {
	handler  healthSweeper
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewHealthSweepJob creates a sweep job running on schedule (cron with seconds).
func NewHealthSweepJob(handler healthSweeper, schedule string, logger *slog.Logger) *HealthSweepJob {
	return &HealthSweepJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "health_sweep_job"),
	}
}

// Start schedules the sweep. An invalid schedule is returned as an error.
func (j *HealthSweepJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Health sweep job started", "schedule", j.schedule)
	return nil
}

// Run performs one sweep.
func (j *HealthSweepJob) Run(ctx context.Context) {
	written, err := j.handler.Handle(ctx, commands.NewSweepHealthCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Health sweep job failed", "error", err)
		return
	}
	j.logger.InfoContext(ctx, "Health sweep finished", "snapshots", written)
}

// Stop stops the health sweep job.
func (j *HealthSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Health sweep job stopped")
}
