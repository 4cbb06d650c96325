package jobs

import (
	"fmt"
	"log/slog"
)

// Schedule configures when the jobs run.
type Schedule struct {
	HealthSweep      string
	HistoryRetention string
	RetentionDays    int
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	healthSweepJob      *HealthSweepJob
	historyRetentionJob *HistoryRetentionJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	sweepHandler healthSweeper,
	pruneHandler historyPruner,
	schedule Schedule,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		healthSweepJob:      NewHealthSweepJob(sweepHandler, schedule.HealthSweep, logger),
		historyRetentionJob: NewHistoryRetentionJob(pruneHandler, schedule.HistoryRetention, schedule.RetentionDays, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.healthSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start health sweep job: %w", err)
	}

	if err := jm.historyRetentionJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.healthSweepJob.Stop()
		return fmt.Errorf("failed to start history retention job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running ones to finish.
func (jm *JobManager) StopAll() {
	jm.historyRetentionJob.Stop()
	jm.healthSweepJob.Stop()
}
