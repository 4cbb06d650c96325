// Package jobs provides scheduled background tasks for the salesflow system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance of the stage history.
//
// # Available Jobs
//
// 1. HealthSweepJob - Appends one health snapshot per order to the stage history
// 2. HistoryRetentionJob - Deletes health snapshots older than the retention period
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(sweepHandler, pruneHandler, jobs.Schedule{
//		HealthSweep:      "0 0 * * * *",
//		HistoryRetention: "0 30 3 * * *",
//		RetentionDays:    30,
//	}, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are cron expressions with a leading seconds field. The sweep
// runs hourly and retention nightly by default. A retention of 0 days turns
// pruning off; transition history is never pruned.
//
// # Error Handling
//
// - A failed run is logged and retried at the next tick
// - Failed job starts will stop any already running jobs
package jobs
