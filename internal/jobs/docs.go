// Package jobs provides scheduled background tasks for the transfer service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. DraftReaperJob - Periodically deletes Draft orders that were created
// but never filled or sent, after a configurable age.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(reapHandler, "0 3 * * *", 30*24*time.Hour, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Reaper run failures are logged and retried on the next tick; they never
// abort the scheduler.
package jobs
