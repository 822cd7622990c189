// Package jobs provides scheduled background tasks for the order system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order service.
//
// # Available Jobs
//
// 1. TotalsAuditJob - Runs hourly to compare every order's cached totals
// against the sum of its line items and log any drift.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(totalsDriftHandler, logger)
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
// The audit job uses the cron expression "0 * * * *" and runs at the top
// of every hour. Hourly is frequent enough to surface a write-path bug
// quickly without adding read load.
//
// # Error Handling
//
// The audit job is strictly read-only. Query failures are logged as
// errors; detected drift is logged per order at warning level and never
// repaired automatically.
package jobs
