package jobs

import (
	"fmt"
	"log/slog"

	"orders/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	totalsAuditJob *TotalsAuditJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	totalsDriftHandler queries.GetTotalsDriftQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		totalsAuditJob: NewTotalsAuditJob(totalsDriftHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.totalsAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start totals audit job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.totalsAuditJob.Stop()
}
