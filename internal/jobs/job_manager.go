package jobs

import (
	"fmt"
	"log/slog"

	"production/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	billingReportJob *BillingReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	pendingBillingHandler queries.GetPendingBillingOrdersQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		billingReportJob: NewBillingReportJob(pendingBillingHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.billingReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start billing report job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.billingReportJob.Stop()
}
