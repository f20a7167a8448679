// Package jobs provides scheduled background tasks, implemented as
// cron-based jobs using github.com/robfig/cron/v3.
package jobs

import (
	"fmt"
	"log/slog"

	"freightops/internal/core/application/usecases/queries"
	"freightops/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	paymentReminderJob *PaymentReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	outstandingBillsHandler queries.GetOutstandingBillsQueryHandler,
	notifier ports.Notifier,
	reminderSchedule string,
	reminderDueDays int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		paymentReminderJob: NewPaymentReminderJob(
			outstandingBillsHandler, notifier, reminderSchedule, reminderDueDays, logger,
		),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.paymentReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start payment reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.paymentReminderJob.Stop()
}
