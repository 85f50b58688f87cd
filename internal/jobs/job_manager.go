package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dailyDigestJob *DailyDigestJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	orders OrderStatsHandler,
	payments PaymentStatsHandler,
	deliveries DeliveryStatsHandler,
	digestSchedule string,
	loc *time.Location,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dailyDigestJob: NewDailyDigestJob(orders, payments, deliveries, digestSchedule, loc, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dailyDigestJob.Start(); err != nil {
		return fmt.Errorf("failed to start daily digest job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dailyDigestJob.Stop()
}
