package jobs

import (
	"fmt"
	"log/slog"

	"foodorder/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dailyTurnoverJob *DailyTurnoverJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	turnoverReportHandler queries.TurnoverReportQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dailyTurnoverJob: NewDailyTurnoverJob(turnoverReportHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dailyTurnoverJob.Start(); err != nil {
		return fmt.Errorf("failed to start daily turnover job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dailyTurnoverJob.Stop()
}
