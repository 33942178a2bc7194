package jobs

import (
	"fmt"
	"log/slog"

	"github.com/WWStoryMode/project-firefly/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	deliveryMatchingJob *DeliveryMatchingJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	uowFactory commands.OrderUoWFactory,
	matchHandler MatchHandler,
	matchingSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		deliveryMatchingJob: NewDeliveryMatchingJob(uowFactory, matchHandler, matchingSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.deliveryMatchingJob.Start(); err != nil {
		return fmt.Errorf("failed to start delivery matching job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.deliveryMatchingJob.Stop()
}
