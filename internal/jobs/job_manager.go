package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	labelRetentionJob *LabelRetentionJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	purgeHandler PurgePrintJobsHandler,
	retentionSchedule string,
	retention time.Duration,
	logger *slog.Logger,
) (*JobManager, error) {
	labelRetentionJob, err := NewLabelRetentionJob(purgeHandler, retentionSchedule, retention, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create label retention job: %w", err)
	}

	return &JobManager{
		labelRetentionJob: labelRetentionJob,
	}, nil
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.labelRetentionJob.Start(); err != nil {
		return fmt.Errorf("failed to start label retention job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.labelRetentionJob.Stop()
}
