package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	legacyStoreSyncJob *LegacyStoreSyncJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(retrier StoreNotificationRetrier, logger *slog.Logger) *JobManager {
	return &JobManager{
		legacyStoreSyncJob: NewLegacyStoreSyncJob(retrier, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.legacyStoreSyncJob.Start(); err != nil {
		return fmt.Errorf("failed to start legacy store sync job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.legacyStoreSyncJob.Stop()
}
