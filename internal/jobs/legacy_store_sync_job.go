package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// StoreNotificationRetrier replays store notifications that previously
// failed to reach the legacy store manager.
type StoreNotificationRetrier interface {
	// RetryPending replays queued notifications in order. It stops at the
	// first failure and keeps the remainder queued.
	RetryPending(ctx context.Context) error

	// PendingCount reports how many notifications are waiting for replay.
	PendingCount() int
}

// LegacyStoreSyncJob manages the scheduled replay of undelivered store
// notifications. Runs every 30 seconds so the legacy system catches up
// shortly after an outage without being flooded during one.
type LegacyStoreSyncJob struct {
	retrier StoreNotificationRetrier
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewLegacyStoreSyncJob creates a new job for syncing the legacy store
// manager.
func NewLegacyStoreSyncJob(retrier StoreNotificationRetrier, logger *slog.Logger) *LegacyStoreSyncJob {
	return &LegacyStoreSyncJob{
		retrier: retrier,
		cron:    cron.New(),
		logger:  logger.With("component", "legacy_store_sync_job"),
	}
}

// Start begins the legacy store sync job to run every 30 seconds.
func (j *LegacyStoreSyncJob) Start() error {
	_, err := j.cron.AddFunc("@every 30s", func() {
		ctx := context.Background()

		pending := j.retrier.PendingCount()
		if pending == 0 {
			return
		}

		if err := j.retrier.RetryPending(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Legacy store sync job failed",
				"pending", j.retrier.PendingCount(), "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Legacy store sync job started (running every 30 seconds)")
	return nil
}

// Stop stops the legacy store sync job.
func (j *LegacyStoreSyncJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Legacy store sync job stopped")
}
