// Package jobs provides scheduled background tasks for the fulfilment
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the fulfilment service.
//
// # Available Jobs
//
// 1. LegacyStoreSyncJob - Runs every 30 seconds to replay store
// notifications that could not be delivered to the legacy store manager
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(legacyGateway, logger)
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
// The sync job uses the cron expression "@every 30s". The legacy store
// manager is an external system, so a moderate retry interval avoids
// hammering it while it recovers.
//
// # Error Handling
//
// - The sync job keeps undelivered notifications queued and logs each
// failed replay attempt; delivery order is preserved across retries
// - Failed job starts will stop any already running jobs
package jobs
