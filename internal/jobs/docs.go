// Package jobs provides scheduled background tasks for the marketplace core.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the request path cannot guarantee.
//
// # Available Jobs
//
// 1. DeliveryMatchingJob - Re-matches pending orders that have no delivery
// assignment, closing the degraded path left when no delivery person was
// available at order-creation time.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(uowFactory, matchHandler, schedule, logger)
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
// The matching job schedule comes from configuration (MATCHING_RETRY_SCHEDULE)
// as a seconds-resolution cron expression, "*/5 * * * * *" by default.
//
// # Error Handling
//
// The matching job ignores expected business outcomes: an exhausted delivery
// pool stops the run early, and orders matched or transitioned concurrently
// are skipped. Anything else is logged as a system issue.
package jobs
