// Package jobs provides scheduled background tasks for the food delivery
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
//  1. LoyaltyCreditJob - every ten seconds applies up to 50 pending loyalty
//     credits of delivered orders to customer accounts
//
// The JobManager also owns the lifecycle of the status notification worker,
// so both start and stop together with the HTTP server.
//
// # Usage
//
//	loyaltyJob := jobs.NewLoyaltyCreditJob(handler, cfg.LoyaltyJobSchedule, 0, logger)
//	jobManager := jobs.NewJobManager(loyaltyJob, notifier, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll(ctx)
//
// # Scheduling
//
// Schedules use the six-field cron format with a leading seconds field. A
// tick that fires while the previous batch is still running is skipped.
//
// # Error Handling
//
// A failed batch is logged and rolled back; its credits stay pending and are
// picked up by the next tick.
package jobs
