// Package jobs provides scheduled background tasks for the catering service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules use the six field format with a leading seconds field.
//
// # Available Jobs
//
// 1. DailyDigestJob - Logs the order, payment and delivery statistics of the
// day, by default every morning at 07:00 ("0 0 7 * * *")
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(orderQueries, paymentQueries, deliveryQueries, "", loc, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A digest run logs what it could collect and reports failed ledgers as one error
// - Invalid schedules are rejected when the job starts
package jobs
