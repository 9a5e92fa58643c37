// Package jobs provides scheduled background tasks for the storage facility.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// with the standard five-field spec ("0 0 1 * *") or descriptors
// ("@monthly").
//
// # Available Jobs
//
// 1. MonthlyBillingJob - charges every roster customer the rent due for their units
// 2. OccupancyReportJob - logs vacant unit counts per kind
//
// # Usage
//
//	jobManager := jobs.NewJobManager(chargeRentHandler, emptyUnitsHandler, jobs.Schedules{
//		Billing: "0 0 1 * *",
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A job with an empty schedule is never created
// - A run that fails is logged and retried on the next tick
// - Failed job starts stop any already running jobs
package jobs
