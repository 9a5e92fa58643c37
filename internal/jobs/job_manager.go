package jobs

import (
	"fmt"
	"log/slog"

	"storage/internal/core/application/usecases/commands"
	"storage/internal/core/application/usecases/queries"
)

// Schedules holds the cron specs of the background jobs. An empty spec
// leaves the job disabled.
type Schedules struct {
	Billing   string
	Occupancy string
}

type job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs    []job
	started []job
}

// NewJobManager creates a job manager holding every job whose schedule is
// set.
func NewJobManager(
	chargeRentHandler commands.ChargeMonthlyRentCommandHandler,
	emptyUnitsHandler queries.GetEmptyUnitsQueryHandler,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}

	if schedules.Billing != "" {
		jm.jobs = append(jm.jobs, NewMonthlyBillingJob(chargeRentHandler, schedules.Billing, logger))
	}

	if schedules.Occupancy != "" {
		jm.jobs = append(jm.jobs, NewOccupancyReportJob(emptyUnitsHandler, schedules.Occupancy, logger))
	}

	return jm
}

// Len returns the number of enabled jobs.
func (jm *JobManager) Len() int {
	return len(jm.jobs)
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	for _, j := range jm.jobs {
		if err := j.Start(); err != nil {
			// Stop already started jobs if this one fails
			jm.StopAll()
			return fmt.Errorf("failed to start job %T: %w", j, err)
		}
		jm.started = append(jm.started, j)
	}

	return nil
}

// StopAll stops all started jobs gracefully.
func (jm *JobManager) StopAll() {
	for _, j := range jm.started {
		j.Stop()
	}
	jm.started = nil
}
