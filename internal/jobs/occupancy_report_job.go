package jobs

import (
	"context"
	"log/slog"

	"storage/internal/core/application/usecases/queries"
	"storage/internal/core/domain/model/unit"

	"github.com/robfig/cron/v3"
)

// OccupancyReportJob logs the number of vacant units of each kind.
type OccupancyReportJob struct {
	handler  queries.GetEmptyUnitsQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewOccupancyReportJob(
	handler queries.GetEmptyUnitsQueryHandler,
	schedule string,
	logger *slog.Logger,
) *OccupancyReportJob {
	return &OccupancyReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "occupancy_report_job"),
	}
}

func (j *OccupancyReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Occupancy report job started", "schedule", j.schedule)
	return nil
}

// Run logs one report immediately.
func (j *OccupancyReportJob) Run() {
	ctx := context.Background()

	query, err := queries.NewGetEmptyUnitsQuery()
	if err != nil {
		j.logger.ErrorContext(ctx, "Occupancy report failed", "error", err)
		return
	}

	views, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Occupancy report failed", "error", err)
		return
	}

	vacant := make(map[unit.Kind]int, len(unit.Kinds()))
	for _, v := range views {
		vacant[v.Kind]++
	}

	j.logger.InfoContext(ctx, "Vacant units",
		"standard", vacant[unit.Standard],
		"humidity", vacant[unit.Humidity],
		"temperature", vacant[unit.Temperature],
	)
}

func (j *OccupancyReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Occupancy report job stopped")
}
