package jobs

import (
	"context"
	"log/slog"

	"storage/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// MonthlyBillingJob charges every roster customer their monthly rent on a
// cron schedule.
type MonthlyBillingJob struct {
	handler  commands.ChargeMonthlyRentCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewMonthlyBillingJob creates the job. schedule is a standard five-field cron
// spec such as "0 0 1 * *" or a descriptor such as "@monthly".
func NewMonthlyBillingJob(
	handler commands.ChargeMonthlyRentCommandHandler,
	schedule string,
	logger *slog.Logger,
) *MonthlyBillingJob {
	return &MonthlyBillingJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "monthly_billing_job"),
	}
}

// Start registers the billing run and starts the scheduler.
func (j *MonthlyBillingJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Monthly billing job started", "schedule", j.schedule)
	return nil
}

// Run performs one billing run immediately.
func (j *MonthlyBillingJob) Run() {
	ctx := context.Background()

	summary, err := j.handler.Handle(ctx, commands.NewChargeMonthlyRentCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Monthly billing failed", "error", err)
		return
	}

	for _, charge := range summary.Charges {
		j.logger.DebugContext(ctx, "Customer charged",
			"customer", charge.CustomerName,
			"units", charge.Units,
			"amount", charge.Amount.StringFixed(2),
			"balance", charge.Balance.StringFixed(2),
		)
	}

	j.logger.InfoContext(ctx, "Monthly rent charged",
		"customers", len(summary.Charges),
		"total", summary.Total.StringFixed(2),
	)
}

// Stop stops the scheduler. A billing run already in progress is allowed to
// finish.
func (j *MonthlyBillingJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Monthly billing job stopped")
}
