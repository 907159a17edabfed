package jobs

import (
	"context"
	"log/slog"

	"production/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// BillingReportJob periodically reports the billing backlog: completed
// orders that await confirmation and have not been forwarded.
type BillingReportJob struct {
	handler queries.GetPendingBillingOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewBillingReportJob creates a new billing backlog report job.
func NewBillingReportJob(
	handler queries.GetPendingBillingOrdersQueryHandler,
	logger *slog.Logger,
) *BillingReportJob {
	return &BillingReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "billing_report_job"),
	}
}

// Start begins the billing report job to run every minute.
func (j *BillingReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		views, err := j.handler.Handle(ctx, queries.NewGetPendingBillingOrdersQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Billing report job failed", "error", err)
			return
		}

		if len(views) == 0 {
			return
		}

		j.logger.InfoContext(ctx, "Orders awaiting billing", "count", len(views))
		for _, view := range views {
			j.logger.InfoContext(ctx, "Pending billing",
				"orderId", view.ID.String(),
				"orderNumber", view.OrderNumber,
				"jobName", view.JobName,
				"stage", view.Stage.String())
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Billing report job started (running every minute)")
	return nil
}

// Stop stops the billing report job.
func (j *BillingReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Billing report job stopped")
}
