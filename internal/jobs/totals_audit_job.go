package jobs

import (
	"context"
	"log/slog"

	"orders/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// TotalsAuditJob periodically checks that every order's cached totals
// still match the sum of its line items. The job only reports; repairs
// are left to an operator because a drift means a write-path bug.
type TotalsAuditJob struct {
	handler queries.GetTotalsDriftQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewTotalsAuditJob creates a new totals audit job running hourly.
func NewTotalsAuditJob(handler queries.GetTotalsDriftQueryHandler, logger *slog.Logger) *TotalsAuditJob {
	return &TotalsAuditJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "totals_audit_job"),
	}
}

// Start begins the totals audit job to run at the top of every hour.
func (j *TotalsAuditJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetTotalsDriftQuery()

		drifts, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Totals audit job failed", "error", err)
			return
		}

		if len(drifts) == 0 {
			j.logger.DebugContext(ctx, "Totals audit passed, all orders consistent")
			return
		}

		for _, drift := range drifts {
			j.logger.WarnContext(ctx, "Order totals drifted from item rows",
				"order_id", drift.OrderID,
				"cached_num_products", drift.CachedNumProducts,
				"actual_num_products", drift.ActualNumProducts,
				"cached_final_price", drift.CachedFinalPrice.String(),
				"actual_final_price", drift.ActualFinalPrice.String(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Totals audit job started (running hourly)")
	return nil
}

// Stop stops the totals audit job.
func (j *TotalsAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Totals audit job stopped")
}
