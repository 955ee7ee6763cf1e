package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// OrderReportJob periodically logs a per-status breakdown of the orders
// placed during the current day. It is a read-only observer over the query
// side and never mutates order state.
type OrderReportJob struct {
	handler queries.ListOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
	now     func() time.Time
}

// NewOrderReportJob creates a job that reports daily order-status counts.
// Uses ListOrdersQueryHandler to fetch the day's orders on each run.
func NewOrderReportJob(handler queries.ListOrdersQueryHandler, logger *slog.Logger) *OrderReportJob {
	return &OrderReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "order_report_job"),
		now:     time.Now,
	}
}

// Start schedules the report to run at the top of every hour.
func (j *OrderReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order report job started (running hourly)")
	return nil
}

// Stop stops the report job.
func (j *OrderReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order report job stopped")
}

func (j *OrderReportJob) run() {
	ctx := context.Background()

	day := j.now()
	query, err := queries.NewListOrdersQuery(nil, &day, &day)
	if err != nil {
		j.logger.ErrorContext(ctx, "Order report job failed to build query", "error", err)
		return
	}

	orders, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Order report job failed", "error", err)
		return
	}

	counts := make(map[order.Status]int)
	for _, o := range orders {
		counts[o.Status]++
	}

	j.logger.InfoContext(ctx, "Daily order report",
		slog.String("date", day.Format("2006-01-02")),
		slog.Int("total", len(orders)),
		slog.Int("created", counts[order.Created]),
		slog.Int("confirmed", counts[order.Confirmed]),
		slog.Int("in_delivery", counts[order.InDelivery]),
		slog.Int("delivered", counts[order.Delivered]),
		slog.Int("cancelled", counts[order.Cancelled]),
	)
}
