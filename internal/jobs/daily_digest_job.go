package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"catering/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultDigestSchedule runs the digest every day at 07:00:00.
const DefaultDigestSchedule = "0 0 7 * * *"

type OrderStatsHandler interface {
	HandleStats(ctx context.Context, query queries.GetOrderStatsQuery) (queries.OrderStats, error)
}

type PaymentStatsHandler interface {
	HandleStats(ctx context.Context, query queries.GetPaymentStatsQuery) (queries.PaymentStats, error)
}

type DeliveryStatsHandler interface {
	HandleStats(ctx context.Context, query queries.GetDeliveryStatsQuery) (queries.DeliveryStats, error)
}

// DailyDigestJob logs the order, payment and delivery statistics of the day.
type DailyDigestJob struct {
	orders     OrderStatsHandler
	payments   PaymentStatsHandler
	deliveries DeliveryStatsHandler
	schedule   string
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewDailyDigestJob creates the digest job. schedule is a six field cron
// expression (with seconds) evaluated in loc; empty means
// DefaultDigestSchedule.
func NewDailyDigestJob(
	orders OrderStatsHandler,
	payments PaymentStatsHandler,
	deliveries DeliveryStatsHandler,
	schedule string,
	loc *time.Location,
	logger *slog.Logger,
) *DailyDigestJob {
	if schedule == "" {
		schedule = DefaultDigestSchedule
	}
	if loc == nil {
		loc = time.Local
	}
	return &DailyDigestJob{
		orders:     orders,
		payments:   payments,
		deliveries: deliveries,
		schedule:   schedule,
		cron:       cron.New(cron.WithSeconds(), cron.WithLocation(loc)),
		logger:     logger.With("component", "daily_digest_job"),
	}
}

// Start registers the digest with the scheduler and starts it.
func (j *DailyDigestJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Daily digest failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid digest schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily digest job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running digest to finish.
func (j *DailyDigestJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Daily digest job stopped")
}

// Run collects the statistics once and logs them as a single record. Ledgers
// that fail are left out of the record and reported in the returned error.
func (j *DailyDigestJob) Run(ctx context.Context) error {
	var (
		attrs   []slog.Attr
		errList []error
	)

	if stats, err := j.orders.HandleStats(ctx, queries.NewGetOrderStatsQuery()); err != nil {
		errList = append(errList, fmt.Errorf("order stats: %w", err))
	} else {
		attrs = append(attrs, slog.Group("orders",
			slog.Int64("today", stats.OrdersToday),
			slog.Int64("total", stats.TotalOrders),
			slog.Int64("pending", stats.ByStatus["PENDING"]),
			slog.String("revenue", stats.TotalRevenue.String()),
		))
	}

	if stats, err := j.payments.HandleStats(ctx, queries.NewGetPaymentStatsQuery()); err != nil {
		errList = append(errList, fmt.Errorf("payment stats: %w", err))
	} else {
		attrs = append(attrs, slog.Group("payments",
			slog.Int64("today", stats.PaymentsToday),
			slog.Int64("pending", stats.ByStatus["PENDING"]),
			slog.String("revenueToday", stats.RevenueToday.String()),
			slog.String("revenue", stats.TotalRevenue.String()),
		))
	}

	if stats, err := j.deliveries.HandleStats(ctx, queries.NewGetDeliveryStatsQuery()); err != nil {
		errList = append(errList, fmt.Errorf("delivery stats: %w", err))
	} else {
		attrs = append(attrs, slog.Group("deliveries",
			slog.Int64("today", stats.DeliveriesToday),
			slog.Int64("scheduled", stats.ByStatus["SCHEDULED"]),
			slog.Int("completionRatePercent", stats.CompletionRatePercent),
		))
	}

	if len(attrs) > 0 {
		j.logger.LogAttrs(ctx, slog.LevelInfo, "Daily digest", attrs...)
	}
	return errors.Join(errList...)
}
