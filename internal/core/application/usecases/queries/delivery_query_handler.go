package queries

import (
	"context"
	"errors"
	"time"

	"catering/internal/core/domain/model/delivery"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeliveryView struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	Date        kernel.Date
	StartTime   kernel.TimeOfDay
	EndTime     *kernel.TimeOfDay
	Status      delivery.Status
	Vehicle     string
	Driver      string
	Notes       string
	ConfirmedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	EstimatedDurationMinutes *int
	IsCompleted              bool
	DaysUntilDelivery        int
}

type DeliveryStats struct {
	TotalDeliveries       int64
	DeliveriesToday       int64
	CompletedCount        int64
	CompletionRatePercent int
	ByStatus              map[string]int64
}

const deliveryColumns = `
	id, order_id, delivery_date,
	CAST(EXTRACT(EPOCH FROM start_time) AS integer),
	CAST(EXTRACT(EPOCH FROM end_time) AS integer),
	status, COALESCE(vehicle, ''), COALESCE(driver, ''), COALESCE(notes, ''),
	confirmed_at, created_at, updated_at`

// DeliveryQueryHandler serves the read side of the delivery scheduler.
// Listings are ordered by delivery date and start time.
type DeliveryQueryHandler struct {
	db    *gorm.DB
	clock kernel.Clock
}

func NewDeliveryQueryHandler(db *gorm.DB, clock kernel.Clock) DeliveryQueryHandler {
	return DeliveryQueryHandler{db: db, clock: clock}
}

func (h DeliveryQueryHandler) HandleGet(ctx context.Context, query GetDeliveryQuery) (DeliveryView, error) {
	if err := query.Validate(); err != nil {
		return DeliveryView{}, err
	}
	return h.one(ctx, "id", "deliveryId", query.deliveryID)
}

// HandleGetByOrder returns an ObjectNotFoundError when the order has no delivery.
func (h DeliveryQueryHandler) HandleGetByOrder(ctx context.Context, query GetOrderDeliveryQuery) (DeliveryView, error) {
	if err := query.Validate(); err != nil {
		return DeliveryView{}, err
	}
	return h.one(ctx, "order_id", "orderId", query.orderID)
}

func (h DeliveryQueryHandler) HandleList(ctx context.Context, query ListDeliveriesQuery) ([]DeliveryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var f filter
	if query.status != nil {
		f.add("status = ?", query.status.String())
	}
	return h.list(ctx, f)
}

func (h DeliveryQueryHandler) HandleListByDriver(
	ctx context.Context,
	query ListDriverDeliveriesQuery,
) ([]DeliveryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var f filter
	f.add("driver = ?", query.driver)
	return h.list(ctx, f)
}

func (h DeliveryQueryHandler) HandleListByDate(
	ctx context.Context,
	query ListDeliveriesByDateQuery,
) ([]DeliveryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var f filter
	f.add("delivery_date BETWEEN CAST(? AS date) AND CAST(? AS date)",
		query.dateRange.From().String(), query.dateRange.To().String())
	return h.list(ctx, f)
}

func (h DeliveryQueryHandler) HandleListToday(
	ctx context.Context,
	query ListTodayDeliveriesQuery,
) ([]DeliveryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var f filter
	f.add("delivery_date = CAST(? AS date)", kernel.Today(h.clock).String())
	return h.list(ctx, f)
}

// HandleStats reports the completion rate as the rounded share of DELIVERED
// deliveries, 0 when there are none.
func (h DeliveryQueryHandler) HandleStats(ctx context.Context, query GetDeliveryStatsQuery) (DeliveryStats, error) {
	if err := query.Validate(); err != nil {
		return DeliveryStats{}, err
	}

	stats := DeliveryStats{ByStatus: countsByName(delivery.Statuses())}
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE delivery_date = CAST(? AS date)),
			COUNT(*) FILTER (WHERE status = ?)
		FROM deliveries`,
		kernel.Today(h.clock).String(), delivery.Delivered.String(),
	).Row().Scan(&stats.TotalDeliveries, &stats.DeliveriesToday, &stats.CompletedCount)
	if err != nil {
		return DeliveryStats{}, err
	}
	stats.CompletionRatePercent = completionRate(stats.CompletedCount, stats.TotalDeliveries)

	if err = countByColumn(ctx, h.db, "deliveries", "status", stats.ByStatus); err != nil {
		return DeliveryStats{}, err
	}
	return stats, nil
}

func completionRate(completed, total int64) int {
	if total == 0 {
		return 0
	}
	return int((completed*200 + total) / (total * 2))
}

func (h DeliveryQueryHandler) one(ctx context.Context, column, paramName string, id kernel.UUID) (DeliveryView, error) {
	var f filter
	f.add(column+" = ?", id.String())
	views, err := h.list(ctx, f)
	if err != nil {
		return DeliveryView{}, err
	}
	if len(views) == 0 {
		return DeliveryView{}, errs.NewObjectNotFoundError(paramName, id)
	}
	return views[0], nil
}

func (h DeliveryQueryHandler) list(ctx context.Context, f filter) ([]DeliveryView, error) {
	return collect(ctx, h.db, h.scanner(),
		`SELECT `+deliveryColumns+` FROM deliveries `+f.where()+` ORDER BY delivery_date, start_time`,
		f.args...)
}

func (h DeliveryQueryHandler) scanner() func(rowScanner) (DeliveryView, error) {
	today := kernel.Today(h.clock)
	return func(row rowScanner) (DeliveryView, error) {
		var (
			id, orderID  uuid.UUID
			date         time.Time
			startSeconds int
			endSeconds   *int
			status       string
			v            DeliveryView
		)
		if err := row.Scan(
			&id, &orderID, &date, &startSeconds, &endSeconds,
			&status, &v.Vehicle, &v.Driver, &v.Notes,
			&v.ConfirmedAt, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return DeliveryView{}, err
		}

		var idErr, orderErr, startErr, endErr, statusErr error
		v.ID, idErr = toUUID(id)
		v.OrderID, orderErr = toUUID(orderID)
		v.StartTime, startErr = toTimeOfDay(startSeconds)
		if endSeconds != nil {
			var end kernel.TimeOfDay
			end, endErr = toTimeOfDay(*endSeconds)
			v.EndTime = &end
		}
		v.Status, statusErr = delivery.ParseStatus("status", status)
		if err := errors.Join(idErr, orderErr, startErr, endErr, statusErr); err != nil {
			return DeliveryView{}, err
		}

		v.Date = kernel.DateOf(date)
		v.EstimatedDurationMinutes = delivery.EstimatedDuration(v.StartTime, v.EndTime)
		v.IsCompleted = delivery.IsCompleted(v.Status)
		v.DaysUntilDelivery = delivery.DaysUntilDelivery(v.Date, today)
		return v, nil
	}
}
