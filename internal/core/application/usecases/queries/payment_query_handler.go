package queries

import (
	"context"
	"errors"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/payment"
	"catering/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentView is a payment with its computed fields.
type PaymentView struct {
	ID        kernel.UUID
	OrderID   kernel.UUID
	Amount    kernel.Money
	Method    payment.Method
	Status    payment.Status
	Reference string
	PaidAt    time.Time
	UpdatedAt time.Time

	MethodDescription string
	IsCompleted       bool
	IsPending         bool
	DaysSincePaid     int
}

// PaymentSummary is the account of one order. PaidTotal only counts
// COMPLETED payments.
type PaymentSummary struct {
	OrderID          kernel.UUID
	OrderTotal       kernel.Money
	PaidTotal        kernel.Money
	RemainingBalance kernel.Money
	PercentPaid      int
	PaymentCount     int
	Payments         []PaymentView
}

type PaymentStats struct {
	TotalPayments int64
	PaymentsToday int64
	TotalRevenue  kernel.Money
	RevenueToday  kernel.Money
	ByStatus      map[string]int64
	ByMethod      map[string]int64
}

const paymentColumns = `
	id, order_id, amount, method, status, COALESCE(reference, ''), paid_at, updated_at`

// OrderLookup is the read side of the order ledger that payments depend on.
type OrderLookup interface {
	HandleGet(ctx context.Context, query GetOrderQuery) (OrderDetails, error)
}

// PaymentQueryHandler serves the read side of the payment ledger. Order
// totals are read through orders, never from the orders table.
type PaymentQueryHandler struct {
	db     *gorm.DB
	clock  kernel.Clock
	orders OrderLookup
}

func NewPaymentQueryHandler(db *gorm.DB, clock kernel.Clock, orders OrderLookup) PaymentQueryHandler {
	return PaymentQueryHandler{db: db, clock: clock, orders: orders}
}

func (h PaymentQueryHandler) HandleGet(ctx context.Context, query GetPaymentQuery) (PaymentView, error) {
	if err := query.Validate(); err != nil {
		return PaymentView{}, err
	}

	views, err := collect(ctx, h.db, h.scanner(),
		`SELECT `+paymentColumns+` FROM payments WHERE id = ?`, query.paymentID.String())
	if err != nil {
		return PaymentView{}, err
	}
	if len(views) == 0 {
		return PaymentView{}, errs.NewObjectNotFoundError("paymentId", query.paymentID)
	}
	return views[0], nil
}

func (h PaymentQueryHandler) HandleList(ctx context.Context, query ListPaymentsQuery) ([]PaymentView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var f filter
	if query.status != nil {
		f.add("status = ?", query.status.String())
	}
	if query.method != nil {
		f.add("method = ?", query.method.String())
	}
	return collect(ctx, h.db, h.scanner(),
		`SELECT `+paymentColumns+` FROM payments `+f.where()+` ORDER BY paid_at DESC`, f.args...)
}

// HandleListByOrder returns payments in registration order. It fails with an
// ObjectNotFoundError when the order does not exist.
func (h PaymentQueryHandler) HandleListByOrder(ctx context.Context, query ListOrderPaymentsQuery) ([]PaymentView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.orderTotal(ctx, query.orderID); err != nil {
		return nil, err
	}
	return h.byOrder(ctx, query.orderID)
}

// HandleSummary reports how much of an order has been paid.
func (h PaymentQueryHandler) HandleSummary(ctx context.Context, query ListOrderPaymentsQuery) (PaymentSummary, error) {
	if err := query.Validate(); err != nil {
		return PaymentSummary{}, err
	}

	total, err := h.orderTotal(ctx, query.orderID)
	if err != nil {
		return PaymentSummary{}, err
	}
	payments, err := h.byOrder(ctx, query.orderID)
	if err != nil {
		return PaymentSummary{}, err
	}

	paid := kernel.ZeroMoney()
	for _, p := range payments {
		if p.IsCompleted {
			paid = paid.Add(p.Amount)
		}
	}
	return PaymentSummary{
		OrderID:          query.orderID,
		OrderTotal:       total,
		PaidTotal:        paid,
		RemainingBalance: total.Sub(paid),
		PercentPaid:      paid.PercentOf(total),
		PaymentCount:     len(payments),
		Payments:         payments,
	}, nil
}

// HandleListByDate returns payments whose paid-at falls on a day of the
// range, in the clock's time zone.
func (h PaymentQueryHandler) HandleListByDate(ctx context.Context, query ListPaymentsByDateQuery) ([]PaymentView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	from, to := query.dateRange.instants(h.clock.Now().Location())
	return h.paidBetween(ctx, from, to)
}

func (h PaymentQueryHandler) HandleListToday(ctx context.Context, query ListTodayPaymentsQuery) ([]PaymentView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	_, from, to := today(h.clock)
	return h.paidBetween(ctx, from, to)
}

// HandleStats aggregates the ledger. Revenue only counts COMPLETED payments.
func (h PaymentQueryHandler) HandleStats(ctx context.Context, query GetPaymentStatsQuery) (PaymentStats, error) {
	if err := query.Validate(); err != nil {
		return PaymentStats{}, err
	}

	_, from, to := today(h.clock)
	completed := payment.Completed.String()

	stats := PaymentStats{
		ByStatus: countsByName(payment.Statuses()),
		ByMethod: countsByName(payment.Methods()),
	}
	var revenue, revenueToday decimal.Decimal
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE paid_at >= ? AND paid_at < ?),
			COALESCE(SUM(amount) FILTER (WHERE status = ?), 0),
			COALESCE(SUM(amount) FILTER (WHERE status = ? AND paid_at >= ? AND paid_at < ?), 0)
		FROM payments`,
		from, to, completed, completed, from, to,
	).Row().Scan(&stats.TotalPayments, &stats.PaymentsToday, &revenue, &revenueToday)
	if err != nil {
		return PaymentStats{}, err
	}
	stats.TotalRevenue = kernel.NewMoney(revenue)
	stats.RevenueToday = kernel.NewMoney(revenueToday)

	if err = errors.Join(
		countByColumn(ctx, h.db, "payments", "status", stats.ByStatus),
		countByColumn(ctx, h.db, "payments", "method", stats.ByMethod),
	); err != nil {
		return PaymentStats{}, err
	}
	return stats, nil
}

func (h PaymentQueryHandler) byOrder(ctx context.Context, orderID kernel.UUID) ([]PaymentView, error) {
	return collect(ctx, h.db, h.scanner(),
		`SELECT `+paymentColumns+` FROM payments WHERE order_id = ? ORDER BY paid_at`, orderID.String())
}

func (h PaymentQueryHandler) paidBetween(ctx context.Context, from, to time.Time) ([]PaymentView, error) {
	return collect(ctx, h.db, h.scanner(), `
		SELECT `+paymentColumns+`
		FROM payments
		WHERE paid_at >= ? AND paid_at < ?
		ORDER BY paid_at DESC`,
		from, to)
}

func (h PaymentQueryHandler) orderTotal(ctx context.Context, orderID kernel.UUID) (kernel.Money, error) {
	query, err := NewGetOrderQuery(orderID)
	if err != nil {
		return kernel.Money{}, err
	}

	o, err := h.orders.HandleGet(ctx, query)
	if err != nil {
		return kernel.Money{}, err
	}
	return o.Total, nil
}

func (h PaymentQueryHandler) scanner() func(rowScanner) (PaymentView, error) {
	now := h.clock.Now()
	return func(row rowScanner) (PaymentView, error) {
		var (
			id, orderID    uuid.UUID
			amount         decimal.Decimal
			method, status string
			v              PaymentView
		)
		if err := row.Scan(
			&id, &orderID, &amount, &method, &status, &v.Reference, &v.PaidAt, &v.UpdatedAt,
		); err != nil {
			return PaymentView{}, err
		}

		var idErr, orderErr, methodErr, statusErr error
		v.ID, idErr = toUUID(id)
		v.OrderID, orderErr = toUUID(orderID)
		v.Method, methodErr = payment.ParseMethod("method", method)
		v.Status, statusErr = payment.ParseStatus("status", status)
		if err := errors.Join(idErr, orderErr, methodErr, statusErr); err != nil {
			return PaymentView{}, err
		}

		v.Amount = kernel.NewMoney(amount)
		v.MethodDescription = v.Method.Description()
		v.IsCompleted = payment.IsCompleted(v.Status)
		v.IsPending = payment.IsPending(v.Status)
		v.DaysSincePaid = payment.DaysSincePaid(v.PaidAt, now)
		return v, nil
	}
}
