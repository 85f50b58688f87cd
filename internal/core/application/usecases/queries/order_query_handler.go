package queries

import (
	"context"
	"errors"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderView is an order as shown to API clients.
type OrderView struct {
	ID        kernel.UUID
	ClientID  kernel.UUID
	MenuID    kernel.UUID
	EventDate kernel.Date
	EventTime kernel.TimeOfDay
	Quantity  int
	Guests    int
	Address   string
	Phone     string
	Notes     string
	Status    order.Status
	Total     kernel.Money
	CreatedAt time.Time
	UpdatedAt time.Time

	EventDateTime  time.Time
	DaysUntilEvent int
}

// OrderDetails is an order with its client and menu resolved.
type OrderDetails struct {
	OrderView

	Client *ClientView
	Menu   *MenuView
}

type OrderStats struct {
	TotalOrders  int64
	OrdersToday  int64
	TotalRevenue kernel.Money
	ByStatus     map[string]int64
}

const orderColumns = `
	id, client_id, menu_id, event_date,
	CAST(EXTRACT(EPOCH FROM event_time) AS integer),
	quantity, guests, address, COALESCE(phone, ''), COALESCE(notes, ''),
	status, total, created_at, updated_at`

// OrderQueryHandler serves the read side of the order ledger.
type OrderQueryHandler struct {
	db      *gorm.DB
	clock   kernel.Clock
	catalog CatalogQueryHandler
}

func NewOrderQueryHandler(db *gorm.DB, clock kernel.Clock) OrderQueryHandler {
	return OrderQueryHandler{db: db, clock: clock, catalog: NewCatalogQueryHandler(db)}
}

// HandleGet returns an ObjectNotFoundError when the order does not exist.
func (h OrderQueryHandler) HandleGet(ctx context.Context, query GetOrderQuery) (OrderDetails, error) {
	if err := query.Validate(); err != nil {
		return OrderDetails{}, err
	}

	views, err := collect(ctx, h.db, h.scanner(),
		`SELECT `+orderColumns+` FROM orders WHERE id = ?`, query.OrderID().String())
	if err != nil {
		return OrderDetails{}, err
	}
	if len(views) == 0 {
		return OrderDetails{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	details := OrderDetails{OrderView: views[0]}
	if client, clientErr := h.catalog.client(ctx, details.ClientID); clientErr == nil {
		details.Client = &client
	} else if !errors.Is(clientErr, errs.ErrObjectNotFound) {
		return OrderDetails{}, clientErr
	}
	if menu, menuErr := h.catalog.menu(ctx, details.MenuID); menuErr == nil {
		details.Menu = &menu
	} else if !errors.Is(menuErr, errs.ErrObjectNotFound) {
		return OrderDetails{}, menuErr
	}
	return details, nil
}

// HandleList returns orders newest first, optionally filtered by status and client.
func (h OrderQueryHandler) HandleList(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var f filter
	if query.status != nil {
		f.add("status = ?", query.status.String())
	}
	if query.clientID != nil {
		f.add("client_id = ?", query.clientID.String())
	}
	return collect(ctx, h.db, h.scanner(),
		`SELECT `+orderColumns+` FROM orders `+f.where()+` ORDER BY created_at DESC`, f.args...)
}

// HandleListByClient returns an ObjectNotFoundError when the client does not exist.
func (h OrderQueryHandler) HandleListByClient(ctx context.Context, query ListClientOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	found, err := exists(ctx, h.db, "clients", query.clientID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errs.NewObjectNotFoundError("clientId", query.clientID)
	}

	return collect(ctx, h.db, h.scanner(),
		`SELECT `+orderColumns+` FROM orders WHERE client_id = ? ORDER BY created_at DESC`,
		query.clientID.String())
}

// HandleListByEventDate returns orders with an event in the range, earliest first.
func (h OrderQueryHandler) HandleListByEventDate(
	ctx context.Context,
	query ListOrdersByEventDateQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return collect(ctx, h.db, h.scanner(), `
		SELECT `+orderColumns+`
		FROM orders
		WHERE event_date BETWEEN CAST(? AS date) AND CAST(? AS date)
		ORDER BY event_date, event_time`,
		query.dateRange.From().String(), query.dateRange.To().String())
}

func (h OrderQueryHandler) HandleListToday(ctx context.Context, query ListTodayOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	day := kernel.Today(h.clock)
	return collect(ctx, h.db, h.scanner(), `
		SELECT `+orderColumns+`
		FROM orders
		WHERE event_date = CAST(? AS date)
		ORDER BY event_time`,
		day.String())
}

// HandleStats counts orders by status. Revenue is the total of every order
// that is not CANCELLED.
func (h OrderQueryHandler) HandleStats(ctx context.Context, query GetOrderStatsQuery) (OrderStats, error) {
	if err := query.Validate(); err != nil {
		return OrderStats{}, err
	}

	db := h.db.WithContext(ctx)
	day := kernel.Today(h.clock)

	stats := OrderStats{ByStatus: countsByName(order.Statuses())}
	var revenue decimal.Decimal
	err := db.Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE event_date = CAST(? AS date)),
			COALESCE(SUM(total) FILTER (WHERE status <> ?), 0)
		FROM orders`,
		day.String(), order.Cancelled.String(),
	).Row().Scan(&stats.TotalOrders, &stats.OrdersToday, &revenue)
	if err != nil {
		return OrderStats{}, err
	}
	stats.TotalRevenue = kernel.NewMoney(revenue)

	if err = countByColumn(ctx, h.db, "orders", "status", stats.ByStatus); err != nil {
		return OrderStats{}, err
	}
	return stats, nil
}

func (h OrderQueryHandler) scanner() func(rowScanner) (OrderView, error) {
	now := h.clock.Now()
	today := kernel.DateOf(now)
	return func(row rowScanner) (OrderView, error) {
		var (
			id, clientID, menuID uuid.UUID
			eventDate            time.Time
			eventSeconds         int
			status               string
			total                decimal.Decimal
			v                    OrderView
		)
		if err := row.Scan(
			&id, &clientID, &menuID, &eventDate, &eventSeconds,
			&v.Quantity, &v.Guests, &v.Address, &v.Phone, &v.Notes,
			&status, &total, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return OrderView{}, err
		}

		var idErr, clientErr, menuErr, timeErr, statusErr error
		v.ID, idErr = toUUID(id)
		v.ClientID, clientErr = toUUID(clientID)
		v.MenuID, menuErr = toUUID(menuID)
		v.EventTime, timeErr = toTimeOfDay(eventSeconds)
		v.Status, statusErr = order.ParseStatus("status", status)
		if err := errors.Join(idErr, clientErr, menuErr, timeErr, statusErr); err != nil {
			return OrderView{}, err
		}

		v.EventDate = kernel.DateOf(eventDate)
		v.Total = kernel.NewMoney(total)
		v.EventDateTime = order.EventDateTime(v.EventDate, v.EventTime, now.Location())
		v.DaysUntilEvent = order.DaysUntilEvent(v.EventDate, today)
		return v, nil
	}
}
