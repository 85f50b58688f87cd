package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "catering/internal/adapters/out/postgres"
	"catering/internal/adapters/out/postgres/catalogrepo"
	"catering/internal/adapters/out/postgres/deliveryrepo"
	"catering/internal/adapters/out/postgres/orderrepo"
	"catering/internal/adapters/out/postgres/paymentrepo"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/domain/model/delivery"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/model/payment"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	now   = time.Date(2030, time.June, 15, 10, 0, 0, 0, time.UTC)
	today = kernel.DateOf(now)
	clock = kernel.FixedClock{At: now}
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type QueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB

	orders     queries.OrderQueryHandler
	payments   queries.PaymentQueryHandler
	deliveries queries.DeliveryQueryHandler
	catalog    queries.CatalogQueryHandler

	catalogRepo  *catalogrepo.GormCatalogRepository
	orderRepo    *orderrepo.GormOrderRepository
	paymentRepo  *paymentrepo.GormPaymentRepository
	deliveryRepo *deliveryrepo.GormDeliveryRepository
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db
	suite.Require().NoError(postgres_adapter.Migrate(db))

	suite.orders = queries.NewOrderQueryHandler(db, clock)
	suite.payments = queries.NewPaymentQueryHandler(db, clock, suite.orders)
	suite.deliveries = queries.NewDeliveryQueryHandler(db, clock)
	suite.catalog = queries.NewCatalogQueryHandler(db)

	suite.catalogRepo = catalogrepo.NewGormCatalogRepository(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.paymentRepo = paymentrepo.NewGormPaymentRepository(db, &mockAggregateTracker{})
	suite.deliveryRepo = deliveryrepo.NewGormDeliveryRepository(db, &mockAggregateTracker{})
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE deliveries, payments, orders, menus, clients CASCADE").Error
	suite.Require().NoError(err)
}

func TestQueriesIntegration(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_ResolvesClientAndMenu() {
	ctx := context.Background()
	client := suite.addClient("ana@example.com")
	menu := suite.addMenu("Paella", 5000)
	o := suite.addOrder(client.ID(), menu, today.AddDays(5), 3, order.Confirmed, now)

	query, err := queries.NewGetOrderQuery(o.ID())
	suite.Require().NoError(err)

	details, err := suite.orders.HandleGet(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(o.ID(), details.ID)
	suite.Equal(order.Confirmed, details.Status)
	suite.Equal("150.00", details.Total.String())
	suite.Equal(today.AddDays(5), details.EventDate)
	suite.Equal("19:30:00", details.EventTime.String())
	suite.Equal(5, details.DaysUntilEvent)
	suite.Equal(time.Date(2030, time.June, 20, 19, 30, 0, 0, time.UTC), details.EventDateTime)
	suite.Require().NotNil(details.Client)
	suite.Equal("ana@example.com", details.Client.Email)
	suite.Require().NotNil(details.Menu)
	suite.Equal("Paella", details.Menu.Name)
	suite.Equal("50.00", details.Menu.UnitPrice.String())
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_Missing_ReturnsNotFound() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.orders.HandleGet(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_FiltersAndSortsNewestFirst() {
	ctx := context.Background()
	ana := suite.addClient("ana@example.com")
	bob := suite.addClient("bob@example.com")
	menu := suite.addMenu("Tapas", 1000)
	first := suite.addOrder(ana.ID(), menu, today.AddDays(1), 1, order.Pending, now.Add(-2*time.Hour))
	second := suite.addOrder(ana.ID(), menu, today.AddDays(2), 1, order.Pending, now.Add(-time.Hour))
	suite.addOrder(bob.ID(), menu, today.AddDays(3), 1, order.Cancelled, now)

	all, err := queries.NewListOrdersQuery(nil, nil)
	suite.Require().NoError(err)
	views, err := suite.orders.HandleList(ctx, all)
	suite.Require().NoError(err)
	suite.Len(views, 3)

	pending := order.Pending
	anaID := ana.ID()
	filtered, err := queries.NewListOrdersQuery(&pending, &anaID)
	suite.Require().NoError(err)
	views, err = suite.orders.HandleList(ctx, filtered)
	suite.Require().NoError(err)
	suite.Require().Len(views, 2)
	suite.Equal(second.ID(), views[0].ID)
	suite.Equal(first.ID(), views[1].ID)
}

func (suite *QueriesIntegrationTestSuite) TestListOrdersByClient_UnknownClient_ReturnsNotFound() {
	query, err := queries.NewListClientOrdersQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	views, err := suite.orders.HandleListByClient(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Nil(views)
}

func (suite *QueriesIntegrationTestSuite) TestListOrdersByEventDate_IncludesBothBounds() {
	ctx := context.Background()
	client := suite.addClient("")
	menu := suite.addMenu("Tapas", 1000)
	for _, days := range []int{0, 1, 3, 4} {
		suite.addOrder(client.ID(), menu, today.AddDays(days), 1, order.Pending, now)
	}

	dateRange, err := queries.NewDateRange(today.AddDays(1), today.AddDays(3))
	suite.Require().NoError(err)
	query, err := queries.NewListOrdersByEventDateQuery(dateRange)
	suite.Require().NoError(err)

	views, err := suite.orders.HandleListByEventDate(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(views, 2)
	suite.Equal(today.AddDays(1), views[0].EventDate)
	suite.Equal(today.AddDays(3), views[1].EventDate)
}

func (suite *QueriesIntegrationTestSuite) TestOrderStats_ExcludesCancelledRevenue() {
	ctx := context.Background()
	client := suite.addClient("")
	menu := suite.addMenu("Tapas", 1000)
	suite.addOrder(client.ID(), menu, today, 2, order.Pending, now)
	suite.addOrder(client.ID(), menu, today.AddDays(1), 3, order.Delivered, now)
	suite.addOrder(client.ID(), menu, today, 5, order.Cancelled, now)

	todays, err := suite.orders.HandleListToday(ctx, queries.NewListTodayOrdersQuery())
	suite.Require().NoError(err)
	suite.Len(todays, 2)

	stats, err := suite.orders.HandleStats(ctx, queries.NewGetOrderStatsQuery())

	suite.Require().NoError(err)
	suite.Equal(int64(3), stats.TotalOrders)
	suite.Equal(int64(2), stats.OrdersToday)
	suite.Equal("50.00", stats.TotalRevenue.String())
	suite.Equal(int64(1), stats.ByStatus["PENDING"])
	suite.Equal(int64(1), stats.ByStatus["CANCELLED"])
	suite.Equal(int64(0), stats.ByStatus["READY"])
	suite.Len(stats.ByStatus, len(order.Statuses()))
}

func (suite *QueriesIntegrationTestSuite) TestPaymentSummary_CountsOnlyCompleted() {
	ctx := context.Background()
	o := suite.seedOrder(3, 5000)
	suite.addPayment(o, 10000, payment.Card, payment.Completed, now.Add(-48*time.Hour))
	suite.addPayment(o, 2000, payment.Cash, payment.Pending, now)

	query, err := queries.NewListOrderPaymentsQuery(o.ID())
	suite.Require().NoError(err)

	summary, err := suite.payments.HandleSummary(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(o.ID(), summary.OrderID)
	suite.Equal("150.00", summary.OrderTotal.String())
	suite.Equal("100.00", summary.PaidTotal.String())
	suite.Equal("50.00", summary.RemainingBalance.String())
	suite.Equal(67, summary.PercentPaid)
	suite.Equal(2, summary.PaymentCount)
	suite.Require().Len(summary.Payments, 2)

	oldest := summary.Payments[0]
	suite.True(oldest.IsCompleted)
	suite.False(oldest.IsPending)
	suite.Equal("Credit or debit card", oldest.MethodDescription)
	suite.Equal(2, oldest.DaysSincePaid)
	suite.True(summary.Payments[1].IsPending)
}

func (suite *QueriesIntegrationTestSuite) TestListPaymentsByOrder_UnknownOrder_ReturnsNotFound() {
	query, err := queries.NewListOrderPaymentsQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.payments.HandleListByOrder(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.payments.HandleSummary(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestPaymentListings_ByMethodDateAndToday() {
	ctx := context.Background()
	o := suite.seedOrder(10, 5000)
	cardToday := suite.addPayment(o, 1000, payment.Card, payment.Completed, now)
	suite.addPayment(o, 2000, payment.Cash, payment.Completed, now.Add(-24*time.Hour))
	suite.addPayment(o, 3000, payment.Card, payment.Pending, now.Add(-72*time.Hour))

	card := payment.Card
	completed := payment.Completed
	byMethod, err := queries.NewListPaymentsQuery(&completed, &card)
	suite.Require().NoError(err)
	views, err := suite.payments.HandleList(ctx, byMethod)
	suite.Require().NoError(err)
	suite.Require().Len(views, 1)
	suite.Equal(cardToday.ID(), views[0].ID)

	todays, err := suite.payments.HandleListToday(ctx, queries.NewListTodayPaymentsQuery())
	suite.Require().NoError(err)
	suite.Require().Len(todays, 1)
	suite.Equal(cardToday.ID(), todays[0].ID)

	dateRange, err := queries.NewDateRange(today.AddDays(-1), today)
	suite.Require().NoError(err)
	byDate, err := queries.NewListPaymentsByDateQuery(dateRange)
	suite.Require().NoError(err)
	views, err = suite.payments.HandleListByDate(ctx, byDate)
	suite.Require().NoError(err)
	suite.Len(views, 2)
}

func (suite *QueriesIntegrationTestSuite) TestPaymentStats() {
	ctx := context.Background()
	o := suite.seedOrder(10, 5000)
	suite.addPayment(o, 1000, payment.Card, payment.Completed, now)
	suite.addPayment(o, 2000, payment.Cash, payment.Completed, now.Add(-24*time.Hour))
	suite.addPayment(o, 3000, payment.Transfer, payment.Failed, now)

	stats, err := suite.payments.HandleStats(ctx, queries.NewGetPaymentStatsQuery())

	suite.Require().NoError(err)
	suite.Equal(int64(3), stats.TotalPayments)
	suite.Equal(int64(2), stats.PaymentsToday)
	suite.Equal("30.00", stats.TotalRevenue.String())
	suite.Equal("10.00", stats.RevenueToday.String())
	suite.Equal(int64(2), stats.ByStatus["COMPLETED"])
	suite.Equal(int64(0), stats.ByStatus["REFUNDED"])
	suite.Equal(int64(1), stats.ByMethod["TRANSFER"])
	suite.Equal(int64(0), stats.ByMethod["CHECK"])
}

func (suite *QueriesIntegrationTestSuite) TestDeliveryQueries() {
	ctx := context.Background()
	first := suite.seedOrderOn(today.AddDays(2))
	second := suite.seedOrderOn(today.AddDays(2))
	third := suite.seedOrderOn(today.AddDays(2))

	end := mustTime(suite, 19, 30)
	done := suite.addDelivery(first, today, mustTime(suite, 18, 0), &end, "Marta", delivery.Delivered)
	suite.addDelivery(second, today.AddDays(1), mustTime(suite, 12, 0), nil, "Marta", delivery.Scheduled)
	suite.addDelivery(third, today, mustTime(suite, 9, 0), nil, "Luis", delivery.Cancelled)

	byOrder, err := queries.NewGetOrderDeliveryQuery(first.ID())
	suite.Require().NoError(err)
	view, err := suite.deliveries.HandleGetByOrder(ctx, byOrder)
	suite.Require().NoError(err)
	suite.Equal(done.ID(), view.ID)
	suite.True(view.IsCompleted)
	suite.NotNil(view.ConfirmedAt)
	suite.Require().NotNil(view.EstimatedDurationMinutes)
	suite.Equal(90, *view.EstimatedDurationMinutes)
	suite.Equal(0, view.DaysUntilDelivery)

	byDriver, err := queries.NewListDriverDeliveriesQuery(" Marta ")
	suite.Require().NoError(err)
	views, err := suite.deliveries.HandleListByDriver(ctx, byDriver)
	suite.Require().NoError(err)
	suite.Require().Len(views, 2)
	suite.Equal(today, views[0].Date)
	suite.Nil(views[1].EndTime)
	suite.Nil(views[1].EstimatedDurationMinutes)

	todays, err := suite.deliveries.HandleListToday(ctx, queries.NewListTodayDeliveriesQuery())
	suite.Require().NoError(err)
	suite.Require().Len(todays, 2)
	suite.Equal("09:00:00", todays[0].StartTime.String())

	stats, err := suite.deliveries.HandleStats(ctx, queries.NewGetDeliveryStatsQuery())
	suite.Require().NoError(err)
	suite.Equal(int64(3), stats.TotalDeliveries)
	suite.Equal(int64(2), stats.DeliveriesToday)
	suite.Equal(int64(1), stats.CompletedCount)
	suite.Equal(33, stats.CompletionRatePercent)
	suite.Equal(int64(0), stats.ByStatus["EN_ROUTE"])
}

func (suite *QueriesIntegrationTestSuite) TestDeliveryQueries_EmptyAndMissing() {
	ctx := context.Background()

	stats, err := suite.deliveries.HandleStats(ctx, queries.NewGetDeliveryStatsQuery())
	suite.Require().NoError(err)
	suite.Equal(0, stats.CompletionRatePercent)

	o := suite.seedOrderOn(today.AddDays(1))
	query, err := queries.NewGetOrderDeliveryQuery(o.ID())
	suite.Require().NoError(err)
	_, err = suite.deliveries.HandleGetByOrder(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestCatalogQueries() {
	ctx := context.Background()
	suite.addClient("")
	client := suite.addClient("zoe@example.com")
	menu := suite.addMenu("Buffet", 2500)

	clients, err := suite.catalog.HandleListClients(ctx)
	suite.Require().NoError(err)
	suite.Len(clients, 2)

	getClient, err := queries.NewGetClientQuery(client.ID())
	suite.Require().NoError(err)
	view, err := suite.catalog.HandleGetClient(ctx, getClient)
	suite.Require().NoError(err)
	suite.Equal("zoe@example.com", view.Email)

	getMenu, err := queries.NewGetMenuQuery(menu.ID())
	suite.Require().NoError(err)
	menuView, err := suite.catalog.HandleGetMenu(ctx, getMenu)
	suite.Require().NoError(err)
	suite.Equal("25.00", menuView.UnitPrice.String())

	missing, err := queries.NewGetMenuQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = suite.catalog.HandleGetMenu(ctx, missing)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	query, err := queries.NewListOrdersQuery(nil, nil)
	suite.Require().NoError(err)

	views, err := suite.orders.HandleList(ctx, query)

	suite.Require().Error(err)
	suite.Nil(views)
}

func (suite *QueriesIntegrationTestSuite) addClient(email string) *catalog.Client {
	c, err := catalog.NewClient(kernel.NewUUID(), catalog.ClientDetails{
		FirstName: "Ana",
		LastName:  "García",
		Phone:     "600123123",
		Email:     email,
	}, now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.catalogRepo.AddClient(context.Background(), c))
	return c
}

func (suite *QueriesIntegrationTestSuite) addMenu(name string, cents int64) *catalog.Menu {
	m, err := catalog.NewMenu(kernel.NewUUID(), name, "", kernel.MoneyFromCents(cents), now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.catalogRepo.AddMenu(context.Background(), m))
	return m
}

func (suite *QueriesIntegrationTestSuite) addOrder(
	clientID kernel.UUID,
	menu *catalog.Menu,
	eventDate kernel.Date,
	quantity int,
	status order.Status,
	createdAt time.Time,
) *order.Order {
	eventTime, err := kernel.NewTimeOfDay(19, 30, 0)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), menu.ID(), menu.UnitPrice(), order.Details{
		ClientID:  clientID,
		EventDate: eventDate,
		EventTime: eventTime,
		Quantity:  quantity,
		Guests:    20,
		Address:   "Calle Mayor 1",
	}, status, createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func (suite *QueriesIntegrationTestSuite) seedOrder(quantity int, unitCents int64) *order.Order {
	client := suite.addClient("")
	menu := suite.addMenu("Menu", unitCents)
	return suite.addOrder(client.ID(), menu, today.AddDays(7), quantity, order.Confirmed, now)
}

func (suite *QueriesIntegrationTestSuite) seedOrderOn(eventDate kernel.Date) *order.Order {
	client := suite.addClient("")
	menu := suite.addMenu("Menu", 1000)
	return suite.addOrder(client.ID(), menu, eventDate, 1, order.Confirmed, now)
}

// addPayment bypasses the balance check; the orders seeded here are large enough.
func (suite *QueriesIntegrationTestSuite) addPayment(
	o *order.Order,
	cents int64,
	method payment.Method,
	status payment.Status,
	paidAt time.Time,
) *payment.Payment {
	p, err := payment.NewPayment(
		kernel.NewUUID(), o.ID(), kernel.MoneyFromCents(cents), method, status, "",
		payment.Balance{OrderTotal: o.Total(), CompletedTotal: kernel.ZeroMoney()},
		paidAt,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.paymentRepo.Add(context.Background(), p))
	return p
}

func (suite *QueriesIntegrationTestSuite) addDelivery(
	o *order.Order,
	date kernel.Date,
	start kernel.TimeOfDay,
	end *kernel.TimeOfDay,
	driver string,
	status delivery.Status,
) *delivery.Delivery {
	d, err := delivery.NewDelivery(
		kernel.NewUUID(), o.ID(),
		delivery.Schedule{Date: date, Start: start, End: end},
		delivery.Crew{Vehicle: "Van 1", Driver: driver},
		status, o.EventDate(), now,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.deliveryRepo.Add(context.Background(), d))
	return d
}

func mustTime(suite *QueriesIntegrationTestSuite, hour, minute int) kernel.TimeOfDay {
	t, err := kernel.NewTimeOfDay(hour, minute, 0)
	suite.Require().NoError(err)
	return t
}
