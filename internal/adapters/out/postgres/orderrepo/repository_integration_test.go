package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"catering/internal/adapters/out/postgres/orderrepo"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite runs the order repository against a
// real Postgres.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_RoundTrips() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	got, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), got.ID())
	suite.Equal(testOrder.ClientID(), got.ClientID())
	suite.Equal(testOrder.MenuID(), got.MenuID())
	suite.Equal("2025-07-20", got.EventDate().String())
	suite.Equal("18:30:00", got.EventTime().String())
	suite.Equal(3, got.Quantity())
	suite.Equal(40, got.Guests())
	suite.Equal("Av. Reforma 100", got.Address())
	suite.Equal(order.Pending, got.Status())
	suite.Equal("150.00", got.Total().String())
	suite.Empty(got.PendingEvents())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NonPositiveQuantity_ViolatesCheck() {
	ctx := context.Background()
	s := suite.createTestOrder().Snapshot()
	s.ID = kernel.NewUUID()
	s.Quantity = 0
	invalid, err := order.RestoreOrder(s)
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, invalid)

	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
	suite.assertOrderCount(0)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	retrieved, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(retrieved)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.Equal("orderId", notFoundErr.ParamName)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusAndClearedNotes() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	empty := ""
	suite.Require().NoError(testOrder.Update(order.Patch{Notes: &empty}, kernel.ZeroMoney(), suite.now()))
	suite.Require().NoError(testOrder.ChangeStatus(order.Confirmed, suite.now()))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	got, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, got.Status())
	suite.Empty(got.Notes())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	err := suite.repository.Update(context.Background(), suite.createTestOrder())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_BlocksConcurrentWriter() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	tx := suite.db.Begin()
	defer tx.Rollback()
	locked, err := orderrepo.NewGormOrderRepository(tx, suite.tracker).GetForUpdate(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), locked.ID())

	other := suite.db.Begin()
	defer other.Rollback()
	suite.Require().NoError(other.Exec("SET LOCAL lock_timeout = '200ms'").Error)
	_, err = orderrepo.NewGormOrderRepository(other, suite.tracker).GetForUpdate(ctx, testOrder.ID())
	suite.Require().Error(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestRemove() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(suite.repository.Remove(ctx, testOrder.ID()))
	suite.assertOrderCount(0)

	suite.Require().ErrorIs(suite.repository.Remove(ctx, testOrder.ID()), errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) now() time.Time {
	return time.Date(2025, time.July, 17, 10, 0, 0, 0, time.UTC)
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	eventTime, err := kernel.NewTimeOfDay(18, 30, 0)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.MoneyFromCents(5000), order.Details{
		ClientID:  kernel.NewUUID(),
		EventDate: kernel.NewDate(2025, time.July, 20),
		EventTime: eventTime,
		Quantity:  3,
		Guests:    40,
		Address:   "Av. Reforma 100",
		Notes:     "vegetarian options",
	}, order.Pending, suite.now())
	suite.Require().NoError(err)
	o.ClearEvents()
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
