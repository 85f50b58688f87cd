package paymentrepo_test

import (
	"context"
	"testing"
	"time"

	"catering/internal/adapters/out/postgres/paymentrepo"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/payment"
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

type PaymentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *paymentrepo.GormPaymentRepository
	tracker    *MockAggregateTracker
}

func (suite *PaymentRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&paymentrepo.PaymentDTO{}))
}

func (suite *PaymentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE payments").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.repository = paymentrepo.NewGormPaymentRepository(suite.db, suite.tracker)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestAdd_RoundTrips() {
	ctx := context.Background()
	p := suite.addPayment(kernel.NewUUID(), 4550, payment.Pending)

	got, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(p.OrderID(), got.OrderID())
	suite.Equal("45.50", got.Amount().String())
	suite.Equal(payment.Transfer, got.Method())
	suite.Equal(payment.Pending, got.Status())
	suite.Equal("TRX-1", got.Reference())
	suite.True(p.PaidAt().Equal(got.PaidAt()))
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", p.ID(), p)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestCompletedTotal() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	first := suite.addPayment(orderID, 10000, payment.Completed)
	suite.addPayment(orderID, 2550, payment.Completed)
	suite.addPayment(orderID, 9999, payment.Pending)
	suite.addPayment(kernel.NewUUID(), 7000, payment.Completed)

	total, err := suite.repository.CompletedTotal(ctx, orderID, nil)
	suite.Require().NoError(err)
	suite.Equal("125.50", total.String())

	excluding := first.ID()
	total, err = suite.repository.CompletedTotal(ctx, orderID, &excluding)
	suite.Require().NoError(err)
	suite.Equal("25.50", total.String())

	total, err = suite.repository.CompletedTotal(ctx, kernel.NewUUID(), nil)
	suite.Require().NoError(err)
	suite.True(total.IsZero())
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestUpdate_PersistsStatus() {
	ctx := context.Background()
	p := suite.addPayment(kernel.NewUUID(), 5000, payment.Pending)
	balance := payment.Balance{OrderTotal: kernel.MoneyFromCents(15000), CompletedTotal: kernel.ZeroMoney()}
	suite.Require().NoError(p.MarkCompleted(balance, time.Now()))

	suite.Require().NoError(suite.repository.Update(ctx, p))

	got, err := suite.repository.GetForUpdate(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(payment.Completed, got.Status())
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestGetAndRemove_Missing() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Require().ErrorIs(suite.repository.Remove(ctx, kernel.NewUUID()), errs.ErrObjectNotFound)
}

func (suite *PaymentRepositoryIntegrationTestSuite) addPayment(
	orderID kernel.UUID, cents int64, status payment.Status,
) *payment.Payment {
	p, err := payment.NewPayment(kernel.NewUUID(), orderID, kernel.MoneyFromCents(cents), payment.Transfer, status, "TRX-1",
		payment.Balance{OrderTotal: kernel.MoneyFromCents(1_000_000), CompletedTotal: kernel.ZeroMoney()},
		time.Now().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), p))
	return p
}

func TestPaymentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentRepositoryIntegrationTestSuite))
}
