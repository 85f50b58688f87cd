package jobs_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderStats struct{ mock.Mock }

func (m *MockOrderStats) HandleStats(ctx context.Context, q queries.GetOrderStatsQuery) (queries.OrderStats, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(queries.OrderStats), args.Error(1)
}

type MockPaymentStats struct{ mock.Mock }

func (m *MockPaymentStats) HandleStats(ctx context.Context, q queries.GetPaymentStatsQuery) (queries.PaymentStats, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(queries.PaymentStats), args.Error(1)
}

type MockDeliveryStats struct{ mock.Mock }

func (m *MockDeliveryStats) HandleStats(ctx context.Context, q queries.GetDeliveryStatsQuery) (queries.DeliveryStats, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(queries.DeliveryStats), args.Error(1)
}

func newDigest(t *testing.T, schedule string) (*jobs.DailyDigestJob, *MockOrderStats, *MockPaymentStats, *MockDeliveryStats, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&out, nil))
	orders, payments, deliveries := &MockOrderStats{}, &MockPaymentStats{}, &MockDeliveryStats{}
	job := jobs.NewDailyDigestJob(orders, payments, deliveries, schedule, time.UTC, logger)
	return job, orders, payments, deliveries, &out
}

// lastRecord decodes the last JSON log line.
func lastRecord(t *testing.T, out *bytes.Buffer) map[string]any {
	t.Helper()

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	var record map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &record))
	return record
}

func TestDailyDigestJob_Run(t *testing.T) {
	job, orders, payments, deliveries, out := newDigest(t, "")
	ctx := context.Background()

	orders.On("HandleStats", ctx, mock.Anything).Return(queries.OrderStats{
		TotalOrders:  12,
		OrdersToday:  3,
		TotalRevenue: kernel.MoneyFromCents(450000),
		ByStatus:     map[string]int64{"PENDING": 4},
	}, nil)
	payments.On("HandleStats", ctx, mock.Anything).Return(queries.PaymentStats{
		PaymentsToday: 2,
		TotalRevenue:  kernel.MoneyFromCents(100000),
		RevenueToday:  kernel.MoneyFromCents(25050),
		ByStatus:      map[string]int64{"PENDING": 1},
	}, nil)
	deliveries.On("HandleStats", ctx, mock.Anything).Return(queries.DeliveryStats{
		DeliveriesToday:       1,
		CompletionRatePercent: 67,
		ByStatus:              map[string]int64{"SCHEDULED": 5},
	}, nil)

	require.NoError(t, job.Run(ctx))

	record := lastRecord(t, out)
	assert.Equal(t, "Daily digest", record["msg"])
	assert.Equal(t, "daily_digest_job", record["component"])
	assert.Equal(t, map[string]any{"today": 3.0, "total": 12.0, "pending": 4.0, "revenue": "4500.00"}, record["orders"])
	assert.Equal(t, "250.50", record["payments"].(map[string]any)["revenueToday"])
	assert.Equal(t, 67.0, record["deliveries"].(map[string]any)["completionRatePercent"])
	assert.Equal(t, 5.0, record["deliveries"].(map[string]any)["scheduled"])

	orders.AssertExpectations(t)
	payments.AssertExpectations(t)
	deliveries.AssertExpectations(t)
}

func TestDailyDigestJob_RunReportsFailedLedgers(t *testing.T) {
	job, orders, payments, deliveries, out := newDigest(t, "")
	ctx := context.Background()
	dbErr := errors.New("connection refused")

	orders.On("HandleStats", ctx, mock.Anything).Return(queries.OrderStats{}, dbErr)
	payments.On("HandleStats", ctx, mock.Anything).Return(queries.PaymentStats{
		TotalRevenue: kernel.ZeroMoney(),
		RevenueToday: kernel.ZeroMoney(),
	}, nil)
	deliveries.On("HandleStats", ctx, mock.Anything).Return(queries.DeliveryStats{}, nil)

	err := job.Run(ctx)

	require.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), "order stats")
	record := lastRecord(t, out)
	assert.NotContains(t, record, "orders")
	assert.Contains(t, record, "payments")
	assert.Contains(t, record, "deliveries")
}

func TestDailyDigestJob_StartRejectsInvalidSchedule(t *testing.T) {
	job, _, _, _, _ := newDigest(t, "every morning")
	require.Error(t, job.Start())
}

func TestDailyDigestJob_StartAndStop(t *testing.T) {
	job, _, _, _, out := newDigest(t, "0 0 7 * * *")

	require.NoError(t, job.Start())
	job.Stop()

	assert.Contains(t, out.String(), "Daily digest job started")
	assert.Contains(t, out.String(), "Daily digest job stopped")
}

func TestJobManager(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	manager := jobs.NewJobManager(&MockOrderStats{}, &MockPaymentStats{}, &MockDeliveryStats{}, "", time.UTC, logger)

	require.NoError(t, manager.StartAll())
	manager.StopAll()

	broken := jobs.NewJobManager(&MockOrderStats{}, &MockPaymentStats{}, &MockDeliveryStats{}, "* *", time.UTC, logger)
	require.Error(t, broken.StartAll())
}
