package commands_test

import (
	"testing"
	"time"

	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/model/payment"

	"github.com/stretchr/testify/require"
)

var (
	now       = time.Date(2025, time.July, 17, 10, 0, 0, 0, time.UTC)
	clock     = kernel.FixedClock{At: now}
	eventDate = kernel.NewDate(2025, time.July, 20)
)

func orderDetails(clientID kernel.UUID) order.Details {
	eventTime, _ := kernel.NewTimeOfDay(18, 0, 0)
	return order.Details{
		ClientID:  clientID,
		EventDate: eventDate,
		EventTime: eventTime,
		Quantity:  3,
		Guests:    40,
		Address:   "Av. Reforma 100",
	}
}

// existingOrder is a PENDING order of 3 units at 50.00 (total 150.00).
func existingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.MoneyFromCents(5000),
		orderDetails(kernel.NewUUID()), order.Pending, now)
	require.NoError(t, err)
	o.ClearEvents()
	return o
}

func existingPayment(t *testing.T, orderID kernel.UUID, cents int64, status payment.Status) *payment.Payment {
	t.Helper()
	p, err := payment.RestorePayment(payment.Snapshot{
		ID:      kernel.NewUUID(),
		OrderID: orderID,
		Amount:  kernel.MoneyFromCents(cents),
		Method:  payment.Cash,
		Status:  status,
		PaidAt:  now,
	})
	require.NoError(t, err)
	return p
}

func existingMenu(t *testing.T, cents int64) *catalog.Menu {
	t.Helper()
	m, err := catalog.NewMenu(kernel.NewUUID(), "Buffet", "", kernel.MoneyFromCents(cents), now)
	require.NoError(t, err)
	return m
}

func existingClient(t *testing.T) *catalog.Client {
	t.Helper()
	c, err := catalog.NewClient(kernel.NewUUID(), catalog.ClientDetails{
		FirstName: "Maria", LastName: "Lopez", Phone: "555-0101",
	}, now)
	require.NoError(t, err)
	return c
}
