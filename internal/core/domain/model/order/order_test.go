package order_test

import (
	"testing"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, time.July, 17, 10, 0, 0, 0, time.UTC)

func validDetails() order.Details {
	eventTime, _ := kernel.NewTimeOfDay(18, 0, 0)
	return order.Details{
		ClientID:  kernel.NewUUID(),
		EventDate: kernel.NewDate(2025, time.July, 20),
		EventTime: eventTime,
		Quantity:  3,
		Guests:    40,
		Address:   "Av. Reforma 100",
		Phone:     "555-0100",
	}
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.MoneyFromCents(5000), validDetails(), order.Pending, now)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should price the order from the menu", func(t *testing.T) {
		id := kernel.NewUUID()
		details := validDetails()

		o, err := order.NewOrder(id, kernel.NewUUID(), kernel.MoneyFromCents(5000), details, order.Pending, now)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.ClientID().IsEqual(details.ClientID))
		assert.Equal(t, "150.00", o.Total().String())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "2025-07-20", o.EventDate().String())
		assert.Equal(t, now, o.CreatedAt())
	})

	t.Run("should record a created event", func(t *testing.T) {
		o := newOrder(t)

		events := o.PendingEvents()
		require.Len(t, events, 1)
		assert.Equal(t, order.EventCreated, events[0].Name)
		assert.Equal(t, "150.00", events[0].Attributes["total"])
	})

	t.Run("should accept an event today", func(t *testing.T) {
		details := validDetails()
		details.EventDate = kernel.DateOf(now)

		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.MoneyFromCents(5000), details, order.Pending, now)

		require.NoError(t, err)
	})

	t.Run("should reject a past event date", func(t *testing.T) {
		details := validDetails()
		details.EventDate = kernel.NewDate(2025, time.July, 16)

		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.MoneyFromCents(5000), details, order.Pending, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "eventDate")
	})

	t.Run("should join every field error", func(t *testing.T) {
		details := validDetails()
		details.Quantity = 0
		details.Guests = -1
		details.Address = "   "

		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.MoneyFromCents(5000), details, order.Pending, now)

		require.Error(t, err)
		assert.True(t, errs.IsInvalidInput(err))
		assert.Contains(t, err.Error(), "quantity")
		assert.Contains(t, err.Error(), "guests")
		assert.Contains(t, err.Error(), "eventAddress")
	})

	t.Run("should reject an undefined status", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.MoneyFromCents(5000), validDetails(), order.Unknown, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject a missing client", func(t *testing.T) {
		details := validDetails()
		details.ClientID = kernel.UUID{}

		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.MoneyFromCents(5000), details, order.Pending, now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_Validate(t *testing.T) {
	var zero order.Order
	var nilOrder *order.Order

	assert.Equal(t, order.ErrOrderIsNotConstructed, zero.Validate())
	assert.Equal(t, order.ErrOrderIsNotConstructed, nilOrder.Validate())
}

func TestRestoreOrder(t *testing.T) {
	o := newOrder(t)
	snapshot := o.Snapshot()
	snapshot.EventDate = kernel.NewDate(2020, time.January, 1)

	restored, err := order.RestoreOrder(snapshot)

	require.NoError(t, err)
	assert.True(t, restored.IsEqual(o))
	assert.Equal(t, "2020-01-01", restored.EventDate().String())
	assert.Empty(t, restored.PendingEvents())
}

func TestOrder_ChangeStatus(t *testing.T) {
	later := now.Add(time.Hour)

	t.Run("should move and record the change", func(t *testing.T) {
		o := newOrder(t)
		o.ClearEvents()

		require.NoError(t, o.ChangeStatus(order.Confirmed, later))

		assert.Equal(t, order.Confirmed, o.Status())
		assert.Equal(t, later, o.UpdatedAt())
		events := o.PendingEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "PENDING", events[0].Attributes["previousStatus"])
		assert.Equal(t, "CONFIRMED", events[0].Attributes["status"])
	})

	t.Run("delivered to delivered is a no-op", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.ChangeStatus(order.Delivered, later))
		o.ClearEvents()

		require.NoError(t, o.ChangeStatus(order.Delivered, later.Add(time.Hour)))

		assert.Equal(t, later, o.UpdatedAt())
		assert.Empty(t, o.PendingEvents())
	})

	t.Run("should refuse to leave delivered", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.ChangeStatus(order.Delivered, later))

		err := o.ChangeStatus(order.Cancelled, later)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("cancelled orders can only be reopened", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.ChangeStatus(order.Cancelled, later))

		require.ErrorIs(t, o.ChangeStatus(order.Confirmed, later), errs.ErrConflict)
		require.NoError(t, o.ChangeStatus(order.Pending, later))
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("unknown target leaves the order untouched", func(t *testing.T) {
		o := newOrder(t)

		require.ErrorIs(t, o.ChangeStatus(order.Status(99), later), errs.ErrValueIsInvalid)
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_Update(t *testing.T) {
	later := now.Add(time.Hour)

	t.Run("should reprice when the quantity changes", func(t *testing.T) {
		o := newOrder(t)
		quantity := 5

		err := o.Update(order.Patch{Quantity: &quantity}, kernel.MoneyFromCents(5000), later)

		require.NoError(t, err)
		assert.Equal(t, 5, o.Quantity())
		assert.Equal(t, "250.00", o.Total().String())
		assert.Equal(t, later, o.UpdatedAt())
	})

	t.Run("should keep the total when the quantity is untouched", func(t *testing.T) {
		o := newOrder(t)
		notes := "vegetarian options"

		err := o.Update(order.Patch{Notes: &notes}, kernel.ZeroMoney(), later)

		require.NoError(t, err)
		assert.Equal(t, "150.00", o.Total().String())
		assert.Equal(t, notes, o.Notes())
	})

	t.Run("should apply nothing when one field is invalid", func(t *testing.T) {
		o := newOrder(t)
		guests := 80
		past := kernel.NewDate(2025, time.July, 1)

		err := o.Update(order.Patch{Guests: &guests, EventDate: &past}, kernel.ZeroMoney(), later)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, 40, o.Guests())
		assert.Equal(t, "2025-07-20", o.EventDate().String())
	})

	t.Run("should reject a zero quantity", func(t *testing.T) {
		o := newOrder(t)
		quantity := 0

		err := o.Update(order.Patch{Quantity: &quantity}, kernel.MoneyFromCents(5000), later)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "150.00", o.Total().String())
	})
}

func TestOrder_EnsureRemovable(t *testing.T) {
	o := newOrder(t)
	require.NoError(t, o.EnsureRemovable())

	require.NoError(t, o.ChangeStatus(order.Confirmed, now))
	require.ErrorIs(t, o.EnsureRemovable(), errs.ErrConflict)
}

func TestComputedFields(t *testing.T) {
	eventDate := kernel.NewDate(2025, time.July, 20)
	eventTime, _ := kernel.NewTimeOfDay(18, 30, 0)

	assert.Equal(t, 3, order.DaysUntilEvent(eventDate, kernel.DateOf(now)))
	assert.Equal(t,
		time.Date(2025, time.July, 20, 18, 30, 0, 0, time.UTC),
		order.EventDateTime(eventDate, eventTime, time.UTC))
}
