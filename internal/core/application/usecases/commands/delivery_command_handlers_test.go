package commands_test

import (
	"testing"
	"time"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/domain/model/delivery"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func schedule(date kernel.Date) delivery.Schedule {
	start, _ := kernel.NewTimeOfDay(17, 0, 0)
	return delivery.Schedule{Date: date, Start: start}
}

func TestScheduleDeliveryCommandHandler_Handle(t *testing.T) {
	t.Run("should schedule the first delivery of an order", func(t *testing.T) {
		ctx := t.Context()
		o := existingOrder(t)
		cmd, err := commands.NewScheduleDeliveryCommand(kernel.NewUUID(), o.ID(), schedule(eventDate), delivery.Crew{}, delivery.Unknown)
		require.NoError(t, err)
		assert.Equal(t, delivery.Scheduled, cmd.Status())

		reader := new(MockOrderRepository)
		reader.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once()
		repo := new(MockDeliveryRepository)
		repo.On("ExistsForOrder", mock.Anything, o.ID(), (*kernel.UUID)(nil)).Return(false, nil).Once()
		repo.On("Add", mock.Anything, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once()
		uow := newUoW(true)
		uow.On("OrderReader").Return(reader).Once()
		uow.On("DeliveryRepository").Return(repo).Once()

		h := commands.NewScheduleDeliveryCommandHandler(deliveryUoWFactory{uow}, clock)
		require.NoError(t, h.Handle(ctx, cmd))

		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should refuse a second delivery", func(t *testing.T) {
		ctx := t.Context()
		o := existingOrder(t)
		cmd, _ := commands.NewScheduleDeliveryCommand(kernel.NewUUID(), o.ID(), schedule(eventDate), delivery.Crew{}, delivery.Scheduled)

		reader := new(MockOrderRepository)
		reader.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once()
		repo := new(MockDeliveryRepository)
		repo.On("ExistsForOrder", mock.Anything, o.ID(), (*kernel.UUID)(nil)).Return(true, nil).Once()
		uow := newUoW(false)
		uow.On("OrderReader").Return(reader).Once()
		uow.On("DeliveryRepository").Return(repo).Once()

		h := commands.NewScheduleDeliveryCommandHandler(deliveryUoWFactory{uow}, clock)
		err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Contains(t, err.Error(), "already has a delivery")
		repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("should refuse a date after the event", func(t *testing.T) {
		ctx := t.Context()
		o := existingOrder(t)
		cmd, _ := commands.NewScheduleDeliveryCommand(kernel.NewUUID(), o.ID(), schedule(eventDate.AddDays(5)), delivery.Crew{}, delivery.Scheduled)

		reader := new(MockOrderRepository)
		reader.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once()
		repo := new(MockDeliveryRepository)
		repo.On("ExistsForOrder", mock.Anything, o.ID(), (*kernel.UUID)(nil)).Return(false, nil).Once()
		uow := newUoW(false)
		uow.On("OrderReader").Return(reader).Once()
		uow.On("DeliveryRepository").Return(repo).Once()

		h := commands.NewScheduleDeliveryCommandHandler(deliveryUoWFactory{uow}, clock)

		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrValueIsInvalid)
	})
}

func existingDelivery(t *testing.T, orderID kernel.UUID) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(kernel.NewUUID(), orderID, schedule(eventDate), delivery.Crew{}, delivery.Scheduled, eventDate, now)
	require.NoError(t, err)
	return d
}

func TestUpdateDeliveryCommandHandler_Handle(t *testing.T) {
	t.Run("should refuse to move onto an order that has a delivery", func(t *testing.T) {
		ctx := t.Context()
		d := existingDelivery(t, kernel.NewUUID())
		other := existingOrder(t)
		otherID := other.ID()
		cmd, _ := commands.NewUpdateDeliveryCommand(d.ID(), delivery.Patch{OrderID: &otherID})

		reader := new(MockOrderRepository)
		reader.On("GetForUpdate", mock.Anything, otherID).Return(other, nil).Once()
		repo := new(MockDeliveryRepository)
		repo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once()
		id := d.ID()
		repo.On("ExistsForOrder", mock.Anything, otherID, &id).Return(true, nil).Once()
		uow := newUoW(false)
		uow.On("OrderReader").Return(reader).Once()
		uow.On("DeliveryRepository").Return(repo).Once()

		h := commands.NewUpdateDeliveryCommandHandler(deliveryUoWFactory{uow}, clock)

		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrConflict)
		assert.False(t, d.OrderID().IsEqual(otherID))
	})

	t.Run("should check a new date against the event of its order", func(t *testing.T) {
		ctx := t.Context()
		o := existingOrder(t)
		d := existingDelivery(t, o.ID())
		late := eventDate.AddDays(1)
		cmd, _ := commands.NewUpdateDeliveryCommand(d.ID(), delivery.Patch{Date: &late})

		reader := new(MockOrderRepository)
		reader.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once()
		repo := new(MockDeliveryRepository)
		repo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once()
		uow := newUoW(false)
		uow.On("OrderReader").Return(reader).Once()
		uow.On("DeliveryRepository").Return(repo).Once()

		h := commands.NewUpdateDeliveryCommandHandler(deliveryUoWFactory{uow}, clock)

		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrValueIsInvalid)
		repo.AssertNotCalled(t, "ExistsForOrder", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestChangeDeliveryStatusCommandHandler_HandleComplete(t *testing.T) {
	ctx := t.Context()
	d := existingDelivery(t, kernel.NewUUID())
	cmd, _ := commands.NewCompleteDeliveryCommand(d.ID())

	repo := new(MockDeliveryRepository)
	repo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once()
	repo.On("Update", mock.Anything, d).Return(nil).Once()
	uow := newUoW(true)
	uow.On("DeliveryRepository").Return(repo).Once()

	completedAt := kernel.FixedClock{At: time.Date(2025, time.July, 20, 18, 45, 10, 0, time.UTC)}
	h := commands.NewChangeDeliveryStatusCommandHandler(deliveryUoWFactory{uow}, completedAt)
	require.NoError(t, h.HandleComplete(ctx, cmd))

	assert.Equal(t, delivery.Delivered, d.Status())
	assert.Equal(t, "18:45:00", d.EndTime().String())
	require.NotNil(t, d.ConfirmedAt())
}

func TestRemoveDeliveryCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	d := existingDelivery(t, kernel.NewUUID())
	require.NoError(t, d.ChangeStatus(delivery.EnRoute, now))
	cmd, _ := commands.NewRemoveDeliveryCommand(d.ID())

	repo := new(MockDeliveryRepository)
	repo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once()
	uow := newUoW(false)
	uow.On("DeliveryRepository").Return(repo).Once()

	h := commands.NewRemoveDeliveryCommandHandler(deliveryUoWFactory{uow})

	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrConflict)
}
