package commands

import (
	"context"
	"fmt"

	"catering/internal/core/domain/model/delivery"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

// ScheduleDeliveryCommandHandler creates deliveries, at most one per order.
//
// The order row is locked before the existence check so concurrent requests
// for the same order are serialized; the unique index on the order reference
// backs the check.
type ScheduleDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	clock      kernel.Clock
}

func NewScheduleDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory, clock kernel.Clock,
) ScheduleDeliveryCommandHandler {
	return ScheduleDeliveryCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns an ObjectNotFoundError for an unknown order, a ConflictError
// when the order already has a delivery and invalid input for dates outside
// the allowed window.
func (h ScheduleDeliveryCommandHandler) Handle(ctx context.Context, cmd ScheduleDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderReader().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	repo := uow.DeliveryRepository()
	if err = ensureNoDelivery(ctx, repo.ExistsForOrder, o.ID(), nil); err != nil {
		return err
	}

	d, err := delivery.NewDelivery(
		cmd.DeliveryID(), o.ID(), cmd.Schedule(), cmd.Crew(), cmd.Status(), o.EventDate(), h.clock.Now(),
	)
	if err != nil {
		return err
	}

	if err = repo.Add(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func ensureNoDelivery(
	ctx context.Context,
	exists func(context.Context, kernel.UUID, *kernel.UUID) (bool, error),
	orderID kernel.UUID,
	excluding *kernel.UUID,
) error {
	found, err := exists(ctx, orderID, excluding)
	if err != nil {
		return err
	}
	if found {
		return errs.NewConflictError(fmt.Sprintf("order %s already has a delivery", orderID))
	}
	return nil
}
