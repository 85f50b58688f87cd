package commands

import (
	"context"

	"catering/internal/core/domain/model/delivery"
	"catering/internal/core/domain/model/kernel"
)

// ChangeDeliveryStatusCommandHandler moves a delivery through its state
// machine. It also backs CompleteDeliveryCommand.
type ChangeDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
	clock      kernel.Clock
}

func NewChangeDeliveryStatusCommandHandler(
	uowFactory DeliveryUoWFactory, clock kernel.Clock,
) ChangeDeliveryStatusCommandHandler {
	return ChangeDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h ChangeDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd ChangeDeliveryStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.apply(ctx, cmd.DeliveryID(), func(d *delivery.Delivery) error {
		return d.ChangeStatus(cmd.Status(), h.clock.Now())
	})
}

// HandleComplete marks the delivery DELIVERED, defaulting its end time.
func (h ChangeDeliveryStatusCommandHandler) HandleComplete(ctx context.Context, cmd CompleteDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.apply(ctx, cmd.DeliveryID(), func(d *delivery.Delivery) error {
		return d.Complete(h.clock.Now())
	})
}

func (h ChangeDeliveryStatusCommandHandler) apply(
	ctx context.Context, id kernel.UUID, change func(*delivery.Delivery) error,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryRepository()
	d, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err = change(d); err != nil {
		return err
	}

	if err = repo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
