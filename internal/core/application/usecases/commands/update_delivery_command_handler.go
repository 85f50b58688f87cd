package commands

import (
	"context"

	"catering/internal/core/domain/model/kernel"
)

type UpdateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	clock      kernel.Clock
}

func NewUpdateDeliveryCommandHandler(uowFactory DeliveryUoWFactory, clock kernel.Clock) UpdateDeliveryCommandHandler {
	return UpdateDeliveryCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle validates the patched schedule against the order the delivery
// belongs to afterwards. Moving to another order re-checks that it exists
// and has no delivery yet.
func (h UpdateDeliveryCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryCommand) error {
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

	repo := uow.DeliveryRepository()
	d, err := repo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	patch := cmd.Patch()
	target := d.TargetOrder(patch)
	o, err := uow.OrderReader().GetForUpdate(ctx, target)
	if err != nil {
		return err
	}

	if !target.IsEqual(d.OrderID()) {
		id := d.ID()
		if err = ensureNoDelivery(ctx, repo.ExistsForOrder, target, &id); err != nil {
			return err
		}
	}

	if err = d.Update(patch, o.EventDate(), h.clock.Now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
