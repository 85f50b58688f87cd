package commands

import (
	"context"
)

// RemoveDeliveryCommandHandler deletes SCHEDULED or CANCELLED deliveries.
type RemoveDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewRemoveDeliveryCommandHandler(uowFactory DeliveryUoWFactory) RemoveDeliveryCommandHandler {
	return RemoveDeliveryCommandHandler{uowFactory: uowFactory}
}

func (h RemoveDeliveryCommandHandler) Handle(ctx context.Context, cmd RemoveDeliveryCommand) error {
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

	if err = d.EnsureRemovable(); err != nil {
		return err
	}

	if err = repo.Remove(ctx, d.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
