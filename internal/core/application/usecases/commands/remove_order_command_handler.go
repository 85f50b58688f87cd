package commands

import (
	"context"
)

// RemoveOrderCommandHandler deletes PENDING orders. Storage refuses to
// delete an order that payments or a delivery still refer to.
type RemoveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewRemoveOrderCommandHandler(uowFactory OrderUoWFactory) RemoveOrderCommandHandler {
	return RemoveOrderCommandHandler{uowFactory: uowFactory}
}

func (h RemoveOrderCommandHandler) Handle(ctx context.Context, cmd RemoveOrderCommand) error {
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

	repo := uow.OrderRepository()
	o, err := repo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.EnsureRemovable(); err != nil {
		return err
	}

	if err = repo.Remove(ctx, o.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
