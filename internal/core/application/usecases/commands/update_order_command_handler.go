package commands

import (
	"context"

	"catering/internal/core/domain/model/kernel"
)

type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle re-validates a new client reference and reprices the order from its
// menu when the quantity changes.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	patch := cmd.Patch()
	catalog := uow.CatalogReader()
	if patch.ClientID != nil {
		if _, err = catalog.GetClient(ctx, *patch.ClientID); err != nil {
			return err
		}
	}

	unitPrice := kernel.ZeroMoney()
	if patch.ChangesQuantity() {
		menu, menuErr := catalog.GetMenu(ctx, o.MenuID())
		if menuErr != nil {
			return menuErr
		}
		unitPrice = menu.UnitPrice()
	}

	if err = o.Update(patch, unitPrice, h.clock.Now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
