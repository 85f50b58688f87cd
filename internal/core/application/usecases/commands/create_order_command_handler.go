package commands

import (
	"context"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
)

// CreateOrderCommandHandler registers orders. The client and the menu must
// exist; the order is priced from the menu unit price.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns an ObjectNotFoundError for an unknown client or menu and the
// aggregate's validation errors otherwise.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	catalog := uow.CatalogReader()
	if _, err := catalog.GetClient(ctx, cmd.Details().ClientID); err != nil {
		return err
	}
	menu, err := catalog.GetMenu(ctx, cmd.MenuID())
	if err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.MenuID(), menu.UnitPrice(), cmd.Details(), cmd.Status(), h.clock.Now())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
