package commands

import (
	"context"

	"catering/internal/core/domain/model/kernel"
)

type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns an ObjectNotFoundError for an unknown order and a
// ConflictError when the state machine forbids the move.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	if err = o.ChangeStatus(cmd.Status(), h.clock.Now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
