package commands

import (
	"context"

	"catering/internal/core/domain/model/kernel"
)

type ChangePaymentStatusCommandHandler struct {
	uowFactory PaymentUoWFactory
	clock      kernel.Clock
}

func NewChangePaymentStatusCommandHandler(
	uowFactory PaymentUoWFactory, clock kernel.Clock,
) ChangePaymentStatusCommandHandler {
	return ChangePaymentStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns a ConflictError when the move is forbidden or when
// completing the payment would exceed the order total.
func (h ChangePaymentStatusCommandHandler) Handle(ctx context.Context, cmd ChangePaymentStatusCommand) error {
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

	repo := uow.PaymentRepository()
	p, err := repo.GetForUpdate(ctx, cmd.PaymentID())
	if err != nil {
		return err
	}

	balance, err := lockedBalance(ctx, uow, p.OrderID(), p.ID())
	if err != nil {
		return err
	}

	if err = p.ChangeStatus(cmd.Status(), balance, h.clock.Now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
