package commands

import (
	"context"

	"catering/internal/core/domain/model/kernel"
)

type UpdatePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	clock      kernel.Clock
}

func NewUpdatePaymentCommandHandler(uowFactory PaymentUoWFactory, clock kernel.Clock) UpdatePaymentCommandHandler {
	return UpdatePaymentCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle checks the payment against the order it belongs to after the
// patch, which must exist.
func (h UpdatePaymentCommandHandler) Handle(ctx context.Context, cmd UpdatePaymentCommand) error {
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

	balance, err := lockedBalance(ctx, uow, p.TargetOrder(cmd.Patch()), p.ID())
	if err != nil {
		return err
	}

	if err = p.Update(cmd.Patch(), balance, h.clock.Now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
