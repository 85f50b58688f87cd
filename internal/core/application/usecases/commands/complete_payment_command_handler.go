package commands

import (
	"context"

	"catering/internal/core/domain/model/kernel"
)

type CompletePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	clock      kernel.Clock
}

func NewCompletePaymentCommandHandler(uowFactory PaymentUoWFactory, clock kernel.Clock) CompletePaymentCommandHandler {
	return CompletePaymentCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h CompletePaymentCommandHandler) Handle(ctx context.Context, cmd CompletePaymentCommand) error {
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

	if err = p.MarkCompleted(balance, h.clock.Now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
