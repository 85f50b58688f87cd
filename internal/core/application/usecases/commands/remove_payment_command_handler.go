package commands

import (
	"context"
)

// RemovePaymentCommandHandler deletes PENDING or FAILED payments.
type RemovePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

func NewRemovePaymentCommandHandler(uowFactory PaymentUoWFactory) RemovePaymentCommandHandler {
	return RemovePaymentCommandHandler{uowFactory: uowFactory}
}

func (h RemovePaymentCommandHandler) Handle(ctx context.Context, cmd RemovePaymentCommand) error {
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

	if err = p.EnsureRemovable(); err != nil {
		return err
	}

	if err = repo.Remove(ctx, p.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
