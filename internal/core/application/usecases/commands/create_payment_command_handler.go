package commands

import (
	"context"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/payment"
)

// CreatePaymentCommandHandler registers payments while keeping the sum of
// completed payments of an order within the order total.
//
// The order row is locked before the completed total is read, so two
// payments for the same order can never both pass the check against a stale
// sum.
type CreatePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	clock      kernel.Clock
}

func NewCreatePaymentCommandHandler(uowFactory PaymentUoWFactory, clock kernel.Clock) CreatePaymentCommandHandler {
	return CreatePaymentCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns an ObjectNotFoundError for an unknown order and invalid
// input when the amount exceeds the remaining balance.
func (h CreatePaymentCommandHandler) Handle(ctx context.Context, cmd CreatePaymentCommand) error {
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

	o, err := uow.OrderReader().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	repo := uow.PaymentRepository()
	completed, err := repo.CompletedTotal(ctx, o.ID(), nil)
	if err != nil {
		return err
	}

	p, err := payment.NewPayment(
		cmd.PaymentID(), o.ID(), cmd.Amount(), cmd.Method(), cmd.Status(), cmd.Reference(),
		payment.Balance{OrderTotal: o.Total(), CompletedTotal: completed},
		h.clock.Now(),
	)
	if err != nil {
		return err
	}

	if err = repo.Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
