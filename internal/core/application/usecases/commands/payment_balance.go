package commands

import (
	"context"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/payment"
)

// lockedBalance locks orderID and returns its balance without paymentID.
// Every payment write that can grow the completed sum of an order goes
// through it.
func lockedBalance(ctx context.Context, uow PaymentUoW, orderID, paymentID kernel.UUID) (payment.Balance, error) {
	o, err := uow.OrderReader().GetForUpdate(ctx, orderID)
	if err != nil {
		return payment.Balance{}, err
	}

	completed, err := uow.PaymentRepository().CompletedTotal(ctx, orderID, &paymentID)
	if err != nil {
		return payment.Balance{}, err
	}

	return payment.Balance{OrderTotal: o.Total(), CompletedTotal: completed}, nil
}
