package commands

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/payment"
	"catering/internal/pkg/guard"
)

var ErrUpdatePaymentCommandIsNotConstructed = errors.New(
	"UpdatePaymentCommand must be created via NewUpdatePaymentCommand constructor",
)

// UpdatePaymentCommand edits amount, method, reference or order of a payment.
type UpdatePaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	patch     payment.Patch

	guard guard.ConstructorGuard
}

func NewUpdatePaymentCommand(paymentID kernel.UUID, patch payment.Patch) (UpdatePaymentCommand, error) {
	if err := paymentID.Validate(); err != nil {
		return UpdatePaymentCommand{}, err
	}
	if patch.OrderID != nil {
		if err := requireID("orderId", *patch.OrderID); err != nil {
			return UpdatePaymentCommand{}, err
		}
	}
	return UpdatePaymentCommand{paymentID: paymentID, patch: patch, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePaymentCommandIsNotConstructed)
}

func (c UpdatePaymentCommand) PaymentID() kernel.UUID { return c.paymentID }
func (c UpdatePaymentCommand) Patch() payment.Patch { return c.patch }
