package commands

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrCompletePaymentCommandIsNotConstructed = errors.New(
	"CompletePaymentCommand must be created via NewCompletePaymentCommand constructor",
)

type CompletePaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCompletePaymentCommand(paymentID kernel.UUID) (CompletePaymentCommand, error) {
	if err := paymentID.Validate(); err != nil {
		return CompletePaymentCommand{}, err
	}
	return CompletePaymentCommand{paymentID: paymentID, guard: guard.NewConstructorGuard()}, nil
}

func (c CompletePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCompletePaymentCommandIsNotConstructed)
}

func (c CompletePaymentCommand) PaymentID() kernel.UUID { return c.paymentID }
