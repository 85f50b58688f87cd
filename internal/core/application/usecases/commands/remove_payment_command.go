package commands

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrRemovePaymentCommandIsNotConstructed = errors.New(
	"RemovePaymentCommand must be created via NewRemovePaymentCommand constructor",
)

type RemovePaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemovePaymentCommand(paymentID kernel.UUID) (RemovePaymentCommand, error) {
	if err := paymentID.Validate(); err != nil {
		return RemovePaymentCommand{}, err
	}
	return RemovePaymentCommand{paymentID: paymentID, guard: guard.NewConstructorGuard()}, nil
}

func (c RemovePaymentCommand) Validate() error {
	return c.guard.Validate(ErrRemovePaymentCommandIsNotConstructed)
}

func (c RemovePaymentCommand) PaymentID() kernel.UUID { return c.paymentID }
