package commands

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/payment"
	"catering/internal/pkg/guard"
)

var ErrChangePaymentStatusCommandIsNotConstructed = errors.New(
	"ChangePaymentStatusCommand must be created via NewChangePaymentStatusCommand constructor",
)

type ChangePaymentStatusCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	status    payment.Status

	guard guard.ConstructorGuard
}

func NewChangePaymentStatusCommand(paymentID kernel.UUID, status payment.Status) (ChangePaymentStatusCommand, error) {
	if err := errors.Join(paymentID.Validate(), status.Validate()); err != nil {
		return ChangePaymentStatusCommand{}, err
	}
	return ChangePaymentStatusCommand{paymentID: paymentID, status: status, guard: guard.NewConstructorGuard()}, nil
}

func (c ChangePaymentStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangePaymentStatusCommandIsNotConstructed)
}

func (c ChangePaymentStatusCommand) PaymentID() kernel.UUID { return c.paymentID }
func (c ChangePaymentStatusCommand) Status() payment.Status { return c.status }
