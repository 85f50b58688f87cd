package commands

import (
	"errors"
	"strings"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/payment"
	"catering/internal/pkg/guard"
)

var ErrCreatePaymentCommandIsNotConstructed = errors.New(
	"CreatePaymentCommand must be created via NewCreatePaymentCommand constructor",
)

// CreatePaymentCommand records money received for an order.
type CreatePaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	orderID   kernel.UUID
	amount    kernel.Money
	method    payment.Method
	status    payment.Status
	reference string

	guard guard.ConstructorGuard
}

// NewCreatePaymentCommand defaults an Unknown status to PENDING.
func NewCreatePaymentCommand(
	paymentID, orderID kernel.UUID,
	amount kernel.Money,
	method payment.Method,
	status payment.Status,
	reference string,
) (CreatePaymentCommand, error) {
	if status == payment.Unknown {
		status = payment.Pending
	}

	if err := errors.Join(
		paymentID.Validate(),
		requireID("orderId", orderID),
		method.Validate(),
		status.Validate(),
	); err != nil {
		return CreatePaymentCommand{}, err
	}

	return CreatePaymentCommand{
		paymentID: paymentID,
		orderID:   orderID,
		amount:    amount,
		method:    method,
		status:    status,
		reference: strings.TrimSpace(reference),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCreatePaymentCommandIsNotConstructed)
}

func (c CreatePaymentCommand) PaymentID() kernel.UUID { return c.paymentID }
func (c CreatePaymentCommand) OrderID() kernel.UUID { return c.orderID }
func (c CreatePaymentCommand) Amount() kernel.Money { return c.amount }
func (c CreatePaymentCommand) Method() payment.Method { return c.method }
func (c CreatePaymentCommand) Status() payment.Status { return c.status }
func (c CreatePaymentCommand) Reference() string { return c.reference }
