package ports

import (
	"context"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment aggregates.
type PaymentRepository interface {
	Add(ctx context.Context, aggregate *payment.Payment) error
	Update(ctx context.Context, aggregate *payment.Payment) error
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	// GetForUpdate retrieves a payment and locks its row for the rest of the
	// transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*payment.Payment, error)
	Remove(ctx context.Context, id kernel.UUID) error

	// CompletedTotal sums the amounts of COMPLETED payments of an order.
	// When excluding is set that payment is left out of the sum, which is
	// how a payment is checked against the rest of its order.
	CompletedTotal(ctx context.Context, orderID kernel.UUID, excluding *kernel.UUID) (kernel.Money, error)
}
