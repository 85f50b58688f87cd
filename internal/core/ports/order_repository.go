package ports

import (
	"context"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
)

// OrderReader is the read side of the order ledger that dependent ledgers
// (payments, deliveries) are allowed to use. It never exposes writes.
type OrderReader interface {
	// Get retrieves an order by its identifier.
	// Returns an ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row until the surrounding
	// transaction ends. Writers that check an order-wide invariant (payment
	// cap, one delivery per order) take this lock first so concurrent writers
	// for the same order are serialized.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}

// OrderRepository defines the persistence contract for order aggregates.
// Only the order ledger holds one.
type OrderRepository interface {
	OrderReader

	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Returns an ObjectNotFoundError when no row was changed.
	Update(ctx context.Context, aggregate *order.Order) error

	// Remove deletes an order. Orders still referenced by payments or
	// deliveries cannot be removed and yield a ConflictError.
	Remove(ctx context.Context, id kernel.UUID) error
}
