package ports

import (
	"context"

	"catering/internal/core/domain/model/delivery"
	"catering/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
// Storage keeps a unique index on the order reference; a violation is
// reported as a ConflictError.
type DeliveryRepository interface {
	Add(ctx context.Context, aggregate *delivery.Delivery) error
	Update(ctx context.Context, aggregate *delivery.Delivery) error
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)
	Remove(ctx context.Context, id kernel.UUID) error

	// ExistsForOrder reports whether the order already has a delivery other
	// than excluding.
	ExistsForOrder(ctx context.Context, orderID kernel.UUID, excluding *kernel.UUID) (bool, error)
}
