package orderrepo

import (
	"context"
	"errors"

	"catering/internal/adapters/out/postgres/pgerr"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var constraintMessages = map[string]string{
	"fk_orders_client":    "client does not exist",
	"fk_orders_menu":      "menu does not exist",
	"fk_payments_order":   "order still has payments",
	"fk_deliveries_order": "order still has a delivery",
}

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker registers saved aggregates with the unit of work so their
// events are published after commit.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates an order repository bound to db, which is
// normally the transaction of a GormUnitOfWork.
//
// Example:
//
//	uow := factory.Create()
//	_ = uow.Begin(ctx)
//	defer uow.Rollback(ctx)
//
//	o, err := uow.OrderRepository().GetForUpdate(ctx, orderID)
//	// ... change o
//	err = uow.OrderRepository().Update(ctx, o)
//	err = uow.Commit(ctx)
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new order. A missing client or menu is reported as a
// ConflictError by the foreign keys.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Map(err, constraintMessages)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes every column, so cleared optional fields are persisted too.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Map(result.Error, constraintMessages)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Remove deletes the order row. Orders still referenced by payments or a
// delivery fail with a ConflictError.
func (r *GormOrderRepository) Remove(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return pgerr.Map(result.Error, constraintMessages)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", id.String())
	}
	return nil
}

// Get retrieves an order by ID or returns an ObjectNotFoundError.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate locks the order row with SELECT ... FOR UPDATE.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormOrderRepository) get(db *gorm.DB, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
