package deliveryrepo

import (
	"context"
	"errors"

	"catering/internal/adapters/out/postgres/pgerr"
	"catering/internal/core/domain/model/delivery"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"

	"gorm.io/gorm"
)

var constraintMessages = map[string]string{
	"idx_deliveries_order_id": "order already has a delivery",
	"fk_deliveries_order":     "order does not exist",
}

// aggregateTracker registers saved aggregates with the unit of work.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormDeliveryRepository creates a delivery repository bound to db.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add reports a second delivery for the same order as a ConflictError.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
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

// Update writes every column, so a cleared end time is persisted as NULL.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Map(result.Error, constraintMessages)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("deliveryId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Remove deletes the delivery row or returns an ObjectNotFoundError.
func (r *GormDeliveryRepository) Remove(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).Delete(&DeliveryDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("deliveryId", id.String())
	}
	return nil
}

// Get retrieves a delivery by ID or returns an ObjectNotFoundError.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsForOrder reports whether orderID has a delivery other than excluding.
func (r *GormDeliveryRepository) ExistsForOrder(
	ctx context.Context, orderID kernel.UUID, excluding *kernel.UUID,
) (bool, error) {
	query := r.db.WithContext(ctx).Model(&DeliveryDTO{}).Where("order_id = ?", orderID.Bytes())
	if excluding != nil {
		query = query.Where("id <> ?", excluding.Bytes())
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
