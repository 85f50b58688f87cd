package paymentrepo

import (
	"context"
	"errors"

	"catering/internal/adapters/out/postgres/pgerr"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/payment"
	"catering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var constraintMessages = map[string]string{
	"fk_payments_order": "order does not exist",
}

// aggregateTracker registers saved aggregates with the unit of work.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormPaymentRepository implements PaymentRepository using GORM.
type GormPaymentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormPaymentRepository creates a payment repository bound to db.
func NewGormPaymentRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentRepository {
	return &GormPaymentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add validates and inserts a new payment. A missing order is reported as a
// ConflictError by the foreign key.
func (r *GormPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
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

// Update writes every column except id and paid_at.
func (r *GormPaymentRepository) Update(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PaymentDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "paid_at").
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Map(result.Error, constraintMessages)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("paymentId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Remove deletes the payment row or returns an ObjectNotFoundError.
func (r *GormPaymentRepository) Remove(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).Delete(&PaymentDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("paymentId", id.String())
	}
	return nil
}

// Get retrieves a payment by ID or returns an ObjectNotFoundError.
func (r *GormPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate locks the payment row with SELECT ... FOR UPDATE.
func (r *GormPaymentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormPaymentRepository) get(db *gorm.DB, id kernel.UUID) (*payment.Payment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("paymentId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// CompletedTotal sums COMPLETED payments of orderID, leaving excluding out.
// Callers hold the order row lock so the sum cannot change before commit.
func (r *GormPaymentRepository) CompletedTotal(
	ctx context.Context, orderID kernel.UUID, excluding *kernel.UUID,
) (kernel.Money, error) {
	query := r.db.WithContext(ctx).Model(&PaymentDTO{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("order_id = ? AND status = ?", orderID.Bytes(), payment.Completed.String())
	if excluding != nil {
		query = query.Where("id <> ?", excluding.Bytes())
	}

	var total decimal.Decimal
	if err := query.Row().Scan(&total); err != nil {
		return kernel.Money{}, err
	}
	return kernel.NewMoney(total), nil
}
