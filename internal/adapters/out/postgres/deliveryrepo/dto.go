// Package deliveryrepo persists delivery aggregates with gorm.
package deliveryrepo

import (
	"errors"
	"time"

	"catering/internal/adapters/out/postgres/sqltypes"
	"catering/internal/core/domain/model/delivery"
	"catering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DeliveryDTO is the row of the deliveries table. OrderID carries a unique
// index so an order can never have two deliveries.
type DeliveryDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_deliveries_order_id"`
	DeliveryDate datatypes.Date  `gorm:"not null;index"`
	StartTime    datatypes.Time  `gorm:"not null"`
	EndTime      *datatypes.Time `gorm:"check:chk_deliveries_window,end_time IS NULL OR end_time > start_time"`
	Status       string          `gorm:"type:varchar(20);not null;index"`
	Vehicle      string          `gorm:"type:varchar(50)"`
	Driver       string          `gorm:"type:varchar(100);index"`
	Notes        string          `gorm:"type:text"`
	ConfirmedAt  *time.Time
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName pins the table name to "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery aggregate to its row. A nil end time maps to
// NULL.
func fromDomain(d *delivery.Delivery) DeliveryDTO {
	s := d.Snapshot()
	return DeliveryDTO{
		ID:           s.ID.Bytes(),
		OrderID:      s.OrderID.Bytes(),
		DeliveryDate: sqltypes.FromDate(s.Date),
		StartTime:    sqltypes.FromTimeOfDay(s.StartTime),
		EndTime:      sqltypes.FromOptionalTimeOfDay(s.EndTime),
		Status:       s.Status.String(),
		Vehicle:      s.Vehicle,
		Driver:       s.Driver,
		Notes:        s.Notes,
		ConfirmedAt:  s.ConfirmedAt,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// toDomain restores a delivery aggregate from its row.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, idErr := kernel.UUIDFromBytes(dto.ID[:])
	orderID, orderErr := kernel.UUIDFromBytes(dto.OrderID[:])
	start, startErr := sqltypes.ToTimeOfDay(dto.StartTime)
	end, endErr := sqltypes.ToOptionalTimeOfDay(dto.EndTime)
	status, statusErr := delivery.ParseStatus("status", dto.Status)
	if err := errors.Join(idErr, orderErr, startErr, endErr, statusErr); err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(delivery.Snapshot{
		ID:          id,
		OrderID:     orderID,
		Date:        sqltypes.ToDate(dto.DeliveryDate),
		StartTime:   start,
		EndTime:     end,
		Status:      status,
		Vehicle:     dto.Vehicle,
		Driver:      dto.Driver,
		Notes:       dto.Notes,
		ConfirmedAt: dto.ConfirmedAt,
		CreatedAt:   dto.CreatedAt,
		UpdatedAt:   dto.UpdatedAt,
	})
}
