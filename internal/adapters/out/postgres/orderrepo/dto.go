// Package orderrepo provides the gorm persistence of the order ledger.
// It maps order aggregates to rows of the orders table and back, keeping
// status as its wire name and money as decimal(12,2).
package orderrepo

import (
	"errors"
	"time"

	"catering/internal/adapters/out/postgres/sqltypes"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderDTO is the row of the orders table. Status holds the wire name.
type OrderDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ClientID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	MenuID    uuid.UUID       `gorm:"type:uuid;not null"`
	EventDate datatypes.Date  `gorm:"not null;index"`
	EventTime datatypes.Time  `gorm:"not null"`
	Quantity  int             `gorm:"not null;check:chk_orders_quantity,quantity > 0"`
	Guests    int             `gorm:"not null;check:chk_orders_guests,guests > 0"`
	Address   string          `gorm:"type:varchar(255);not null"`
	Phone     string          `gorm:"type:varchar(20)"`
	Notes     string          `gorm:"type:text"`
	Status    string          `gorm:"type:varchar(20);not null;index"`
	Total     decimal.Decimal `gorm:"type:decimal(12,2);not null;check:chk_orders_total,total >= 0"`
	CreatedAt time.Time       `gorm:"not null;index"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName pins the table name to "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its row. Optional phone and notes
// are stored as empty strings.
func fromDomain(o *order.Order) OrderDTO {
	s := o.Snapshot()
	return OrderDTO{
		ID:        s.ID.Bytes(),
		ClientID:  s.ClientID.Bytes(),
		MenuID:    s.MenuID.Bytes(),
		EventDate: sqltypes.FromDate(s.EventDate),
		EventTime: sqltypes.FromTimeOfDay(s.EventTime),
		Quantity:  s.Quantity,
		Guests:    s.Guests,
		Address:   s.Address,
		Phone:     s.Phone,
		Notes:     s.Notes,
		Status:    s.Status.String(),
		Total:     s.Total.Decimal(),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// toDomain restores an order aggregate from its row without re-running the
// creation rules, so orders whose event date has passed still load.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, idErr := kernel.UUIDFromBytes(dto.ID[:])
	clientID, clientErr := kernel.UUIDFromBytes(dto.ClientID[:])
	menuID, menuErr := kernel.UUIDFromBytes(dto.MenuID[:])
	eventTime, timeErr := sqltypes.ToTimeOfDay(dto.EventTime)
	status, statusErr := order.ParseStatus("status", dto.Status)
	if err := errors.Join(idErr, clientErr, menuErr, timeErr, statusErr); err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Snapshot{
		ID:        id,
		ClientID:  clientID,
		MenuID:    menuID,
		EventDate: sqltypes.ToDate(dto.EventDate),
		EventTime: eventTime,
		Quantity:  dto.Quantity,
		Guests:    dto.Guests,
		Address:   dto.Address,
		Phone:     dto.Phone,
		Notes:     dto.Notes,
		Status:    status,
		Total:     kernel.NewMoney(dto.Total),
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	})
}
