// Package paymentrepo provides the gorm persistence of the payment ledger,
// including the completed-total aggregation the payment cap relies on.
package paymentrepo

import (
	"errors"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentDTO is the row of the payments table.
type PaymentDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index:idx_payments_order_status,priority:1"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null;check:chk_payments_amount,amount > 0"`
	Method    string          `gorm:"type:varchar(20);not null;index"`
	Status    string          `gorm:"type:varchar(20);not null;index:idx_payments_order_status,priority:2"`
	Reference string          `gorm:"type:varchar(100)"`
	PaidAt    time.Time       `gorm:"not null;index"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName pins the table name to "payments".
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a payment aggregate to its row.
func fromDomain(p *payment.Payment) PaymentDTO {
	s := p.Snapshot()
	return PaymentDTO{
		ID:        s.ID.Bytes(),
		OrderID:   s.OrderID.Bytes(),
		Amount:    s.Amount.Decimal(),
		Method:    s.Method.String(),
		Status:    s.Status.String(),
		Reference: s.Reference,
		PaidAt:    s.PaidAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// toDomain restores a payment aggregate, parsing status and method from
// their wire names.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, idErr := kernel.UUIDFromBytes(dto.ID[:])
	orderID, orderErr := kernel.UUIDFromBytes(dto.OrderID[:])
	method, methodErr := payment.ParseMethod("method", dto.Method)
	status, statusErr := payment.ParseStatus("status", dto.Status)
	if err := errors.Join(idErr, orderErr, methodErr, statusErr); err != nil {
		return nil, err
	}

	return payment.RestorePayment(payment.Snapshot{
		ID:        id,
		OrderID:   orderID,
		Amount:    kernel.NewMoney(dto.Amount),
		Method:    method,
		Status:    status,
		Reference: dto.Reference,
		PaidAt:    dto.PaidAt,
		UpdatedAt: dto.UpdatedAt,
	})
}
