package payment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

const AggregateType = "payment"

const (
	EventCreated       = "payment.created"
	EventStatusChanged = "payment.status_changed"
)

var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Balance is the state of an order's account that a payment is checked
// against. CompletedTotal never includes the payment being checked.
type Balance struct {
	OrderTotal     kernel.Money
	CompletedTotal kernel.Money
}

// Remaining is what can still be completed without exceeding the order total.
func (b Balance) Remaining() kernel.Money {
	return b.OrderTotal.Sub(b.CompletedTotal)
}

func (b Balance) admits(amount kernel.Money) bool {
	return !b.CompletedTotal.Add(amount).GreaterThan(b.OrderTotal)
}

// CheckNewAmount validates the amount of a payment being registered. The
// completed total plus amount must not exceed the order total whatever the
// status of the new payment. Violations are invalid input.
func (b Balance) CheckNewAmount(amount kernel.Money) error {
	if b.admits(amount) {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf(
		"%s exceeds the remaining balance %s of order total %s", amount, b.Remaining(), b.OrderTotal,
	))
}

// CheckCompletion validates that completing amount keeps the order within its
// total. Violations are conflicts with the current state of the order.
func (b Balance) CheckCompletion(amount kernel.Money) error {
	if b.admits(amount) {
		return nil
	}
	return errs.NewConflictError(fmt.Sprintf(
		"completing %s would exceed order total %s (already completed %s)",
		amount, b.OrderTotal, b.CompletedTotal,
	))
}

// Payment is the aggregate root of the payment ledger. A payment records
// money received for an order; it is never processed by a gateway.
//
// Invariants:
//   - Amount is positive
//   - Method and status are defined values
//   - For every order the sum of COMPLETED payments never exceeds the order
//     total; every operation that can grow that sum takes a Balance
//   - Status transitions follow Status.TransitionTo
type Payment struct {
	kernel.EventRecorder

	id        kernel.UUID
	orderID   kernel.UUID
	amount    kernel.Money
	method    Method
	status    Status
	reference string
	paidAt    time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewPayment registers a payment against an order whose state is balance.
// paidAt is stamped with now.
func NewPayment(
	id, orderID kernel.UUID,
	amount kernel.Money,
	method Method,
	status Status,
	reference string,
	balance Balance,
	now time.Time,
) (*Payment, error) {
	p := &Payment{
		method:        method,
		status:        status,
		reference:     strings.TrimSpace(reference),
		paidAt:        now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setAmount(amount),
		method.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if err := balance.CheckNewAmount(amount); err != nil {
		return nil, err
	}

	p.Record(kernel.NewDomainEvent(EventCreated, AggregateType, p.id, now, map[string]string{
		"orderId": p.orderID.String(),
		"amount":  p.amount.String(),
		"method":  p.method.String(),
		"status":  p.status.String(),
	}))
	return p, nil
}

// Snapshot is the full persisted state of a payment.
type Snapshot struct {
	ID        kernel.UUID
	OrderID   kernel.UUID
	Amount    kernel.Money
	Method    Method
	Status    Status
	Reference string
	PaidAt    time.Time
	UpdatedAt time.Time
}

// RestorePayment rebuilds a payment loaded from storage.
func RestorePayment(s Snapshot) (*Payment, error) {
	if err := errors.Join(
		s.ID.Validate(),
		s.OrderID.Validate(),
		s.Method.Validate(),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}
	return &Payment{
		id:            s.ID,
		orderID:       s.OrderID,
		amount:        s.Amount,
		method:        s.Method,
		status:        s.Status,
		reference:     s.Reference,
		paidAt:        s.PaidAt,
		updatedAt:     s.UpdatedAt,
		isConstructed: true,
	}, nil
}

func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

func (p *Payment) ID() kernel.UUID { return p.id }
func (p *Payment) OrderID() kernel.UUID { return p.orderID }
func (p *Payment) Amount() kernel.Money { return p.amount }
func (p *Payment) Method() Method { return p.method }
func (p *Payment) Status() Status { return p.status }
func (p *Payment) Reference() string { return p.reference }
func (p *Payment) PaidAt() time.Time { return p.paidAt }
func (p *Payment) UpdatedAt() time.Time { return p.updatedAt }

func (p *Payment) Snapshot() Snapshot {
	return Snapshot{
		ID:        p.id,
		OrderID:   p.orderID,
		Amount:    p.amount,
		Method:    p.method,
		Status:    p.status,
		Reference: p.reference,
		PaidAt:    p.paidAt,
		UpdatedAt: p.updatedAt,
	}
}

// ChangeStatus moves the payment to next. Entering COMPLETED re-checks the
// order balance. A move to the current status is accepted without effect.
func (p *Payment) ChangeStatus(next Status, balance Balance, now time.Time) error {
	newStatus, err := p.status.TransitionTo(next)
	if err != nil {
		return err
	}
	if newStatus == p.status {
		return nil
	}
	if newStatus == Completed {
		if err := balance.CheckCompletion(p.amount); err != nil {
			return err
		}
	}

	p.setStatus(newStatus, now)
	return nil
}

// MarkCompleted is the explicit completion command. Unlike ChangeStatus it
// reports an already completed payment as a conflict.
func (p *Payment) MarkCompleted(balance Balance, now time.Time) error {
	switch p.status {
	case Completed:
		return errs.NewConflictError("payment is already completed")
	case Refunded, Failed:
		return errs.NewConflictError(fmt.Sprintf("a %s payment cannot be completed", p.status))
	}
	if err := balance.CheckCompletion(p.amount); err != nil {
		return err
	}

	p.setStatus(Completed, now)
	return nil
}

// Patch lists the editable attributes of a payment. Status is changed through
// ChangeStatus or MarkCompleted only.
type Patch struct {
	OrderID   *kernel.UUID
	Amount    *kernel.Money
	Method    *Method
	Reference *string
}

// TargetOrder returns the order the payment belongs to once patch is applied.
func (p *Payment) TargetOrder(patch Patch) kernel.UUID {
	if patch.OrderID != nil {
		return *patch.OrderID
	}
	return p.orderID
}

// Update applies patch atomically. balance describes TargetOrder(patch) and is
// consulted when a COMPLETED payment changes its amount or its order.
func (p *Payment) Update(patch Patch, balance Balance, now time.Time) error {
	next := *p

	var errList []error
	if patch.OrderID != nil {
		errList = append(errList, next.setOrderID(*patch.OrderID))
	}
	if patch.Amount != nil {
		errList = append(errList, next.setAmount(*patch.Amount))
	}
	if patch.Method != nil {
		errList = append(errList, patch.Method.Validate())
		next.method = *patch.Method
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	if next.status == Completed && (patch.Amount != nil || patch.OrderID != nil) {
		if err := balance.CheckCompletion(next.amount); err != nil {
			return err
		}
	}

	if patch.Reference != nil {
		next.reference = strings.TrimSpace(*patch.Reference)
	}
	next.updatedAt = now

	*p = next
	return nil
}

// EnsureRemovable fails unless the payment is PENDING or FAILED.
func (p *Payment) EnsureRemovable() error {
	if p.status != Pending && p.status != Failed {
		return errs.NewConflictError(
			fmt.Sprintf("only PENDING or FAILED payments can be deleted, payment is %s", p.status),
		)
	}
	return nil
}

// DaysSincePaid returns the number of whole days between paidAt and now.
func DaysSincePaid(paidAt, now time.Time) int {
	return kernel.DateOf(paidAt.In(now.Location())).DaysUntil(kernel.DateOf(now))
}

func (p *Payment) setStatus(status Status, now time.Time) {
	previous := p.status
	p.status = status
	p.updatedAt = now
	p.Record(kernel.NewDomainEvent(EventStatusChanged, AggregateType, p.id, now, map[string]string{
		"orderId":        p.orderID.String(),
		"previousStatus": previous.String(),
		"status":         status.String(),
	}))
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	p.orderID = id
	return nil
}

func (p *Payment) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%s is not greater than 0", amount))
	}
	p.amount = amount
	return nil
}
