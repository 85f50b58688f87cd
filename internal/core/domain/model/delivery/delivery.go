package delivery

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

const AggregateType = "delivery"

const (
	EventCreated       = "delivery.created"
	EventStatusChanged = "delivery.status_changed"
)

var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

// Schedule is when a delivery happens.
type Schedule struct {
	Date  kernel.Date
	Start kernel.TimeOfDay
	End   *kernel.TimeOfDay
}

// Crew describes who brings the order and how.
type Crew struct {
	Vehicle string
	Driver  string
	Notes   string
}

// Delivery is the aggregate root of the delivery scheduler.
//
// Invariants:
//   - The delivery date is never later than the event date of its order
//   - A delivery is never scheduled for a past date
//   - When an end time is set it is strictly after the start time
//   - Entering DELIVERED stamps the confirmation time exactly once
//
// One delivery per order is enforced by the scheduler and storage, not by the
// aggregate.
type Delivery struct {
	kernel.EventRecorder

	id          kernel.UUID
	orderID     kernel.UUID
	date        kernel.Date
	startTime   kernel.TimeOfDay
	endTime     *kernel.TimeOfDay
	status      Status
	vehicle     string
	driver      string
	notes       string
	confirmedAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewDelivery schedules the delivery of an order whose event is on eventDate.
func NewDelivery(
	id, orderID kernel.UUID,
	schedule Schedule,
	crew Crew,
	status Status,
	eventDate kernel.Date,
	now time.Time,
) (*Delivery, error) {
	d := &Delivery{
		vehicle:       strings.TrimSpace(crew.Vehicle),
		driver:        strings.TrimSpace(crew.Driver),
		notes:         crew.Notes,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	today := kernel.DateOf(now)
	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		status.Validate(),
		validateDate(schedule.Date, eventDate, today),
		validateWindow(schedule.Start, schedule.End),
	); err != nil {
		return nil, err
	}

	d.date = schedule.Date
	d.startTime = schedule.Start
	d.endTime = schedule.End
	d.status = status
	if status == Delivered {
		d.confirmedAt = &now
	}

	d.Record(kernel.NewDomainEvent(EventCreated, AggregateType, d.id, now, map[string]string{
		"orderId":      d.orderID.String(),
		"deliveryDate": d.date.String(),
		"status":       d.status.String(),
	}))
	return d, nil
}

// Snapshot is the full persisted state of a delivery.
type Snapshot struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	Date        kernel.Date
	StartTime   kernel.TimeOfDay
	EndTime     *kernel.TimeOfDay
	Status      Status
	Vehicle     string
	Driver      string
	Notes       string
	ConfirmedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RestoreDelivery rebuilds a delivery loaded from storage.
func RestoreDelivery(s Snapshot) (*Delivery, error) {
	if err := errors.Join(
		s.ID.Validate(),
		s.OrderID.Validate(),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}
	return &Delivery{
		id:            s.ID,
		orderID:       s.OrderID,
		date:          s.Date,
		startTime:     s.StartTime,
		endTime:       s.EndTime,
		status:        s.Status,
		vehicle:       s.Vehicle,
		driver:        s.Driver,
		notes:         s.Notes,
		confirmedAt:   s.ConfirmedAt,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		isConstructed: true,
	}, nil
}

func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

func (d *Delivery) ID() kernel.UUID { return d.id }
func (d *Delivery) OrderID() kernel.UUID { return d.orderID }
func (d *Delivery) Date() kernel.Date { return d.date }
func (d *Delivery) StartTime() kernel.TimeOfDay { return d.startTime }
func (d *Delivery) EndTime() *kernel.TimeOfDay { return d.endTime }
func (d *Delivery) Status() Status { return d.status }
func (d *Delivery) Vehicle() string { return d.vehicle }
func (d *Delivery) Driver() string { return d.driver }
func (d *Delivery) Notes() string { return d.notes }
func (d *Delivery) ConfirmedAt() *time.Time { return d.confirmedAt }
func (d *Delivery) CreatedAt() time.Time { return d.createdAt }
func (d *Delivery) UpdatedAt() time.Time { return d.updatedAt }

func (d *Delivery) Snapshot() Snapshot {
	return Snapshot{
		ID:          d.id,
		OrderID:     d.orderID,
		Date:        d.date,
		StartTime:   d.startTime,
		EndTime:     d.endTime,
		Status:      d.status,
		Vehicle:     d.vehicle,
		Driver:      d.driver,
		Notes:       d.notes,
		ConfirmedAt: d.confirmedAt,
		CreatedAt:   d.createdAt,
		UpdatedAt:   d.updatedAt,
	}
}

// ChangeStatus moves the delivery to next. Moving to the current status is
// accepted without effect, so repeating DELIVERED keeps the original
// confirmation time.
func (d *Delivery) ChangeStatus(next Status, now time.Time) error {
	newStatus, err := d.status.TransitionTo(next)
	if err != nil {
		return err
	}
	if newStatus == d.status {
		return nil
	}

	d.setStatus(newStatus, now)
	return nil
}

// Complete marks the delivery DELIVERED under the same rules as ChangeStatus.
// A missing end time defaults to now truncated to the minute, unless that is
// not after the start time, in which case it stays unknown.
func (d *Delivery) Complete(now time.Time) error {
	if _, err := d.status.TransitionTo(Delivered); err != nil {
		return err
	}
	if d.status == Delivered {
		return nil
	}

	if end := kernel.TimeOfDayOf(now); d.endTime == nil && end.After(d.startTime) {
		d.endTime = &end
	}
	d.setStatus(Delivered, now)
	return nil
}

// Patch lists the editable attributes of a delivery.
type Patch struct {
	OrderID   *kernel.UUID
	Date      *kernel.Date
	StartTime *kernel.TimeOfDay
	EndTime   *kernel.TimeOfDay
	Vehicle   *string
	Driver    *string
	Notes     *string
}

// TargetOrder returns the order the delivery belongs to once patch is applied.
func (d *Delivery) TargetOrder(patch Patch) kernel.UUID {
	if patch.OrderID != nil {
		return *patch.OrderID
	}
	return d.orderID
}

// ReschedulesDate reports whether the delivery date must be re-checked
// against the event date of TargetOrder(patch).
func (p Patch) ReschedulesDate() bool {
	return p.OrderID != nil || p.Date != nil
}

// Update applies patch atomically. eventDate is the event date of
// TargetOrder(patch). A patched date must not be in the past and the
// effective date must not be after the event.
func (d *Delivery) Update(patch Patch, eventDate kernel.Date, now time.Time) error {
	next := *d
	today := kernel.DateOf(now)

	var errList []error
	if patch.OrderID != nil {
		errList = append(errList, next.setOrderID(*patch.OrderID))
	}
	if patch.Date != nil {
		next.date = *patch.Date
		errList = append(errList, validateDate(next.date, eventDate, today))
	} else if patch.OrderID != nil {
		errList = append(errList, validateNotAfterEvent(next.date, eventDate))
	}
	if patch.StartTime != nil {
		next.startTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		end := *patch.EndTime
		next.endTime = &end
	}
	if patch.StartTime != nil || patch.EndTime != nil {
		errList = append(errList, validateWindow(next.startTime, next.endTime))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	if patch.Vehicle != nil {
		next.vehicle = strings.TrimSpace(*patch.Vehicle)
	}
	if patch.Driver != nil {
		next.driver = strings.TrimSpace(*patch.Driver)
	}
	if patch.Notes != nil {
		next.notes = *patch.Notes
	}
	next.updatedAt = now

	*d = next
	return nil
}

// EnsureRemovable fails unless the delivery is SCHEDULED or CANCELLED.
func (d *Delivery) EnsureRemovable() error {
	if d.status != Scheduled && d.status != Cancelled {
		return errs.NewConflictError(
			fmt.Sprintf("only SCHEDULED or CANCELLED deliveries can be deleted, delivery is %s", d.status),
		)
	}
	return nil
}

// EstimatedDuration returns the minutes between start and end, or nil when
// no end time is known.
func EstimatedDuration(start kernel.TimeOfDay, end *kernel.TimeOfDay) *int {
	if end == nil {
		return nil
	}
	minutes := start.MinutesUntil(*end)
	return &minutes
}

// DaysUntilDelivery returns the signed number of days from today.
func DaysUntilDelivery(date, today kernel.Date) int {
	return today.DaysUntil(date)
}

func (d *Delivery) setStatus(status Status, now time.Time) {
	previous := d.status
	d.status = status
	d.updatedAt = now
	if status == Delivered {
		d.confirmedAt = &now
	}
	d.Record(kernel.NewDomainEvent(EventStatusChanged, AggregateType, d.id, now, map[string]string{
		"orderId":        d.orderID.String(),
		"previousStatus": previous.String(),
		"status":         status.String(),
	}))
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	d.orderID = id
	return nil
}

func validateDate(date, eventDate, today kernel.Date) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("deliveryDate")
	}
	if date.Before(today) {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryDate", fmt.Errorf("%s is in the past", date),
		)
	}
	return validateNotAfterEvent(date, eventDate)
}

func validateNotAfterEvent(date, eventDate kernel.Date) error {
	if date.After(eventDate) {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryDate", fmt.Errorf("%s is after the event date %s", date, eventDate),
		)
	}
	return nil
}

func validateWindow(start kernel.TimeOfDay, end *kernel.TimeOfDay) error {
	if end != nil && !end.After(start) {
		return errs.NewValueIsInvalidErrorWithCause(
			"endTime", fmt.Errorf("%s is not after start time %s", end, start),
		)
	}
	return nil
}
