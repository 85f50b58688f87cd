package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

const AggregateType = "order"

// Event names recorded by Order.
const (
	EventCreated       = "order.created"
	EventStatusChanged = "order.status_changed"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Details holds the client supplied attributes of an order.
type Details struct {
	ClientID  kernel.UUID
	EventDate kernel.Date
	EventTime kernel.TimeOfDay
	Quantity  int
	Guests    int
	Address   string
	Phone     string
	Notes     string
}

// Order is the aggregate root of the order ledger. It owns the order status
// machine and the order total.
//
// Order follows these invariants:
//   - Client and menu references are valid identifiers
//   - The event date is not in the past when it is set
//   - Quantity and guest count are positive
//   - The event address is not blank
//   - Total equals the menu unit price times the quantity and is only
//     recomputed when the quantity changes
//   - The menu reference never changes after creation
//   - Status transitions follow Status.TransitionTo
type Order struct {
	kernel.EventRecorder

	id        kernel.UUID
	clientID  kernel.UUID
	menuID    kernel.UUID
	eventDate kernel.Date
	eventTime kernel.TimeOfDay
	quantity  int
	guests    int
	address   string
	phone     string
	notes     string
	status    Status
	total     kernel.Money
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder registers a new order priced at unitPrice per menu unit.
//
// Parameters:
//   - id: identifier of the new order
//   - menuID: the menu the order is priced from
//   - unitPrice: the menu unit price at the time of ordering
//   - details: client supplied attributes
//   - status: initial status, usually Pending
//   - now: the current instant, used for the event date check and timestamps
//
// All validation failures are joined into one error so a caller sees every
// offending field at once.
func NewOrder(
	id, menuID kernel.UUID,
	unitPrice kernel.Money,
	details Details,
	status Status,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        status,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	today := kernel.DateOf(now)
	if err := errors.Join(
		o.setID(id),
		o.setMenuID(menuID),
		o.setClientID(details.ClientID),
		o.setEventDate(details.EventDate, today),
		o.setQuantity(details.Quantity),
		o.setGuests(details.Guests),
		o.setAddress(details.Address),
		status.Validate(),
		validateUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	o.eventTime = details.EventTime
	o.phone = strings.TrimSpace(details.Phone)
	o.notes = details.Notes
	o.total = unitPrice.Times(o.quantity)

	o.Record(kernel.NewDomainEvent(EventCreated, AggregateType, o.id, now, map[string]string{
		"clientId": o.clientID.String(),
		"status":   o.status.String(),
		"total":    o.total.String(),
	}))
	return o, nil
}

// Snapshot is the full persisted state of an order.
type Snapshot struct {
	ID        kernel.UUID
	ClientID  kernel.UUID
	MenuID    kernel.UUID
	EventDate kernel.Date
	EventTime kernel.TimeOfDay
	Quantity  int
	Guests    int
	Address   string
	Phone     string
	Notes     string
	Status    Status
	Total     kernel.Money
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RestoreOrder rebuilds an order loaded from storage. Date rules are not
// re-applied because a stored order may legitimately have a past event date.
func RestoreOrder(s Snapshot) (*Order, error) {
	if err := errors.Join(
		s.ID.Validate(),
		s.ClientID.Validate(),
		s.MenuID.Validate(),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:            s.ID,
		clientID:      s.ClientID,
		menuID:        s.MenuID,
		eventDate:     s.EventDate,
		eventTime:     s.EventTime,
		quantity:      s.Quantity,
		guests:        s.Guests,
		address:       s.Address,
		phone:         s.Phone,
		notes:         s.Notes,
		status:        s.Status,
		total:         s.Total,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID { return o.id }
func (o *Order) ClientID() kernel.UUID { return o.clientID }
func (o *Order) MenuID() kernel.UUID { return o.menuID }
func (o *Order) EventDate() kernel.Date { return o.eventDate }
func (o *Order) EventTime() kernel.TimeOfDay { return o.eventTime }
func (o *Order) Quantity() int { return o.quantity }
func (o *Order) Guests() int { return o.guests }
func (o *Order) Address() string { return o.address }
func (o *Order) Phone() string { return o.phone }
func (o *Order) Notes() string { return o.notes }
func (o *Order) Status() Status { return o.status }
func (o *Order) Total() kernel.Money { return o.total }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// Snapshot exports the persisted state.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:        o.id,
		ClientID:  o.clientID,
		MenuID:    o.menuID,
		EventDate: o.eventDate,
		EventTime: o.eventTime,
		Quantity:  o.quantity,
		Guests:    o.guests,
		Address:   o.address,
		Phone:     o.phone,
		Notes:     o.notes,
		Status:    o.status,
		Total:     o.total,
		CreatedAt: o.createdAt,
		UpdatedAt: o.updatedAt,
	}
}

// ChangeStatus moves the order to next.
//
// Returns:
//   - nil on success; DELIVERED -> DELIVERED succeeds without side effects
//   - ValueIsInvalidError when next is not a defined status
//   - ConflictError when the state machine forbids the move
//
// On failure the order is left untouched.
func (o *Order) ChangeStatus(next Status, now time.Time) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}
	if newStatus == o.status {
		return nil
	}

	previous := o.status
	o.status = newStatus
	o.updatedAt = now
	o.Record(kernel.NewDomainEvent(EventStatusChanged, AggregateType, o.id, now, map[string]string{
		"previousStatus": previous.String(),
		"status":         newStatus.String(),
	}))
	return nil
}

// Patch lists the editable attributes of an order. Nil fields are left as is.
type Patch struct {
	ClientID  *kernel.UUID
	EventDate *kernel.Date
	EventTime *kernel.TimeOfDay
	Quantity  *int
	Guests    *int
	Address   *string
	Phone     *string
	Notes     *string
}

// ChangesQuantity reports whether applying the patch reprices the order.
func (p Patch) ChangesQuantity() bool {
	return p.Quantity != nil
}

// Update applies patch atomically. unitPrice is only read when the patch
// changes the quantity; the total is then recomputed from it. A patched
// event date must not be in the past.
func (o *Order) Update(patch Patch, unitPrice kernel.Money, now time.Time) error {
	next := *o
	today := kernel.DateOf(now)

	var errList []error
	if patch.ClientID != nil {
		errList = append(errList, next.setClientID(*patch.ClientID))
	}
	if patch.EventDate != nil {
		errList = append(errList, next.setEventDate(*patch.EventDate, today))
	}
	if patch.Quantity != nil {
		errList = append(errList, next.setQuantity(*patch.Quantity), validateUnitPrice(unitPrice))
	}
	if patch.Guests != nil {
		errList = append(errList, next.setGuests(*patch.Guests))
	}
	if patch.Address != nil {
		errList = append(errList, next.setAddress(*patch.Address))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	if patch.EventTime != nil {
		next.eventTime = *patch.EventTime
	}
	if patch.Phone != nil {
		next.phone = strings.TrimSpace(*patch.Phone)
	}
	if patch.Notes != nil {
		next.notes = *patch.Notes
	}
	if patch.Quantity != nil {
		next.total = unitPrice.Times(next.quantity)
	}
	next.updatedAt = now

	*o = next
	return nil
}

// EnsureRemovable fails unless the order is still PENDING.
func (o *Order) EnsureRemovable() error {
	if o.status != Pending {
		return errs.NewConflictError(
			fmt.Sprintf("only PENDING orders can be deleted, order is %s", o.status),
		)
	}
	return nil
}

// EventDateTime combines the event date and time in loc.
func EventDateTime(date kernel.Date, at kernel.TimeOfDay, loc *time.Location) time.Time {
	return at.On(date, loc)
}

// DaysUntilEvent returns the signed number of days from today to the event.
func DaysUntilEvent(eventDate, today kernel.Date) int {
	return today.DaysUntil(eventDate)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("clientId", err)
	}
	o.clientID = id
	return nil
}

func (o *Order) setMenuID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("menuId", err)
	}
	o.menuID = id
	return nil
}

func (o *Order) setEventDate(date, today kernel.Date) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("eventDate")
	}
	if date.Before(today) {
		return errs.NewValueIsInvalidErrorWithCause(
			"eventDate", fmt.Errorf("%s is in the past", date),
		)
	}
	o.eventDate = date
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setGuests(guests int) error {
	if guests <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("guests", fmt.Errorf("%d is not greater than 0", guests))
	}
	o.guests = guests
	return nil
}

func (o *Order) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("eventAddress")
	}
	o.address = address
	return nil
}

func validateUnitPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%s is not greater than 0", price))
	}
	return nil
}
