package delivery

import (
	"fmt"
	"strings"

	"catering/internal/pkg/errs"
)

// Status is the lifecycle state of a delivery.
//
//	SCHEDULED ──> EN_ROUTE ──> DELIVERED
//	    │  ▲          │
//	    ▼  │          │
//	 CANCELLED <──────┘
//
// DELIVERED only accepts itself and CANCELLED can only be rescheduled.
type Status int

const (
	Unknown Status = iota
	Scheduled
	EnRoute
	Delivered
	Cancelled
)

var statusNames = map[Status]string{
	Scheduled: "SCHEDULED",
	EnRoute:   "EN_ROUTE",
	Delivered: "DELIVERED",
	Cancelled: "CANCELLED",
}

func Statuses() []Status {
	return []Status{Scheduled, EnRoute, Delivered, Cancelled}
}

// ParseStatus converts the wire name (case-insensitive) into a Status.
func ParseStatus(paramName, s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, n := range statusNames {
		if n == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		paramName, fmt.Errorf("%q is not a delivery status", s),
	)
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

func (s Status) CanTransitionTo(next Status) bool {
	if next.Validate() != nil {
		return false
	}
	switch s {
	case Delivered:
		return next == Delivered
	case Cancelled:
		return next == Scheduled
	case Unknown:
		return false
	default:
		return true
	}
}

// TransitionTo returns next when permitted, a ValueIsInvalidError for an
// undefined target and a ConflictError otherwise.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewConflictError(
			fmt.Sprintf("delivery cannot move from %s to %s", s, next),
		)
	}
	return next, nil
}

func IsCompleted(s Status) bool { return s == Delivered }
