package payment

import (
	"fmt"
	"strings"

	"catering/internal/pkg/errs"
)

// Status is the lifecycle state of a payment.
//
//	PENDING ⇄ PROCESSING ──> COMPLETED ──> REFUNDED
//	   │           │
//	   └───────────┴──> FAILED
//
// FAILED and REFUNDED are final.
type Status int

const (
	Unknown Status = iota
	Pending
	Processing
	Completed
	Failed
	Refunded
)

var statusNames = map[Status]string{
	Pending:    "PENDING",
	Processing: "PROCESSING",
	Completed:  "COMPLETED",
	Failed:     "FAILED",
	Refunded:   "REFUNDED",
}

func Statuses() []Status {
	return []Status{Pending, Processing, Completed, Failed, Refunded}
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
		paramName, fmt.Errorf("%q is not a payment status", s),
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

// CanTransitionTo reports whether the state machine permits moving to next.
func (s Status) CanTransitionTo(next Status) bool {
	if next.Validate() != nil {
		return false
	}
	switch s {
	case Pending, Processing:
		return next != Refunded
	case Completed:
		return next == Refunded
	default:
		return false
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
			fmt.Sprintf("payment cannot move from %s to %s", s, next),
		)
	}
	return next, nil
}

// IsCompleted and IsPending back the computed fields of a payment.
func IsCompleted(s Status) bool { return s == Completed }

func IsPending(s Status) bool { return s == Pending }
