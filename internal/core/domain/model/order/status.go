package order

import (
	"fmt"
	"strings"

	"catering/internal/pkg/errs"
)

// Status represents the lifecycle state of a catering order.
//
// State transitions:
//
//	PENDING ──> CONFIRMED ──> IN_PREPARATION ──> READY ──> DELIVERED
//	   │            │               │              │
//	   └────────────┴───────────────┴──────────────┴──> CANCELLED ──> PENDING
//
// Forward moves may skip steps. DELIVERED only accepts itself (a no-op) and
// CANCELLED can only be reopened as PENDING.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status of a freshly registered order.
	Pending

	// Confirmed means the client accepted the quote.
	Confirmed

	// InPreparation means the kitchen is working on the order.
	InPreparation

	// Ready means the food is packed and waiting for delivery.
	Ready

	// Delivered is the final state of a fulfilled order.
	Delivered

	// Cancelled orders can only be reopened as Pending.
	Cancelled
)

var statusNames = map[Status]string{
	Pending:       "PENDING",
	Confirmed:     "CONFIRMED",
	InPreparation: "IN_PREPARATION",
	Ready:         "READY",
	Delivered:     "DELIVERED",
	Cancelled:     "CANCELLED",
}

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Confirmed, InPreparation, Ready, Delivered, Cancelled}
}

// ParseStatus converts the wire name (case-insensitive) into a Status.
// Unknown names are reported as invalid input for paramName.
func ParseStatus(paramName, s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, n := range statusNames {
		if n == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		paramName,
		fmt.Errorf("%q is not one of %s", s, strings.Join(names(), ", ")),
	)
}

func names() []string {
	out := make([]string, 0, len(statusNames))
	for _, s := range Statuses() {
		out = append(out, s.String())
	}
	return out
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name, or "UNKNOWN" for invalid values.
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
	case Delivered:
		return next == Delivered
	case Cancelled:
		return next == Pending
	case Unknown:
		return false
	default:
		return true
	}
}

// TransitionTo returns next when the move is permitted.
//
// Returns:
//   - (next, nil) on a permitted move
//   - ValueIsInvalidError when next is not a defined status
//   - ConflictError when the current status does not allow the move
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewConflictError(
			fmt.Sprintf("order cannot move from %s to %s", s, next),
		)
	}
	return next, nil
}

// IsRevenue reports whether orders in this status count towards revenue.
func (s Status) IsRevenue() bool {
	return s != Cancelled && s != Unknown
}
