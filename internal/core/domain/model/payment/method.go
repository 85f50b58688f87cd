package payment

import (
	"fmt"
	"strings"

	"catering/internal/pkg/errs"
)

// Method is how the client paid.
type Method int

const (
	UnknownMethod Method = iota
	Cash
	Card
	Transfer
	Check
)

var methodNames = map[Method]string{
	Cash:     "CASH",
	Card:     "CARD",
	Transfer: "TRANSFER",
	Check:    "CHECK",
}

var methodDescriptions = map[Method]string{
	Cash:     "Cash",
	Card:     "Credit or debit card",
	Transfer: "Bank transfer",
	Check:    "Check",
}

func Methods() []Method {
	return []Method{Cash, Card, Transfer, Check}
}

// ParseMethod converts the wire name (case-insensitive) into a Method.
func ParseMethod(paramName, s string) (Method, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for method, n := range methodNames {
		if n == name {
			return method, nil
		}
	}
	return UnknownMethod, errs.NewValueIsInvalidErrorWithCause(
		paramName, fmt.Errorf("%q is not one of CASH, CARD, TRANSFER, CHECK", s),
	)
}

func (m Method) Validate() error {
	if _, ok := methodNames[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("method", fmt.Errorf("%d is not a valid method", m))
	}
	return nil
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return "UNKNOWN"
}

// Description is the human readable label shown next to a payment.
func (m Method) Description() string {
	if d, ok := methodDescriptions[m]; ok {
		return d
	}
	return "Unknown"
}
