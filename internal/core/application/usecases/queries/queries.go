// Package queries contains the read side of the ledgers.
//
// Handlers read straight from the database with SQL and return read models
// that already carry the computed fields (days until the event, estimated
// durations, method descriptions). They never go through the aggregates and
// never write.
package queries

import (
	"errors"
	"fmt"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var ErrDateRangeIsNotConstructed = errors.New("DateRange must be created via NewDateRange constructor")

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	from kernel.Date
	to   kernel.Date

	guard guard.ConstructorGuard
}

// NewDateRange fails with invalid input when a bound is missing or from is
// after to.
func NewDateRange(from, to kernel.Date) (DateRange, error) {
	var errList []error
	if from.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("from"))
	}
	if to.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("to"))
	}
	if err := errors.Join(errList...); err != nil {
		return DateRange{}, err
	}
	if from.After(to) {
		return DateRange{}, errs.NewValueIsInvalidErrorWithCause("to", fmt.Errorf("%s is before %s", to, from))
	}
	return DateRange{from: from, to: to, guard: guard.NewConstructorGuard()}, nil
}

func (r DateRange) Validate() error {
	return r.guard.Validate(ErrDateRangeIsNotConstructed)
}

func (r DateRange) From() kernel.Date { return r.from }
func (r DateRange) To() kernel.Date { return r.to }

// instants returns [start of from, start of the day after to) in loc.
func (r DateRange) instants(loc *time.Location) (time.Time, time.Time) {
	return startOfDay(r.from, loc), startOfDay(r.to.AddDays(1), loc)
}

func startOfDay(d kernel.Date, loc *time.Location) time.Time {
	t := d.Time()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// today returns the current day and its bounds in the clock's location.
func today(clock kernel.Clock) (kernel.Date, time.Time, time.Time) {
	now := clock.Now()
	day := kernel.DateOf(now)
	return day, startOfDay(day, now.Location()), startOfDay(day.AddDays(1), now.Location())
}

// countsByName returns a map with an entry for every name, zero by default.
func countsByName[T fmt.Stringer](all []T) map[string]int64 {
	out := make(map[string]int64, len(all))
	for _, v := range all {
		out[v.String()] = 0
	}
	return out
}
