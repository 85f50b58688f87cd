package kernel

import "time"

// Clock supplies the current instant. Date rules such as "not in the past"
// are evaluated against Today(clock).
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in a fixed location.
type SystemClock struct {
	loc *time.Location
}

func NewSystemClock(loc *time.Location) SystemClock {
	if loc == nil {
		loc = time.Local
	}
	return SystemClock{loc: loc}
}

func (c SystemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// FixedClock always returns the same instant.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time {
	return c.At
}

// Today returns the calendar day of clock.Now().
func Today(clock Clock) Date {
	return DateOf(clock.Now())
}
