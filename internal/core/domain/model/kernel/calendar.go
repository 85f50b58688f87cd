package kernel

import (
	"fmt"
	"time"

	"catering/internal/pkg/errs"
)

const (
	dateLayout      = "2006-01-02"
	timeLayout      = "15:04:05"
	shortTimeLayout = "15:04"
	secondsPerDay   = 24 * 60 * 60
)

// Date is a calendar day without time zone, stored as UTC midnight.
type Date struct {
	t time.Time
}

// NewDate builds a calendar day; out of range parts are normalized like time.Date.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate parses YYYY-MM-DD.
func ParseDate(paramName, s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return DateOf(t), nil
}

// Time returns the day as UTC midnight.
func (d Date) Time() time.Time {
	return d.t
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// DaysUntil returns the signed number of calendar days from d to other.
func (d Date) DaysUntil(other Date) int {
	return int(other.t.Sub(d.t).Hours() / 24)
}

func (d Date) String() string {
	return d.t.Format(dateLayout)
}

// TimeOfDay is a wall clock time with second precision.
type TimeOfDay struct {
	seconds int
}

// NewTimeOfDay validates each component.
func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("hour", hour, 0, 23)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("minute", minute, 0, 59)
	}
	if second < 0 || second > 59 {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("second", second, 0, 59)
	}
	return TimeOfDay{seconds: hour*3600 + minute*60 + second}, nil
}

// ParseTimeOfDay accepts HH:MM and HH:MM:SS.
func ParseTimeOfDay(paramName, s string) (TimeOfDay, error) {
	for _, layout := range []string{timeLayout, shortTimeLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return NewTimeOfDay(t.Hour(), t.Minute(), t.Second())
		}
	}
	return TimeOfDay{}, errs.NewValueIsInvalidErrorWithCause(
		paramName, fmt.Errorf("%q is not a HH:MM or HH:MM:SS time", s),
	)
}

// TimeOfDayOf returns the wall clock time of t truncated to the minute.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{seconds: t.Hour()*3600 + t.Minute()*60}
}

// TimeOfDayFromSeconds restores a value persisted as seconds since midnight.
func TimeOfDayFromSeconds(seconds int) (TimeOfDay, error) {
	if seconds < 0 || seconds >= secondsPerDay {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("time of day", seconds, 0, secondsPerDay-1)
	}
	return TimeOfDay{seconds: seconds}, nil
}

func (t TimeOfDay) Hour() int {
	return t.seconds / 3600
}

func (t TimeOfDay) Minute() int {
	return t.seconds % 3600 / 60
}

func (t TimeOfDay) Second() int {
	return t.seconds % 60
}

// Seconds returns the number of seconds since midnight.
func (t TimeOfDay) Seconds() int {
	return t.seconds
}

func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.seconds > other.seconds
}

// MinutesUntil returns the rounded number of minutes from t to other.
func (t TimeOfDay) MinutesUntil(other TimeOfDay) int {
	diff := other.seconds - t.seconds
	if diff >= 0 {
		return (diff + 30) / 60
	}
	return (diff - 30) / 60
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// On combines a calendar day and a wall clock time in loc.
func (t TimeOfDay) On(d Date, loc *time.Location) time.Time {
	y, m, day := d.t.Date()
	return time.Date(y, m, day, t.Hour(), t.Minute(), t.Second(), 0, loc)
}
