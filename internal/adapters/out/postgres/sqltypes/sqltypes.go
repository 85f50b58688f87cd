// Package sqltypes maps kernel value objects onto gorm column types.
package sqltypes

import (
	"time"

	"catering/internal/core/domain/model/kernel"

	"gorm.io/datatypes"
)

func FromDate(d kernel.Date) datatypes.Date {
	return datatypes.Date(d.Time())
}

func ToDate(d datatypes.Date) kernel.Date {
	return kernel.DateOf(time.Time(d))
}

func FromTimeOfDay(t kernel.TimeOfDay) datatypes.Time {
	return datatypes.NewTime(t.Hour(), t.Minute(), t.Second(), 0)
}

func ToTimeOfDay(t datatypes.Time) (kernel.TimeOfDay, error) {
	return kernel.TimeOfDayFromSeconds(int(time.Duration(t) / time.Second))
}

// FromOptionalTimeOfDay maps nil to a NULL column.
func FromOptionalTimeOfDay(t *kernel.TimeOfDay) *datatypes.Time {
	if t == nil {
		return nil
	}
	v := FromTimeOfDay(*t)
	return &v
}

func ToOptionalTimeOfDay(t *datatypes.Time) (*kernel.TimeOfDay, error) {
	if t == nil {
		return nil, nil
	}
	v, err := ToTimeOfDay(*t)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
