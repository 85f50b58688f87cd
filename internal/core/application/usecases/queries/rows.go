package queries

import (
	"context"
	"fmt"
	"strings"

	"catering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// filter collects optional WHERE conditions for a raw query.
type filter struct {
	conditions []string
	args       []any
}

func (f *filter) add(condition string, args ...any) {
	f.conditions = append(f.conditions, condition)
	f.args = append(f.args, args...)
}

func (f *filter) where() string {
	if len(f.conditions) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(f.conditions, " AND ")
}

func toUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toTimeOfDay(seconds int) (kernel.TimeOfDay, error) {
	return kernel.TimeOfDayFromSeconds(seconds)
}

// collect runs sql and scans every row with scan.
func collect[T any](
	ctx context.Context,
	db *gorm.DB,
	scan func(rowScanner) (T, error),
	sql string,
	args ...any,
) ([]T, error) {
	rows, err := db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		v, scanErr := scan(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, v)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// countByColumn adds the per-value row counts of table.column to counts.
func countByColumn(ctx context.Context, db *gorm.DB, table, column string, counts map[string]int64) error {
	rows, err := db.WithContext(ctx).Raw(
		fmt.Sprintf("SELECT %s, COUNT(*) FROM %s GROUP BY %s", column, table, column),
	).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var n int64
		if err = rows.Scan(&name, &n); err != nil {
			return err
		}
		counts[name] = n
	}
	return rows.Err()
}

// exists reports whether a row with id is present in table.
func exists(ctx context.Context, db *gorm.DB, table string, id kernel.UUID) (bool, error) {
	var n int64
	err := db.WithContext(ctx).Raw(
		fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE id = ?", table), id.String(),
	).Row().Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
