// Package pgerr translates Postgres constraint violations into domain errors.
package pgerr

import (
	"errors"
	"fmt"

	"catering/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes of the integrity constraint violation class.
const (
	UniqueViolation     = "23505"
	ForeignKeyViolation = "23503"
	CheckViolation      = "23514"
)

// Map converts constraint violations into ConflictError (unique and foreign
// key) or ValueIsInvalidError (check). Any other error is returned as is.
// messages overrides the conflict message per constraint name.
func Map(err error, messages map[string]string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case UniqueViolation, ForeignKeyViolation:
		msg, ok := messages[pgErr.ConstraintName]
		if !ok {
			msg = fmt.Sprintf("%s violates %s", pgErr.TableName, pgErr.ConstraintName)
		}
		return errs.NewConflictErrorWithCause(msg, err)
	case CheckViolation:
		return errs.NewValueIsInvalidErrorWithCause(pgErr.ConstraintName, err)
	default:
		return err
	}
}
