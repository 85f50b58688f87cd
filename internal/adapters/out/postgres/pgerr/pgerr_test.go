package pgerr_test

import (
	"errors"
	"fmt"
	"testing"

	"catering/internal/adapters/out/postgres/pgerr"
	"catering/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	messages := map[string]string{"idx_deliveries_order_id": "order already has a delivery"}

	t.Run("unique violation with a known constraint", func(t *testing.T) {
		err := pgerr.Map(&pgconn.PgError{Code: pgerr.UniqueViolation, ConstraintName: "idx_deliveries_order_id"}, messages)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Contains(t, err.Error(), "order already has a delivery")
	})

	t.Run("wrapped foreign key violation", func(t *testing.T) {
		cause := &pgconn.PgError{Code: pgerr.ForeignKeyViolation, TableName: "payments", ConstraintName: "fk_payments_order"}
		err := pgerr.Map(fmt.Errorf("delete: %w", cause), nil)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Contains(t, err.Error(), "payments violates fk_payments_order")
	})

	t.Run("check violation is invalid input", func(t *testing.T) {
		err := pgerr.Map(&pgconn.PgError{Code: pgerr.CheckViolation, ConstraintName: "chk_payments_amount"}, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		plain := errors.New("connection reset")
		assert.Equal(t, plain, pgerr.Map(plain, messages))

		serialization := &pgconn.PgError{Code: "40001"}
		assert.Equal(t, serialization, pgerr.Map(serialization, messages))
	})
}
