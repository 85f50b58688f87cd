package order_test

import (
	"fmt"
	"testing"

	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	t.Run("should parse every wire name", func(t *testing.T) {
		for _, status := range order.Statuses() {
			parsed, err := order.ParseStatus("status", status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should ignore case and surrounding blanks", func(t *testing.T) {
		parsed, err := order.ParseStatus("status", " in_preparation ")

		require.NoError(t, err)
		assert.Equal(t, order.InPreparation, parsed)
	})

	t.Run("should reject unknown names as invalid input", func(t *testing.T) {
		_, err := order.ParseStatus("status", "SHIPPED")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "SHIPPED")
	})
}

func TestStatus_Validate(t *testing.T) {
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(42).Validate())
	assert.Equal(t, "UNKNOWN", order.Status(42).String())
}

func TestStatus_TransitionTo(t *testing.T) {
	tests := []struct {
		from    order.Status
		to      order.Status
		allowed bool
	}{
		{order.Pending, order.Confirmed, true},
		{order.Confirmed, order.InPreparation, true},
		{order.InPreparation, order.Ready, true},
		{order.Ready, order.Delivered, true},
		{order.Confirmed, order.Delivered, true},
		{order.Ready, order.Pending, true},
		{order.Pending, order.Cancelled, true},
		{order.Ready, order.Cancelled, true},
		{order.Delivered, order.Delivered, true},
		{order.Delivered, order.Cancelled, false},
		{order.Delivered, order.Pending, false},
		{order.Cancelled, order.Pending, true},
		{order.Cancelled, order.Cancelled, false},
		{order.Cancelled, order.Confirmed, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s to %s", tt.from, tt.to), func(t *testing.T) {
			next, err := tt.from.TransitionTo(tt.to)

			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, tt.to, next)
				return
			}
			require.ErrorIs(t, err, errs.ErrConflict)
			assert.Equal(t, order.Unknown, next)
		})
	}

	t.Run("should report an undefined target as invalid input", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Unknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_IsRevenue(t *testing.T) {
	assert.True(t, order.Pending.IsRevenue())
	assert.True(t, order.Delivered.IsRevenue())
	assert.False(t, order.Cancelled.IsRevenue())
}
