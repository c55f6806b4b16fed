//go:build unit

package cancellation_test

import (
	"testing"
	"time"

	"booking-core/internal/domain/cancellation"
	"booking-core/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicy_Fee(t *testing.T) {
	policy := cancellation.DefaultPolicy()
	start := time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)
	total, err := pricing.NewMoney(450000)
	require.NoError(t, err)

	tests := []struct {
		name        string
		hoursBefore float64
		want        int64
	}{
		{"72 hours before is free", 72, 0},
		{"exactly 48 hours before is free", 48, 0},
		{"just inside 48 hours charges half", 47.99, 225000},
		{"10 hours before charges half", 10, 225000},
		{"1 hour before charges half", 1, 225000},
		{"at scheduled start charges half", 0, 225000},
		{"after scheduled start charges full total", -0.5, 450000},
		{"a day late charges full total", -24, 450000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cancelledAt := start.Add(-time.Duration(tt.hoursBefore * float64(time.Hour)))
			got := policy.Fee(total, start, cancelledAt)
			assert.Equal(t, tt.want, got.Cents())
		})
	}
}

func TestPolicy_FeeNeverExceedsTotal(t *testing.T) {
	policy := cancellation.DefaultPolicy()
	start := time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)
	for _, cents := range []int64{0, 1, 3, 99, 101, 450000} {
		total, err := pricing.NewMoney(cents)
		require.NoError(t, err)
		for h := -72; h <= 72; h += 6 {
			fee := policy.Fee(total, start, start.Add(time.Duration(h)*time.Hour))
			assert.LessOrEqual(t, fee.Cents(), total.Cents())
			assert.GreaterOrEqual(t, fee.Cents(), int64(0))
		}
	}
}

func TestNewPolicy(t *testing.T) {
	t.Run("custom thresholds", func(t *testing.T) {
		policy, err := cancellation.NewPolicy(24*time.Hour, 25, 50)
		require.NoError(t, err)

		start := time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)
		total, _ := pricing.NewMoney(10000)
		assert.True(t, policy.Fee(total, start, start.Add(-30*time.Hour)).IsZero())
		assert.Equal(t, int64(2500), policy.Fee(total, start, start.Add(-time.Hour)).Cents())
		assert.Equal(t, int64(5000), policy.Fee(total, start, start.Add(time.Hour)).Cents())
	})

	t.Run("rejects percentages outside 0..100", func(t *testing.T) {
		_, err := cancellation.NewPolicy(48*time.Hour, 150, 100)
		require.ErrorIs(t, err, cancellation.ErrInvalidPolicy)

		_, err = cancellation.NewPolicy(48*time.Hour, 50, -1)
		require.ErrorIs(t, err, cancellation.ErrInvalidPolicy)
	})
}
