//go:build unit

package entry_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkhub/internal/domain/entry"
)

func TestComputeCharge(t *testing.T) {
	enteredAt := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		duration time.Duration
		rate     string
		expected string
	}{
		{
			name:     "whole hours",
			duration: 3 * time.Hour,
			rate:     "10.00",
			expected: "30.00",
		},
		{
			name:     "fractional hours",
			duration: 2*time.Hour + 30*time.Minute,
			rate:     "10.00",
			expected: "25.00",
		},
		{
			name:     "zero duration",
			duration: 0,
			rate:     "10.00",
			expected: "0.00",
		},
		{
			name:     "ten minutes rounds up",
			duration: 10 * time.Minute,
			rate:     "2.50",
			expected: "0.42",
		},
		{
			name:     "ninety minutes",
			duration: 90 * time.Minute,
			rate:     "2.50",
			expected: "3.75",
		},
		{
			name:     "half cent rounds away from zero",
			duration: 90 * time.Second,
			rate:     "1.00",
			expected: "0.03",
		},
		{
			name:     "free lot",
			duration: 5 * time.Hour,
			rate:     "0.00",
			expected: "0.00",
		},
		{
			name:     "overnight stay",
			duration: 30 * time.Hour,
			rate:     "1.75",
			expected: "52.50",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rate := decimal.RequireFromString(c.rate)

			charge, err := entry.ComputeCharge(enteredAt, enteredAt.Add(c.duration), rate)

			require.NoError(t, err)
			assert.Equal(t, c.expected, charge.StringFixed(2))
		})
	}

	t.Run("exit before entry", func(t *testing.T) {
		rate := decimal.RequireFromString("10.00")

		_, err := entry.ComputeCharge(enteredAt, enteredAt.Add(-time.Second), rate)

		assert.ErrorIs(t, err, entry.ErrExitBeforeEntry)
	})
}
