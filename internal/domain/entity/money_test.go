package entity

import (
	"testing"

	errs "github.com/eaglebank/eagle-bank/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected int64
		}{
			{"10", 1000},
			{"10.1", 1010},
			{"10.15", 1015},
			{"0", 0},
			{"0.05", 5},
			{"1000.00", 100000},
			{" 25.50 ", 2550},
			{"7.", 700},
		}

		for _, tc := range testCases {
			cents, err := ParseAmount(tc.input)
			require.NoError(t, err, "input %q", tc.input)
			assert.Equal(t, tc.expected, cents, "input %q", tc.input)
		}
	})

	t.Run("Negative amount", func(t *testing.T) {
		_, err := ParseAmount("-10.00")
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})

	t.Run("Too many decimal places", func(t *testing.T) {
		_, err := ParseAmount("10.155")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Non-numeric input", func(t *testing.T) {
		for _, input := range []string{"abc", "10.a", "1.2.3", ""} {
			_, err := ParseAmount(input)
			assert.ErrorIs(t, err, errs.ErrInvalidAmount, "input %q", input)
		}
	})
}

func TestParsePositiveAmount(t *testing.T) {
	t.Run("Positive amount passes", func(t *testing.T) {
		cents, err := ParsePositiveAmount("0.01")
		require.NoError(t, err)
		assert.Equal(t, int64(1), cents)
	})

	t.Run("Zero is rejected", func(t *testing.T) {
		_, err := ParsePositiveAmount("0.00")
		assert.ErrorIs(t, err, errs.ErrZeroAmount)
	})

	t.Run("Negative is rejected", func(t *testing.T) {
		_, err := ParsePositiveAmount("-5")
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})
}

func TestCentsToString(t *testing.T) {
	testCases := []struct {
		cents    int64
		expected string
	}{
		{1015, "10.15"},
		{1000, "10.00"},
		{5, "0.05"},
		{0, "0.00"},
		{100000, "1000.00"},
		{-1050, "-10.50"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, CentsToString(tc.cents), "cents %d", tc.cents)
	}
}

func TestAmountRoundTrip(t *testing.T) {
	// "10.10" must survive the trip exactly; this is the canonical float trap
	cents, err := ParseAmount("10.10")
	require.NoError(t, err)
	assert.Equal(t, int64(1010), cents)
	assert.Equal(t, "10.10", CentsToString(cents))
}
