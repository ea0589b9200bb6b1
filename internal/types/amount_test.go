package types

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		cases := []struct {
			input    string
			expected sdkmath.Int
		}{
			{"100", AmountFromEmark(100)},
			{"1,000", AmountFromEmark(1000)},
			{" 42 ", AmountFromEmark(42)},
			{"0.5", sdkmath.NewIntWithDecimal(5, 17)},
			{"1.5", sdkmath.NewIntWithDecimal(15, 17)},
			{"0", sdkmath.ZeroInt()},
		}
		for _, tc := range cases {
			amount, err := ParseAmount(tc.input)
			require.NoError(t, err, tc.input)
			assert.Equal(t, tc.expected, amount, tc.input)
		}
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		cases := []string{"", "   ", "abc", "10e5", "-5", "1 000", ".", ","}
		for _, input := range cases {
			_, err := ParseAmount(input)
			assert.Error(t, err, input)
		}
	})
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		amount   sdkmath.Int
		expected string
	}{
		{AmountFromEmark(100), "100"},
		{AmountFromEmark(0), "0"},
		{sdkmath.NewIntWithDecimal(15, 17), "1.5"},
		{sdkmath.NewIntWithDecimal(5, 17), "0.5"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, FormatAmount(tc.amount))
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, text := range []string{"100", "1.5", "0.25"} {
		amount, err := ParseAmount(text)
		require.NoError(t, err)
		assert.Equal(t, text, FormatAmount(amount))
	}
}
