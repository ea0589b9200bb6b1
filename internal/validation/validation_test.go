package validation

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evermarks/emark-staking-service/internal/types"
)

var (
	minStake      = types.AmountFromEmark(10)
	maxStake      = types.AmountFromEmark(100_000)
	dustThreshold = types.AmountFromEmark(10)
	noDust        = sdkmath.ZeroInt()
)

func TestValidateStake(t *testing.T) {
	liquid := types.AmountFromEmark(1000)

	t.Run("valid amount", func(t *testing.T) {
		result := ValidateStake("100", liquid, minStake, maxStake, noDust)
		assert.True(t, result.IsValid)
		assert.Empty(t, result.Errors)
		assert.Empty(t, result.Warnings)
	})

	t.Run("errors", func(t *testing.T) {
		cases := []struct {
			name     string
			amount   string
			expected string
		}{
			{"empty", "", "Amount is required"},
			{"whitespace only", "   ", "Amount is required"},
			{"garbage", "12abc", "Invalid number format"},
			{"zero", "0", "Amount must be a positive number"},
			{"below minimum", "5", "Minimum stake is 10 EMARK"},
			{"above maximum", "200000", "Maximum stake is 100000 EMARK"},
			{"exceeds balance", "2000", "Insufficient EMARK balance"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				result := ValidateStake(tc.amount, liquid, minStake, maxStake, noDust)
				assert.False(t, result.IsValid)
				assert.Contains(t, result.Errors, tc.expected)
			})
		}
	})

	t.Run("no protocol maximum configured", func(t *testing.T) {
		result := ValidateStake("900", liquid, minStake, sdkmath.ZeroInt(), noDust)
		assert.True(t, result.IsValid)
		assert.Empty(t, result.Errors)
	})

	t.Run("half balance warning", func(t *testing.T) {
		result := ValidateStake("600", liquid, minStake, maxStake, noDust)
		require.True(t, result.IsValid)
		assert.Contains(t, result.Warnings, "You are staking more than half your balance")

		// exactly half does not warn
		result = ValidateStake("500", liquid, minStake, maxStake, noDust)
		require.True(t, result.IsValid)
		assert.Empty(t, result.Warnings)
	})

	t.Run("dust warning", func(t *testing.T) {
		bigMin := types.AmountFromEmark(1)
		result := ValidateStake("5", liquid, bigMin, maxStake, dustThreshold)
		require.True(t, result.IsValid)
		assert.Contains(t, result.Warnings, "This amount will have minimal voting power impact")
	})

	t.Run("warnings never set on invalid input", func(t *testing.T) {
		result := ValidateStake("2000", liquid, minStake, maxStake, dustThreshold)
		assert.False(t, result.IsValid)
		assert.Empty(t, result.Warnings)
	})
}

func TestValidateUnstake(t *testing.T) {
	staked := types.AmountFromEmark(500)
	const period = "7 days"

	t.Run("valid amount carries cool-down warning", func(t *testing.T) {
		result := ValidateUnstake("100", staked, minStake, period)
		assert.True(t, result.IsValid)
		assert.Empty(t, result.Errors)
		assert.Contains(t, result.Warnings, "Unstaked tokens are locked for 7 days before they can be claimed")
	})

	t.Run("exceeds staked balance", func(t *testing.T) {
		result := ValidateUnstake("600", staked, minStake, period)
		assert.False(t, result.IsValid)
		assert.Contains(t, result.Errors, "Cannot unstake more than your staked amount")
		assert.Empty(t, result.Warnings)
	})

	t.Run("full unstake allowed", func(t *testing.T) {
		result := ValidateUnstake("500", staked, minStake, period)
		assert.True(t, result.IsValid)
	})

	t.Run("remainder below minimum warns", func(t *testing.T) {
		result := ValidateUnstake("495", staked, minStake, period)
		require.True(t, result.IsValid)
		assert.Contains(t, result.Warnings,
			"Remaining stake would fall below the 10 EMARK minimum, consider unstaking your full balance")
	})

	t.Run("malformed amount", func(t *testing.T) {
		result := ValidateUnstake("1.2.3", staked, minStake, period)
		assert.False(t, result.IsValid)
	})
}
