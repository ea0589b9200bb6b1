package validation

import (
	"fmt"
	"strings"

	sdkmath "cosmossdk.io/math"

	"github.com/evermarks/emark-staking-service/internal/types"
)

// Result is the outcome of validating a user-entered amount. Errors block
// submission, warnings do not.
type Result struct {
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func newResult() *Result {
	return &Result{
		IsValid:  true,
		Errors:   []string{},
		Warnings: []string{},
	}
}

func (r *Result) addError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.IsValid = false
}

func (r *Result) addWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// ValidateStake judges user-entered stake amount text against the liquid
// balance and the protocol bounds. A non-positive maxAmount means the
// protocol imposes no maximum. Pure and total: it never panics and the same
// inputs always produce the same result.
func ValidateStake(amountText string, liquidBalance, minAmount, maxAmount, dustThreshold sdkmath.Int) *Result {
	result := newResult()

	amount, ok := parseInto(result, amountText)
	if !ok {
		return result
	}

	if amount.LT(minAmount) {
		result.addError(fmt.Sprintf("Minimum stake is %s EMARK", types.FormatAmount(minAmount)))
	}
	if !maxAmount.IsNil() && maxAmount.IsPositive() && amount.GT(maxAmount) {
		result.addError(fmt.Sprintf("Maximum stake is %s EMARK", types.FormatAmount(maxAmount)))
	}
	if amount.GT(liquidBalance) {
		result.addError("Insufficient EMARK balance")
	}
	if !result.IsValid {
		return result
	}

	if amount.MulRaw(2).GT(liquidBalance) {
		result.addWarning("You are staking more than half your balance")
	}
	if dustThreshold.IsPositive() && amount.LT(dustThreshold) {
		result.addWarning("This amount will have minimal voting power impact")
	}

	return result
}

// ValidateUnstake judges user-entered unstake amount text against the staked
// balance. The cool-down warning is always present so the caller can render
// the mandatory waiting period next to the form.
func ValidateUnstake(amountText string, stakedBalance, minAmount sdkmath.Int, unbondingPeriod string) *Result {
	result := newResult()

	amount, ok := parseInto(result, amountText)
	if !ok {
		return result
	}

	if amount.GT(stakedBalance) {
		result.addError("Cannot unstake more than your staked amount")
	}
	if !result.IsValid {
		return result
	}

	remainder := stakedBalance.Sub(amount)
	if remainder.IsPositive() && remainder.LT(minAmount) {
		result.addWarning(fmt.Sprintf(
			"Remaining stake would fall below the %s EMARK minimum, consider unstaking your full balance",
			types.FormatAmount(minAmount),
		))
	}
	result.addWarning(fmt.Sprintf("Unstaked tokens are locked for %s before they can be claimed", unbondingPeriod))

	return result
}

// parseInto parses amount text and records the appropriate error on failure.
// The bool reports whether a usable positive amount was produced.
func parseInto(result *Result, amountText string) (sdkmath.Int, bool) {
	if strings.TrimSpace(amountText) == "" {
		result.addError("Amount is required")
		return sdkmath.Int{}, false
	}

	if !validCharset(amountText) {
		result.addError("Invalid number format")
		return sdkmath.Int{}, false
	}

	amount, err := types.ParseAmount(amountText)
	if err != nil {
		result.addError("Amount must be a positive number")
		return sdkmath.Int{}, false
	}
	if !amount.IsPositive() {
		result.addError("Amount must be a positive number")
		return sdkmath.Int{}, false
	}

	return amount, true
}

func validCharset(text string) bool {
	for _, r := range strings.TrimSpace(text) {
		if !strings.ContainsRune("0123456789.,", r) {
			return false
		}
	}
	return true
}
