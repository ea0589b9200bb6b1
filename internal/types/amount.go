package types

import (
	"fmt"
	"strings"

	sdkmath "cosmossdk.io/math"
)

// EmarkDecimals is the fixed-point precision of EMARK amounts. All balances
// and amounts cross the service boundary as integers at this scale.
const EmarkDecimals = 18

var oneEmark = sdkmath.NewIntWithDecimal(1, EmarkDecimals)

// ParseAmount converts user-entered amount text into a fixed-point integer.
// Thousands-separator commas and a single decimal point are accepted; any
// other character is rejected. Positivity is not enforced here, the validator
// distinguishes a zero parse from a malformed one.
func ParseAmount(text string) (sdkmath.Int, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return sdkmath.Int{}, fmt.Errorf("amount is empty")
	}

	for _, r := range trimmed {
		if (r < '0' || r > '9') && r != ',' && r != '.' {
			return sdkmath.Int{}, fmt.Errorf("invalid character %q in amount", r)
		}
	}

	normalized := strings.ReplaceAll(trimmed, ",", "")
	if normalized == "" || normalized == "." {
		return sdkmath.Int{}, fmt.Errorf("amount %q is not a number", text)
	}

	dec, err := sdkmath.LegacyNewDecFromStr(normalized)
	if err != nil {
		return sdkmath.Int{}, fmt.Errorf("failed to parse amount %q: %w", text, err)
	}

	return dec.MulInt(oneEmark).TruncateInt(), nil
}

// FormatAmount renders a fixed-point amount in human EMARK units with
// trailing fractional zeros trimmed.
func FormatAmount(amount sdkmath.Int) string {
	dec := sdkmath.LegacyNewDecFromBigIntWithPrec(amount.BigInt(), EmarkDecimals)
	s := dec.String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// AmountFromEmark returns the fixed-point representation of a whole EMARK
// amount. Used mostly by tests and defaults.
func AmountFromEmark(whole int64) sdkmath.Int {
	return sdkmath.NewInt(whole).Mul(oneEmark)
}
