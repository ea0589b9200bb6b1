package votingpower

import (
	"context"

	sdkmath "cosmossdk.io/math"
	"github.com/rs/zerolog/log"
)

// Breakdown is the derived voting power snapshot. It is recomputed on demand
// and never cached across an amount-changing operation.
type Breakdown struct {
	Total           sdkmath.Int
	Reserved        sdkmath.Int
	Available       sdkmath.Int
	UtilizationRate sdkmath.LegacyDec
}

// PowerReader is the slice of the voting collaborator this package needs.
type PowerReader interface {
	GetVotesInCurrentCycle(ctx context.Context, account string) (sdkmath.Int, error)
	GetVotingPower(ctx context.Context, account string) (sdkmath.Int, error)
	GetRemainingVotingPower(ctx context.Context, account string) (sdkmath.Int, error)
}

// Compute derives available and reserved power from the totals. Reserved is
// clamped into [0, total]; utilization is a percentage and zero when total
// is zero.
func Compute(total, reserved sdkmath.Int) *Breakdown {
	if total.IsNil() {
		total = sdkmath.ZeroInt()
	}
	if reserved.IsNil() || reserved.IsNegative() {
		reserved = sdkmath.ZeroInt()
	}
	if reserved.GT(total) {
		reserved = total
	}

	available := total.Sub(reserved)

	utilization := sdkmath.LegacyZeroDec()
	if total.IsPositive() {
		utilization = sdkmath.LegacyNewDecFromInt(reserved).
			QuoInt(total).
			MulInt64(100)
	}

	return &Breakdown{
		Total:           total,
		Reserved:        reserved,
		Available:       available,
		UtilizationRate: utilization,
	}
}

// ResolveReserved obtains the reserved voting power for an account. The
// direct current-cycle query is preferred; when the deployment does not
// expose it the reserved amount is derived from total minus remaining. When
// both strategies fail it degrades to zero reserved, voting power display is
// advisory and must never block staking operations. The bool reports whether
// degradation happened.
func ResolveReserved(ctx context.Context, reader PowerReader, account string) (sdkmath.Int, bool) {
	reserved, directErr := reader.GetVotesInCurrentCycle(ctx, account)
	if directErr == nil {
		return reserved, false
	}

	log.Debug().
		Err(directErr).
		Str("account", account).
		Msg("direct reserved voting power query failed, trying fallback")

	total, totalErr := reader.GetVotingPower(ctx, account)
	remaining, remainingErr := reader.GetRemainingVotingPower(ctx, account)
	if totalErr == nil && remainingErr == nil {
		derived := total.Sub(remaining)
		if derived.IsNegative() {
			derived = sdkmath.ZeroInt()
		}
		return derived, false
	}

	log.Warn().
		AnErr("direct_err", directErr).
		AnErr("total_err", totalErr).
		AnErr("remaining_err", remainingErr).
		Str("account", account).
		Msg("all reserved voting power queries failed, degrading to zero reserved")

	return sdkmath.ZeroInt(), true
}
