package testutil

import (
	sdkmath "cosmossdk.io/math"
	"github.com/brianvoe/gofakeit/v7"

	"github.com/evermarks/emark-staking-service/internal/types"
	"github.com/evermarks/emark-staking-service/pkg"
)

// RandomAccount returns a random 20-byte hex address.
func RandomAccount() string {
	return pkg.RandHex(40)
}

// RandomTxHash returns a random 32-byte hex transaction hash.
func RandomTxHash() string {
	return pkg.RandHex(64)
}

// RandomAmount returns a random whole-EMARK amount in base units within
// [minEmark, maxEmark].
func RandomAmount(minEmark, maxEmark int64) sdkmath.Int {
	whole := gofakeit.Number(int(minEmark), int(maxEmark))
	return types.AmountFromEmark(int64(whole))
}
