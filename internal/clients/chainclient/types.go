package chainclient

import (
	"time"

	sdkmath "cosmossdk.io/math"
)

// TokenBalances is the per-account read set the staking flow caches between
// refreshes. All amounts are fixed-point integers at 18 decimals.
type TokenBalances struct {
	Liquid    sdkmath.Int
	Staked    sdkmath.Int
	Allowance sdkmath.Int
}

// UnbondingInfo mirrors the staking contract's unbonding record. A zero
// Amount means no request is outstanding.
type UnbondingInfo struct {
	Amount      sdkmath.Int
	ReleaseTime time.Time
	CanClaim    bool
}

func (u *UnbondingInfo) HasRequest() bool {
	return u != nil && !u.Amount.IsNil() && u.Amount.IsPositive()
}

// ProtocolParams are read-only once loaded for a session.
type ProtocolParams struct {
	UnbondingPeriodSeconds int64
	MinStakeAmount         sdkmath.Int
	MaxStakeAmount         sdkmath.Int
}

// Enum values for transaction status
type TxStatus string

const (
	TxPending   TxStatus = "PENDING"
	TxConfirmed TxStatus = "CONFIRMED"
	TxFailed    TxStatus = "FAILED"
)

func (s TxStatus) String() string {
	return string(s)
}
