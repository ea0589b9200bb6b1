package model

// ProtocolParamsDocument caches the staking contract's protocol parameters.
// Versioning follows the same pattern as the other global params even though
// the staking contract currently exposes a single live version.
type ProtocolParamsDocument struct {
	Type                   string `bson:"type"`
	Version                uint32 `bson:"version"`
	UnbondingPeriodSeconds int64  `bson:"unbonding_period_seconds"`
	MinStakeAmount         string `bson:"min_stake_amount"`
	MaxStakeAmount         string `bson:"max_stake_amount"`
}
