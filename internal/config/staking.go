package config

import (
	"fmt"

	sdkmath "cosmossdk.io/math"

	"github.com/evermarks/emark-staking-service/internal/types"
)

// StakingConfig carries validation thresholds that are policy of this
// service rather than protocol parameters. Protocol minimums and the
// unbonding period come from the staking contract at runtime.
type StakingConfig struct {
	// DustThresholdEmark is the whole-EMARK amount below which a stake gets
	// the minimal-voting-power-impact warning.
	DustThresholdEmark int64 `mapstructure:"dust-threshold-emark"`
}

func (cfg *StakingConfig) Validate() error {
	if cfg.DustThresholdEmark < 0 {
		return fmt.Errorf("dust-threshold-emark must not be negative")
	}
	return nil
}

func (cfg *StakingConfig) DustThreshold() sdkmath.Int {
	return types.AmountFromEmark(cfg.DustThresholdEmark)
}
