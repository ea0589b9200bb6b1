package config

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

type ChainConfig struct {
	// RPCAddr is the JSON-RPC endpoint of the EVM node, including protocol prefix.
	RPCAddr                  string        `mapstructure:"rpc-addr"`
	EmarkTokenAddress        string        `mapstructure:"emark-token-address"`
	StakingContractAddress   string        `mapstructure:"staking-contract-address"`
	VotingContractAddress    string        `mapstructure:"voting-contract-address"`
	WalletPrivateKey         string        `mapstructure:"wallet-private-key"`
	Timeout                  time.Duration `mapstructure:"timeout"`
	MaxRetryTimes            uint          `mapstructure:"max-retry-times"`
	RetryInterval            time.Duration `mapstructure:"retry-interval"`
	ConfirmationPollInterval time.Duration `mapstructure:"confirmation-poll-interval"`
	ConfirmationTimeout      time.Duration `mapstructure:"confirmation-timeout"`
}

func (cfg *ChainConfig) Validate() error {
	if cfg.RPCAddr == "" {
		return fmt.Errorf("chain rpc-addr is required")
	}
	if !common.IsHexAddress(cfg.EmarkTokenAddress) {
		return fmt.Errorf("emark-token-address is not a valid hex address")
	}
	if !common.IsHexAddress(cfg.StakingContractAddress) {
		return fmt.Errorf("staking-contract-address is not a valid hex address")
	}
	if !common.IsHexAddress(cfg.VotingContractAddress) {
		return fmt.Errorf("voting-contract-address is not a valid hex address")
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("chain timeout must be positive")
	}
	if cfg.MaxRetryTimes == 0 {
		return fmt.Errorf("chain max-retry-times must be positive")
	}
	if cfg.RetryInterval <= 0 {
		return fmt.Errorf("chain retry-interval must be positive")
	}
	if cfg.ConfirmationPollInterval <= 0 {
		return fmt.Errorf("chain confirmation-poll-interval must be positive")
	}
	if cfg.ConfirmationTimeout <= cfg.ConfirmationPollInterval {
		return fmt.Errorf("chain confirmation-timeout must exceed the poll interval")
	}
	return nil
}
