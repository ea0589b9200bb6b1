package config

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

type Config struct {
	Chain   ChainConfig   `mapstructure:"chain"`
	Db      DbConfig      `mapstructure:"db"`
	Queue   QueueConfig   `mapstructure:"queue"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Poller  PollerConfig  `mapstructure:"poller"`
	Staking StakingConfig `mapstructure:"staking"`
	API     APIConfig     `mapstructure:"api"`
}

func (cfg *Config) Validate() error {
	if err := cfg.Chain.Validate(); err != nil {
		return err
	}
	if err := cfg.Db.Validate(); err != nil {
		return err
	}
	if err := cfg.Queue.Validate(); err != nil {
		return err
	}
	if err := cfg.Metrics.Validate(); err != nil {
		return err
	}
	if err := cfg.Poller.Validate(); err != nil {
		return err
	}
	if err := cfg.Staking.Validate(); err != nil {
		return err
	}
	return cfg.API.Validate()
}

// New returns a fully parsed Config object from the given file path
func New(cfgFile string) (*Config, error) {
	viper.SetConfigFile(cfgFile)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	)); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file %s: %w", cfgFile, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
