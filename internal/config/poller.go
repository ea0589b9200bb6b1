package config

import (
	"errors"
	"time"
)

type PollerConfig struct {
	ParamPollingInterval          time.Duration `mapstructure:"param-polling-interval"`
	ReleaseCheckerPollingInterval time.Duration `mapstructure:"release-checker-polling-interval"`
	SnapshotPollingInterval       time.Duration `mapstructure:"snapshot-polling-interval"`
	MaturedRequestsLimit          uint64        `mapstructure:"matured-requests-limit"`
	SnapshotConcurrency           int           `mapstructure:"snapshot-concurrency"`
}

func (cfg *PollerConfig) Validate() error {
	if cfg.ParamPollingInterval <= 0 {
		return errors.New("param-polling-interval must be positive")
	}

	if cfg.ReleaseCheckerPollingInterval <= 0 {
		return errors.New("release-checker-polling-interval must be positive")
	}

	if cfg.SnapshotPollingInterval <= 0 {
		return errors.New("snapshot-polling-interval must be positive")
	}

	if cfg.MaturedRequestsLimit <= 0 {
		return errors.New("matured-requests-limit must be positive")
	}

	if cfg.SnapshotConcurrency <= 0 {
		return errors.New("snapshot-concurrency must be positive")
	}

	return nil
}
