package config

import "fmt"

type APIConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

func (cfg *APIConfig) Validate() error {
	if cfg.Host == "" {
		return fmt.Errorf("api host is required")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("api port must be between 1 and 65535")
	}
	return nil
}
