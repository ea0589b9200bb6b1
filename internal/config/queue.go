package config

import "fmt"

type QueueConfig struct {
	URL       string `mapstructure:"url"`
	User      string `mapstructure:"user"`
	Password  string `mapstructure:"password"`
	QueueName string `mapstructure:"queue-name"`
}

func (cfg *QueueConfig) ConnectionString() string {
	return fmt.Sprintf("amqp://%s:%s@%s", cfg.User, cfg.Password, cfg.URL)
}

func (cfg *QueueConfig) Validate() error {
	if cfg.URL == "" {
		return fmt.Errorf("queue url is required")
	}
	if cfg.User == "" {
		return fmt.Errorf("queue user is required")
	}
	if cfg.Password == "" {
		return fmt.Errorf("queue password is required")
	}
	if cfg.QueueName == "" {
		return fmt.Errorf("queue name is required")
	}
	return nil
}
