package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

// Config is everything the relay reads from its environment.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port int `env:"PORT" envDefault:"10000"`
}

func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("parse config: PORT %d out of range", cfg.Port)
	}
	return cfg, nil
}

// Address is the listen address for all interfaces.
func (c *Config) Address() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}
