package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	Port         int    `envconfig:"PORT" default:"8080"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
	Version      string `envconfig:"VERSION" default:"dev"`
	LatencyMinMS int    `envconfig:"LATENCY_MIN_MS" default:"200"`
	LatencyMaxMS int    `envconfig:"LATENCY_MAX_MS" default:"500"`
	SeedFile     string `envconfig:"SEED_FILE" default:""`
}

// Load reads configuration from environment variables into a Config struct.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.LatencyMinMS < 0 || cfg.LatencyMaxMS < cfg.LatencyMinMS {
		return nil, fmt.Errorf("invalid latency range: min=%d max=%d", cfg.LatencyMinMS, cfg.LatencyMaxMS)
	}
	return &cfg, nil
}
