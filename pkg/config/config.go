package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the externally tunable parameters. Environment variables use
// the BIOSCRAPE_ prefix, e.g. BIOSCRAPE_WORKERS=8.
type Config struct {
	TimeoutSeconds int    `envconfig:"TIMEOUT_SECONDS" default:"25"`
	Workers        int    `envconfig:"WORKERS" default:"4"`
	Port           string `envconfig:"PORT" default:"8080"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("bioscrape", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns defaults.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		TimeoutSeconds: 25,
		Workers:        4,
		Port:           "8080",
		LogLevel:       "info",
	}
}

// Timeout returns the request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
