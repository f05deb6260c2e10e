// Package config loads runtime settings from the environment, with an
// optional .env overlay for local development.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the API needs at startup. The signing settings are
// required: a process without them cannot issue or verify tokens, so absence
// is a fatal configuration error rather than a request-time one.
type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	SecretKey        string `env:"AUTH_SECRET_KEY,required"`
	Algorithm        string `env:"AUTH_ALGORITHM,required"`
	AccessTTLMinutes int    `env:"AUTH_ACCESS_TTL_MINUTES,required"`
	RefreshTTLDays   int    `env:"AUTH_REFRESH_TTL_DAYS,required"`
}

// Load reads the optional .env file and parses the environment into a Config.
// The .env file is best-effort: a missing file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config: parse environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.SecretKey) == "" {
		return errors.New("config: AUTH_SECRET_KEY must not be blank")
	}
	if c.AccessTTLMinutes <= 0 {
		return errors.New("config: AUTH_ACCESS_TTL_MINUTES must be positive")
	}
	if c.RefreshTTLDays <= 0 {
		return errors.New("config: AUTH_REFRESH_TTL_DAYS must be positive")
	}
	return nil
}

// AccessTTL returns the configured access-token lifetime.
func (c *Config) AccessTTL() time.Duration {
	return time.Duration(c.AccessTTLMinutes) * time.Minute
}

// RefreshTTL returns the configured refresh-token lifetime.
func (c *Config) RefreshTTL() time.Duration {
	return time.Duration(c.RefreshTTLDays) * 24 * time.Hour
}
