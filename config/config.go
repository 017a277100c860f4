// Package config loads server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port           int           `env:"PORT" envDefault:"8080"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty      bool          `env:"LOG_PRETTY" envDefault:"true"`
	RedisAddr      string        `env:"REDIS_ADDR"` // empty uses the in-memory cache
	CacheTTL       time.Duration `env:"CACHE_TTL" envDefault:"10m"`
	RateLimit      int           `env:"RATE_LIMIT" envDefault:"60"` // requests per window per client, 0 disables
	RateWindow     time.Duration `env:"RATE_WINDOW" envDefault:"1m"`
	MaxYears       int           `env:"MAX_YEARS" envDefault:"1000"` // 0 disables
	AllowedOrigins []string      `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	TrustProxy     bool          `env:"TRUST_PROXY" envDefault:"false"` // client address from forwarding headers
}

// Load reads configuration from a .env file, when present, and environment
// variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks configuration bounds.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", c.Port)
	}
	if c.RateLimit < 0 {
		return errors.New("RATE_LIMIT must not be negative")
	}
	if c.RateLimit > 0 && c.RateWindow <= 0 {
		return errors.New("RATE_WINDOW must be positive when rate limiting is enabled")
	}
	if c.MaxYears < 0 {
		return errors.New("MAX_YEARS must not be negative")
	}
	if c.CacheTTL < 0 {
		return errors.New("CACHE_TTL must not be negative")
	}
	return nil
}
