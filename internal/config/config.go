// Package config loads runtime configuration from the environment
package config

import (
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-story/internal/errors"
)

// Config holds the runtime settings of the CLI
type Config struct {
	// RedisAddr selects the Redis stores; empty keeps everything in memory
	RedisAddr     string `env:"RPG_REDIS_ADDR"`
	RedisPassword string `env:"RPG_REDIS_PASSWORD"`
	RedisDB       int    `env:"RPG_REDIS_DB" envDefault:"0"`

	// ContentFile replaces the embedded bundle when set (.yaml, .yml or .json)
	ContentFile string `env:"RPG_CONTENT_FILE"`
	BundleID    string `env:"RPG_BUNDLE_ID" envDefault:"default"`

	LogLevel    string `env:"RPG_LOG_LEVEL" envDefault:"info"`
	DefaultShop string `env:"RPG_DEFAULT_SHOP" envDefault:"town_general"`
}

// Load parses the environment into a Config and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings are usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("RPG_BUNDLE_ID", c.BundleID, vb)
	errors.ValidateRequired("RPG_DEFAULT_SHOP", c.DefaultShop, vb)
	if c.RedisDB < 0 {
		vb.Field("RPG_REDIS_DB", "cannot be negative")
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		vb.InvalidField("RPG_LOG_LEVEL", c.LogLevel)
	}

	return vb.Build()
}

// UseRedis reports whether the Redis stores are configured
func (c *Config) UseRedis() bool {
	return c.RedisAddr != ""
}

// ParseLogLevel maps debug, info, warn and error to slog levels
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, errors.InvalidArgumentf("unknown log level %q", level)
}
