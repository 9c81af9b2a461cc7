package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Prefix is the environment variable prefix, e.g. MINTELLI_BASE_URL.
const Prefix = "MINTELLI"

// Config holds client configuration.
// Environment variables are automatically parsed from the MINTELLI_ prefix.
type Config struct {
	BaseURL     string        `envconfig:"BASE_URL" default:"http://localhost:8000" validate:"required,url"`
	Timeout     time.Duration `envconfig:"TIMEOUT" default:"10s" validate:"gt=0"`
	Retries     int           `envconfig:"RETRIES" default:"3" validate:"gte=0,lte=10"`
	BackoffBase time.Duration `envconfig:"BACKOFF_BASE" default:"1s" validate:"gt=0"`

	// DevMode answers with canned data when the backend is unreachable.
	DevMode bool `envconfig:"DEV_MODE" default:"false"`

	// TokenStoreURL is an afs URL (file://, mem://); empty selects the user config dir.
	TokenStoreURL string `envconfig:"TOKEN_STORE_URL" default:""`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Debug    bool   `envconfig:"DEBUG" default:"false"`
}

var validate = validator.New()

// New creates a new Config by parsing environment variables.
// Example: MINTELLI_BASE_URL, MINTELLI_RETRIES
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("base_url", cfg.BaseURL).
		Dur("timeout", cfg.Timeout).
		Int("retries", cfg.Retries).
		Dur("backoff_base", cfg.BackoffBase).
		Bool("dev_mode", cfg.DevMode).
		Str("token_store_url", cfg.TokenStoreURL).
		Str("log_level", cfg.LogLevel).
		Msg("Configuration loaded")

	return &cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Default returns the configuration used when no environment is set.
func Default() *Config {
	return &Config{
		BaseURL:     "http://localhost:8000",
		Timeout:     10 * time.Second,
		Retries:     3,
		BackoffBase: time.Second,
		LogLevel:    "info",
	}
}
