package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"hc-bulk/internal/domain"
)

const (
	// DefaultAPIURL is the hosted Healthchecks.io management API base.
	// Self-hosted deployments override it via HC_API_URL or --api-url.
	DefaultAPIURL = "https://healthchecks.io/api"

	DefaultRequestTimeout = 15 * time.Second
	DefaultMaxRetries     = 5
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Config carries everything needed to talk to the management API. It is
// assembled from the environment (optionally seeded from a .env file) with
// CLI flags taking precedence.
type Config struct {
	APIKey         string        `mapstructure:"api_key" validate:"required"`
	APIURL         string        `mapstructure:"api_url" validate:"required,url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"gt=0"`
	MaxRetries     int           `mapstructure:"max_retries" validate:"gte=0,lte=10"`
}

// Option overrides a config field after environment loading.
type Option func(*Config)

// WithAPIKey overrides the API key when non-empty.
func WithAPIKey(key string) Option {
	return func(c *Config) {
		if key != "" {
			c.APIKey = key
		}
	}
}

// WithAPIURL overrides the API base URL when non-empty.
func WithAPIURL(url string) Option {
	return func(c *Config) {
		if url != "" {
			c.APIURL = url
		}
	}
}

// New creates a Config from the environment. A .env file in the working
// directory is loaded first if present, mirroring the local-operator
// workflow this tool is built for.
func New(opts ...Option) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("api_url", DefaultAPIURL)
	v.SetDefault("request_timeout", DefaultRequestTimeout)
	v.SetDefault("max_retries", DefaultMaxRetries)

	// HEALTHCHECKS_API_KEY is accepted as a fallback for compatibility with
	// other tooling around the same API.
	if err := v.BindEnv("api_key", "HC_API_KEY", "HEALTHCHECKS_API_KEY"); err != nil {
		return nil, fmt.Errorf("error binding environment: %w", err)
	}
	if err := v.BindEnv("api_url", "HC_API_URL"); err != nil {
		return nil, fmt.Errorf("error binding environment: %w", err)
	}
	if err := v.BindEnv("request_timeout", "HC_REQUEST_TIMEOUT"); err != nil {
		return nil, fmt.Errorf("error binding environment: %w", err)
	}
	if err := v.BindEnv("max_retries", "HC_MAX_RETRIES"); err != nil {
		return nil, fmt.Errorf("error binding environment: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing environment config: %w", err)
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	cfg.APIURL = strings.TrimSuffix(cfg.APIURL, "/")

	if cfg.APIKey == "" {
		return nil, domain.ConfigErrorf("missing API key: set HC_API_KEY or pass --api-key")
	}

	if err := validate.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return nil, domain.WrapConfigError("invalid configuration", formatValidationErrors(validationErrors))
		}
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// formatValidationErrors formats validation errors into a user-friendly error message
func formatValidationErrors(errs validator.ValidationErrors) error {
	var errMsgs []string
	for _, err := range errs {
		errMsgs = append(errMsgs, fmt.Sprintf(
			"field '%s' failed validation: %s",
			err.Field(),
			err.Tag(),
		))
	}
	return fmt.Errorf("validation errors: %v", errMsgs)
}
