package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hc-bulk/internal/domain"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HC_API_KEY", "")
	t.Setenv("HEALTHCHECKS_API_KEY", "")
	t.Setenv("HC_API_URL", "")
	t.Setenv("HC_REQUEST_TIMEOUT", "")
	t.Setenv("HC_MAX_RETRIES", "")
}

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		opts        []Option
		expectError bool
		validate    func(*testing.T, *Config)
	}{
		{
			name:    "Key from environment with defaults",
			envVars: map[string]string{"HC_API_KEY": "secret"},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "secret", cfg.APIKey)
				assert.Equal(t, DefaultAPIURL, cfg.APIURL)
				assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
				assert.Equal(t, DefaultMaxRetries, cfg.MaxRetries)
			},
		},
		{
			name:    "Legacy HEALTHCHECKS_API_KEY fallback",
			envVars: map[string]string{"HEALTHCHECKS_API_KEY": "legacy"},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "legacy", cfg.APIKey)
			},
		},
		{
			name: "Self-hosted URL with trailing slash",
			envVars: map[string]string{
				"HC_API_KEY": "secret",
				"HC_API_URL": "https://hc.internal.example.com/api/",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "https://hc.internal.example.com/api", cfg.APIURL)
			},
		},
		{
			name: "Timeout and retries from environment",
			envVars: map[string]string{
				"HC_API_KEY":         "secret",
				"HC_REQUEST_TIMEOUT": "5s",
				"HC_MAX_RETRIES":     "2",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
				assert.Equal(t, 2, cfg.MaxRetries)
			},
		},
		{
			name:    "Flag overrides beat environment",
			envVars: map[string]string{"HC_API_KEY": "from-env", "HC_API_URL": "https://env.example.com"},
			opts:    []Option{WithAPIKey("from-flag"), WithAPIURL("https://flag.example.com")},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "from-flag", cfg.APIKey)
				assert.Equal(t, "https://flag.example.com", cfg.APIURL)
			},
		},
		{
			name:    "Empty override keeps environment value",
			envVars: map[string]string{"HC_API_KEY": "from-env"},
			opts:    []Option{WithAPIKey("")},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "from-env", cfg.APIKey)
			},
		},
		{
			name:        "Missing API key is a configuration error",
			envVars:     map[string]string{},
			expectError: true,
		},
		{
			name: "Invalid URL is rejected",
			envVars: map[string]string{
				"HC_API_KEY": "secret",
				"HC_API_URL": "not a url",
			},
			expectError: true,
		},
		{
			name: "Excessive retry count is rejected",
			envVars: map[string]string{
				"HC_API_KEY":     "secret",
				"HC_MAX_RETRIES": "50",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := New(tt.opts...)
			if tt.expectError {
				require.Error(t, err)
				assert.True(t, domain.IsConfigurationError(err))
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}
