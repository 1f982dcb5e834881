package config

import (
	"go.uber.org/fx"
)

// Overrides carries CLI-level connection overrides into config loading.
type Overrides struct {
	APIKey string
	APIURL string
}

// Module exports the config module
var Module = fx.Options(
	fx.Provide(func(o Overrides) (*Config, error) {
		return New(WithAPIKey(o.APIKey), WithAPIURL(o.APIURL))
	}),
)
