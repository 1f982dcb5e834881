package hcapi

import (
	"go.uber.org/fx"

	"hc-bulk/internal/interfaces"
)

// Module exports the API client module
var Module = fx.Options(
	fx.Provide(New),
	fx.Provide(func(c *Client) interfaces.CheckClient { return c }),
)
