package report

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module exports the reporter module
var Module = fx.Options(
	fx.Provide(func(logger *zap.Logger) *Reporter {
		return New(logger)
	}),
)
