package executor

import (
	"go.uber.org/fx"
)

// Module exports the executor module
var Module = fx.Options(
	fx.Provide(New),
)
