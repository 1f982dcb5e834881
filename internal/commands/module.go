package commands

import (
	"go.uber.org/fx"
)

// Module exports the command runner module
var Module = fx.Options(
	fx.Provide(NewRunner),
)
