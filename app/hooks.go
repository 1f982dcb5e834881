package app

import (
	"context"

	"go.uber.org/fx"
)

func (a *Application) registerHooks(lc fx.Lifecycle) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			a.logger.Debug("starting application")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			a.logger.Debug("stopping application")
			return nil
		},
	})
}
