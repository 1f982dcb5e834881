package app

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"hc-bulk/internal/commands"
	"hc-bulk/internal/common"
	"hc-bulk/internal/config"
	"hc-bulk/internal/executor"
	"hc-bulk/internal/hcapi"
	"hc-bulk/internal/report"
)

// Application wraps the fx graph for a single CLI run: build everything,
// run the invoked command once, tear down.
type Application struct {
	app    *fx.App
	runner *commands.Runner
	logger *zap.Logger
}

func NewApplication(opts ...common.Option) *Application {
	options := &common.ServiceOptions{}
	for _, opt := range opts {
		opt(options)
	}

	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}

	app := &Application{
		logger: options.Logger,
	}

	app.app = fx.New(
		// Core modules
		config.Module,
		hcapi.Module,
		executor.Module,
		report.Module,
		commands.Module,

		// Provide base dependencies
		fx.Provide(
			func() *zap.Logger { return options.Logger },
			func() *commands.Invocation { return options.Invocation },
			func(inv *commands.Invocation) config.Overrides {
				return config.Overrides{APIKey: inv.APIKey, APIURL: inv.APIURL}
			},
		),

		// Configure fx
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			l := &fxevent.ZapLogger{Logger: logger}
			l.UseLogLevel(zapcore.DebugLevel)
			return l
		}),

		// Set timeouts
		fx.StartTimeout(30*time.Second),
		fx.StopTimeout(30*time.Second),

		// Register lifecycle hooks and extract the runner
		fx.Invoke(app.registerHooks),
		fx.Populate(&app.runner),
	)

	return app
}

// Run starts the graph, executes the invoked command, and stops the graph.
// The command error wins over a shutdown error.
func (a *Application) Run(ctx context.Context) error {
	if err := a.app.Start(ctx); err != nil {
		return err
	}

	runErr := a.runner.Run(ctx)

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := a.app.Stop(stopCtx); err != nil {
		a.logger.Error("failed to stop application cleanly", zap.Error(err))
		if runErr == nil {
			return err
		}
	}

	return runErr
}
