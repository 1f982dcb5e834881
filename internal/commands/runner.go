// Package commands implements the ls and bulk-update command runners on top
// of the filter → plan → execute pipeline.
package commands

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"hc-bulk/internal/domain"
	"hc-bulk/internal/executor"
	"hc-bulk/internal/filter"
	"hc-bulk/internal/interfaces"
	"hc-bulk/internal/report"
)

// ErrUpdatesFailed marks a run where at least one individual update was
// rejected. The batch still completed; the process exits non-zero.
var ErrUpdatesFailed = errors.New("one or more updates failed")

// Runner dispatches the parsed invocation to its command implementation.
type Runner struct {
	inv      *Invocation
	client   interfaces.CheckClient
	executor *executor.Executor
	reporter *report.Reporter
	logger   *zap.Logger
}

// Params collects the runner's collaborators from the fx graph.
type Params struct {
	fx.In

	Invocation *Invocation
	Client     interfaces.CheckClient
	Executor   *executor.Executor
	Reporter   *report.Reporter
	Logger     *zap.Logger
}

// NewRunner creates a Runner.
func NewRunner(p Params) *Runner {
	return &Runner{
		inv:      p.Invocation,
		client:   p.Client,
		executor: p.Executor,
		reporter: p.Reporter,
		logger:   p.Logger.With(zap.String("component", "commands")),
	}
}

// Run executes the invoked command.
func (r *Runner) Run(ctx context.Context) error {
	switch r.inv.Command {
	case CommandLS:
		return r.runLS(ctx)
	case CommandBulkUpdate:
		return r.runBulkUpdate(ctx)
	default:
		return fmt.Errorf("unknown command %q", r.inv.Command)
	}
}

// selectChecks compiles the filter first so configuration errors surface
// before the network is touched, then lists and filters.
func (r *Runner) selectChecks(ctx context.Context) ([]domain.Check, error) {
	f, err := filter.New(r.inv.Criteria)
	if err != nil {
		return nil, err
	}

	checks, err := r.client.ListChecks(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing checks: %w", err)
	}

	selected := f.Select(checks)
	r.logger.Debug("selection complete",
		zap.Int("total", len(checks)),
		zap.Int("matched", len(selected)),
		zap.String("criteria", r.inv.Criteria.String()))

	return selected, nil
}
