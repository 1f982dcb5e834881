package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"hc-bulk/internal/domain"
	"hc-bulk/internal/executor"
	"hc-bulk/internal/planner"
)

// runBulkUpdate selects checks, plans the changes, previews them, and applies
// the plan after confirmation. Partial completion is expected and accepted:
// nothing is rolled back when a later item fails.
func (r *Runner) runBulkUpdate(ctx context.Context) error {
	if err := r.inv.Updates.Validate(); err != nil {
		return err
	}

	selected, err := r.selectChecks(ctx)
	if err != nil {
		return err
	}

	if len(selected) == 0 {
		r.reporter.RenderChecks(selected)
		return nil
	}

	// Checks listed through a read-only API key carry no UUID and cannot be
	// targeted, so refuse before anything is mutated.
	for _, c := range selected {
		if c.ID == "" {
			return domain.ConfigErrorf("check %q has no UUID to update; a full-access API key is required", c.DisplayName())
		}
	}

	r.reporter.RenderChecks(selected)

	requests := planner.Plan(selected, r.inv.Updates)
	r.reporter.PlanSummary(requests, r.inv.DryRun)

	if !r.inv.AssumeYes && !r.inv.DryRun {
		ok, err := r.reporter.Confirm(fmt.Sprintf("Apply changes to %d check(s)?", len(requests)))
		if err != nil {
			return err
		}
		if !ok {
			r.logger.Info("aborted by operator")
			return nil
		}
	}

	progress := r.reporter.Progress(len(requests), r.inv.Progress && !r.inv.DryRun)
	results, execErr := r.executor.Execute(ctx, requests, executor.Options{
		DryRun:   r.inv.DryRun,
		OnResult: progress.Observe,
	})
	progress.Stop()

	r.reporter.Summary(results, r.inv.DryRun)

	if execErr != nil {
		return execErr
	}

	failed := 0
	for _, res := range results {
		if res.Failed() {
			failed++
		}
	}
	if failed > 0 {
		r.logger.Warn("batch finished with failures",
			zap.Int("failed", failed),
			zap.Int("total", len(results)))
		return fmt.Errorf("%w: %d of %d", ErrUpdatesFailed, failed, len(results))
	}

	return nil
}
