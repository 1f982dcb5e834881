// Package executor applies planned changes against the remote service, one
// request at a time. It performs no retries of its own; transient-failure
// handling belongs to the API client.
package executor

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"hc-bulk/internal/domain"
	"hc-bulk/internal/hcapi"
	"hc-bulk/internal/interfaces"
)

// Executor walks a change plan strictly sequentially. A single rejected
// update never aborts the batch; a fatal transport or auth failure does,
// since every remaining call would fail identically.
type Executor struct {
	client interfaces.CheckClient
	logger *zap.Logger
}

// New creates an Executor.
func New(client interfaces.CheckClient, logger *zap.Logger) *Executor {
	return &Executor{
		client: client,
		logger: logger.With(zap.String("component", "executor")),
	}
}

// Options controls one execution run.
type Options struct {
	// DryRun suppresses every network call; all requests are recorded as
	// successful with DryRun set.
	DryRun bool
	// OnResult, when set, is invoked after each request completes. Used to
	// drive progress display.
	OnResult func(domain.ChangeResult)
}

// Execute processes requests in order and returns one result per processed
// request. The returned error is nil unless the batch was aborted early; in
// that case the results cover only the requests processed so far. Already
// applied changes are never rolled back.
func (e *Executor) Execute(ctx context.Context, requests []domain.ChangeRequest, opts Options) ([]domain.ChangeResult, error) {
	results := make([]domain.ChangeResult, 0, len(requests))

	for _, req := range requests {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		res := e.apply(ctx, req, opts.DryRun)
		results = append(results, res)

		if opts.OnResult != nil {
			opts.OnResult(res)
		}

		if res.Err != nil && hcapi.IsFatal(res.Err) {
			return results, fmt.Errorf("aborting batch after %s: %w", req.CheckID, res.Err)
		}
	}

	return results, nil
}

func (e *Executor) apply(ctx context.Context, req domain.ChangeRequest, dryRun bool) domain.ChangeResult {
	res := domain.ChangeResult{
		CheckID:   req.CheckID,
		CheckName: req.CheckName,
		Applied:   req.Patch.Fields(),
		DryRun:    dryRun,
	}

	// A request with nothing to do is recorded as success without touching
	// the network at all.
	if req.IsNoOp() {
		res.NoOp = true
		return res
	}

	if dryRun {
		if req.Pause != nil {
			res.Paused = *req.Pause
			res.Resumed = !*req.Pause
		}
		return res
	}

	if !req.Patch.IsZero() {
		if _, err := e.client.UpdateCheck(ctx, req.CheckID, req.Patch); err != nil {
			e.logger.Error("update failed",
				zap.String("check", req.CheckName),
				zap.String("check_id", req.CheckID),
				zap.Error(err))
			res.Err = err
			return res
		}
	}

	if req.Pause != nil {
		var err error
		if *req.Pause {
			err = e.client.PauseCheck(ctx, req.CheckID)
			res.Paused = err == nil
		} else {
			err = e.client.ResumeCheck(ctx, req.CheckID)
			res.Resumed = err == nil
		}
		if err != nil {
			e.logger.Error("pause state change failed",
				zap.String("check", req.CheckName),
				zap.String("check_id", req.CheckID),
				zap.Bool("pause", *req.Pause),
				zap.Error(err))
			res.Err = err
			return res
		}
	}

	e.logger.Debug("change applied",
		zap.String("check", req.CheckName),
		zap.String("check_id", req.CheckID),
		zap.Int("fields", len(res.Applied)))

	return res
}
