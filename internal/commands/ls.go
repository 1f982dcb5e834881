package commands

import (
	"context"
)

// runLS lists the checks matching the filters.
func (r *Runner) runLS(ctx context.Context) error {
	selected, err := r.selectChecks(ctx)
	if err != nil {
		return err
	}

	r.reporter.RenderChecks(selected)
	return nil
}
