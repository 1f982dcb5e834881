// Package report renders human-readable output for the CLI: check tables,
// confirmation prompts, progress during execution, and the final summary.
package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/gosuri/uiprogress"
	"github.com/olekukonko/tablewriter"
	"go.uber.org/zap"

	"hc-bulk/internal/domain"
)

// Reporter writes operator-facing output. Progress and prompts go through
// their own libraries; everything else lands on the configured writer.
type Reporter struct {
	out    io.Writer
	logger *zap.Logger
}

// Option adjusts a Reporter.
type Option func(*Reporter)

// WithOutput redirects plain output, mainly for tests.
func WithOutput(w io.Writer) Option {
	return func(r *Reporter) {
		r.out = w
	}
}

// New creates a Reporter writing to stdout.
func New(logger *zap.Logger, opts ...Option) *Reporter {
	r := &Reporter{
		out:    os.Stdout,
		logger: logger.With(zap.String("component", "report")),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderChecks prints the matched checks as a table plus a count line.
func (r *Reporter) RenderChecks(checks []domain.Check) {
	fmt.Fprintf(r.out, "%d check(s) matched.\n", len(checks))
	if len(checks) == 0 {
		return
	}

	table := tablewriter.NewWriter(r.out)
	table.SetAutoWrapText(true)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Name", "Status", "Tags", "Schedule", "Slug", "UUID"})

	for _, c := range checks {
		table.Append([]string{
			c.DisplayName(),
			string(c.Status),
			domain.JoinTags(c.Tags),
			scheduleColumn(c),
			c.Slug,
			c.DisplayID(),
		})
	}

	table.Render()
}

func scheduleColumn(c domain.Check) string {
	if c.Schedule != "" {
		if c.Timezone != "" {
			return fmt.Sprintf("%s (%s)", c.Schedule, c.Timezone)
		}
		return c.Schedule
	}
	if c.Timeout > 0 {
		return fmt.Sprintf("every %s", c.Timeout.Round(time.Second))
	}
	return ""
}

// PlanSummary prints what the plan is about to do.
func (r *Reporter) PlanSummary(requests []domain.ChangeRequest, dryRun bool) {
	updates := 0
	pauses := 0
	resumes := 0
	for _, req := range requests {
		if !req.Patch.IsZero() {
			updates++
		}
		if req.Pause != nil {
			if *req.Pause {
				pauses++
			} else {
				resumes++
			}
		}
	}

	line := fmt.Sprintf("Planned: %d field update(s)", updates)
	if pauses > 0 {
		line += fmt.Sprintf(", %d pause(s)", pauses)
	}
	if resumes > 0 {
		line += fmt.Sprintf(", %d resume(s)", resumes)
	}
	if dryRun {
		line += " (dry-run)"
	}
	fmt.Fprintln(r.out, line)
}

// Confirm asks the operator to proceed, defaulting to no.
func (r *Reporter) Confirm(message string) (bool, error) {
	ans := false
	err := survey.AskOne(&survey.Confirm{
		Message: message,
		Default: ans,
	}, &ans)
	if err != nil {
		return false, err
	}
	return ans, nil
}

// Progress tracks execution progress with a terminal bar. Disabled instances
// are safe no-ops so callers never branch.
type Progress struct {
	bar     *uiprogress.Bar
	enabled bool
}

// Progress starts a progress bar over total items when enabled.
func (r *Reporter) Progress(total int, enabled bool) *Progress {
	if !enabled || total == 0 {
		return &Progress{}
	}

	bar := uiprogress.AddBar(total).AppendCompleted().PrependElapsed()
	bar.PrependFunc(func(b *uiprogress.Bar) string {
		return fmt.Sprintf("%d / %d", b.Current(), total)
	})
	uiprogress.Start()

	return &Progress{bar: bar, enabled: true}
}

// Observe advances the bar by one completed request.
func (p *Progress) Observe(domain.ChangeResult) {
	if p.enabled {
		p.bar.Incr()
	}
}

// Stop shuts the bar down before the summary prints.
func (p *Progress) Stop() {
	if p.enabled {
		uiprogress.Stop()
	}
}

// Summary prints final counts and one reason line per failure.
func (r *Reporter) Summary(results []domain.ChangeResult, dryRun bool) {
	var updated, paused, resumed, skipped, failed int
	for _, res := range results {
		switch {
		case res.Failed():
			failed++
			continue
		case res.NoOp:
			skipped++
			continue
		default:
			if len(res.Applied) > 0 {
				updated++
			}
			if res.Paused {
				paused++
			}
			if res.Resumed {
				resumed++
			}
		}
	}

	line := fmt.Sprintf("Done: %d updated, %d skipped (no-op), %d failed", updated, skipped, failed)
	if paused > 0 {
		line += fmt.Sprintf(", %d paused", paused)
	}
	if resumed > 0 {
		line += fmt.Sprintf(", %d resumed", resumed)
	}
	if dryRun {
		line += " (dry-run, nothing was sent)"
	}
	fmt.Fprintln(r.out, line)

	if failed > 0 {
		fmt.Fprintln(r.out, "Failures:")
		for _, res := range results {
			if res.Failed() {
				name := res.CheckName
				if name == "" {
					name = res.CheckID
				}
				fmt.Fprintf(r.out, "- %s: %v\n", name, res.Err)
			}
		}
	}
}
