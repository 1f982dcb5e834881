package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/alecthomas/kingpin.v2"

	"hc-bulk/app"
	"hc-bulk/internal/commands"
	"hc-bulk/internal/common"
	"hc-bulk/internal/domain"
)

// version is set at build time via -ldflags.
var version = "dev"

type updateFlags struct {
	name         string
	desc         string
	schedule     string
	tz           string
	methods      string
	channels     string
	replaceTags  string
	timeout      time.Duration
	grace        time.Duration
	manualResume bool
	pause        bool
	resume       bool
	addTags      []string
	removeTags   []string
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	inv := &commands.Invocation{Progress: true}
	flags := &updateFlags{}
	var debug bool
	var statuses []string

	cli := kingpin.New("hc-bulk", "Bulk edit checks on a Healthchecks.io compatible service.")
	cli.Version(version)
	cli.HelpFlag.Short('h')
	cli.Flag("debug", "Enable debug logging").Short('d').BoolVar(&debug)

	ls := cli.Command("ls", "List checks after applying filters.")
	addConnectionFlags(ls, inv)
	addFilterFlags(ls, inv, &statuses)

	update := cli.Command("bulk-update", "Select checks by filters, then apply updates and/or pause.")
	addConnectionFlags(update, inv)
	addFilterFlags(update, inv, &statuses)
	addUpdateFlags(update, inv, flags)
	update.Flag("dry-run", "Show what would change, send nothing.").BoolVar(&inv.DryRun)
	update.Flag("yes", "Do not prompt for confirmation.").Short('y').BoolVar(&inv.AssumeYes)
	update.Flag("progress", "Show a progress bar while applying.").Default("true").BoolVar(&inv.Progress)

	inv.Command = kingpin.MustParse(cli.Parse(args))

	logger := newLogger(debug)
	defer logger.Sync()

	if err := finalizeInvocation(inv, flags, statuses); err != nil {
		logger.Error("invalid invocation", zap.Error(err))
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application := app.NewApplication(
		common.WithLogger(logger),
		common.WithInvocation(inv),
	)

	err := application.Run(ctx)
	switch {
	case err == nil:
		return 0
	case domain.IsConfigurationError(err):
		logger.Error("configuration error", zap.Error(err))
		return 2
	default:
		logger.Error("run failed", zap.Error(err))
		return 1
	}
}

func addConnectionFlags(cmd *kingpin.CmdClause, inv *commands.Invocation) {
	cmd.Flag("api-key", "Full-access API key (overrides HC_API_KEY).").StringVar(&inv.APIKey)
	cmd.Flag("api-url", "Management API base URL (overrides HC_API_URL).").StringVar(&inv.APIURL)
}

func addFilterFlags(cmd *kingpin.CmdClause, inv *commands.Invocation, statuses *[]string) {
	cmd.Flag("tags", "Filter by tag, matches any (repeatable, comma-separated lists accepted).").Short('t').StringsVar(&inv.Criteria.Tags)
	cmd.Flag("name-re", "Regex filter on check name.").StringVar(&inv.Criteria.NamePattern)
	cmd.Flag("slug-re", "Regex filter on check slug.").StringVar(&inv.Criteria.SlugPattern)
	cmd.Flag("status", "Filter by status (repeatable).").EnumsVar(statuses, domain.KnownStatuses()...)
}

func addUpdateFlags(cmd *kingpin.CmdClause, inv *commands.Invocation, flags *updateFlags) {
	// Scalar set-* flags only take effect when given on the command line, so
	// presence is captured through flag actions rather than zero values.
	cmd.Flag("set-name", "New name for all matched checks.").
		Action(func(*kingpin.ParseContext) error { inv.Updates.Name = &flags.name; return nil }).
		StringVar(&flags.name)
	cmd.Flag("set-desc", "New description.").
		Action(func(*kingpin.ParseContext) error { inv.Updates.Description = &flags.desc; return nil }).
		StringVar(&flags.desc)
	cmd.Flag("set-timeout", "Expected period between pings, e.g. 1h.").
		Action(func(*kingpin.ParseContext) error { inv.Updates.Timeout = &flags.timeout; return nil }).
		DurationVar(&flags.timeout)
	cmd.Flag("set-grace", "Grace time before a late check goes down, e.g. 15m.").
		Action(func(*kingpin.ParseContext) error { inv.Updates.Grace = &flags.grace; return nil }).
		DurationVar(&flags.grace)
	cmd.Flag("set-schedule", "Cron expression for cron-style checks.").
		Action(func(*kingpin.ParseContext) error { inv.Updates.Schedule = &flags.schedule; return nil }).
		StringVar(&flags.schedule)
	cmd.Flag("set-tz", "IANA timezone for cron schedules, e.g. Europe/Paris.").
		Action(func(*kingpin.ParseContext) error { inv.Updates.Timezone = &flags.tz; return nil }).
		StringVar(&flags.tz)
	cmd.Flag("set-methods", "Allowed HTTP ping methods, e.g. POST.").
		Action(func(*kingpin.ParseContext) error { inv.Updates.Methods = &flags.methods; return nil }).
		StringVar(&flags.methods)
	cmd.Flag("set-channels", "Comma-separated integration IDs to notify.").
		Action(func(*kingpin.ParseContext) error { inv.Updates.Channels = &flags.channels; return nil }).
		StringVar(&flags.channels)
	cmd.Flag("manual-resume", "Require manual resume after a pause (negatable).").
		Action(func(*kingpin.ParseContext) error { inv.Updates.ManualResume = &flags.manualResume; return nil }).
		BoolVar(&flags.manualResume)

	cmd.Flag("add-tags", "Tags to add (repeatable, space or comma separated).").StringsVar(&flags.addTags)
	cmd.Flag("remove-tags", "Tags to remove (repeatable, space or comma separated).").StringsVar(&flags.removeTags)
	cmd.Flag("replace-tags", "Replace the tag set entirely (empty string clears all tags).").
		Action(func(*kingpin.ParseContext) error {
			tags := splitList([]string{flags.replaceTags})
			inv.Updates.ReplaceTags = &tags
			return nil
		}).
		StringVar(&flags.replaceTags)

	cmd.Flag("pause", "Pause matched checks.").BoolVar(&flags.pause)
	cmd.Flag("resume", "Resume matched checks.").BoolVar(&flags.resume)
}

// finalizeInvocation normalizes parsed flags into the invocation and rejects
// conflicting combinations before anything else runs.
func finalizeInvocation(inv *commands.Invocation, flags *updateFlags, statuses []string) error {
	inv.Criteria.Tags = splitList(inv.Criteria.Tags)
	for _, s := range statuses {
		status, err := domain.ParseStatus(s)
		if err != nil {
			return err
		}
		inv.Criteria.Statuses = append(inv.Criteria.Statuses, status)
	}

	inv.Updates.AddTags = splitList(flags.addTags)
	inv.Updates.RemoveTags = splitList(flags.removeTags)

	if flags.pause && flags.resume {
		return domain.ConfigErrorf("--pause and --resume are mutually exclusive")
	}
	if flags.pause || flags.resume {
		pause := flags.pause
		inv.Updates.Pause = &pause
	}

	return inv.Updates.Validate()
}

// splitList flattens repeatable flag values that may carry comma or space
// separated lists, e.g. --tags backup,docker.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.FieldsFunc(v, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		}) {
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func newLogger(debug bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	return logger
}
