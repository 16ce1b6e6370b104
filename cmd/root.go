// Package cmd wires up the CLI flags and dispatches to the core modes.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"drills/config"
	"drills/internal/core"
	"drills/internal/metrics"
	"drills/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X drills/cmd.version=2.0.0"
var version = "1.0.0" //nolint:gochecknoglobals

// flagValues holds raw flag values; only flags the user actually set
// override the file and environment.
type flagValues struct {
	list        bool
	menu        bool
	maxAttempts int
	retryDelay  time.Duration
	configPath  string
	stats       bool
	verbose     int
}

// Execute parses args and runs the selected drills mode.
func Execute(ctx context.Context, args []string) error {
	return execute(ctx, args, os.Stdout, os.Stderr)
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var fv flagValues
	fs := flag.NewFlagSet("drills", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// ── selection ────────────────────────────────────────────────
	fs.BoolVarP(&fv.list, "list", "L", false, "List the available exercises")
	fs.BoolVarP(&fv.menu, "menu", "m", false, "Pick exercises from an interactive menu")

	// ── prompt loop ──────────────────────────────────────────────
	fs.IntVarP(&fv.maxAttempts, "max-attempts", "a", config.DefaultMaxAttempts, "Attempt ceiling for bounded prompts")
	fs.DurationVar(&fv.retryDelay, "retry-delay", config.DefaultRetryDelay, "Pause before re-prompting (e.g. 250ms)")

	// ── configuration ────────────────────────────────────────────
	fs.StringVarP(&fv.configPath, "config", "f", "", "YAML config file (default $DRILLS_CONFIG)")

	// ── output ───────────────────────────────────────────────────
	fs.BoolVar(&fv.stats, "stats", false, "Print session statistics to stderr on exit")
	fs.CountVarP(&fv.verbose, "verbose", "v", "Increase verbosity (repeatable)")

	var showVersion, showHelp bool
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")

	fs.Usage = func() { printUsage(stderr, fs) }

	// ── parse ────────────────────────────────────────────────────
	if err := fs.Parse(args); err != nil {
		return err
	}

	if showHelp {
		printUsage(stderr, fs)
		return nil
	}
	if showVersion {
		fmt.Fprintf(stdout, "drills %s\n", version)
		return nil
	}

	// ── layered configuration ────────────────────────────────────
	cfg, err := config.Load(fv.configPath)
	if err != nil {
		return err
	}
	if err := applyFlags(cfg, fs, &fv); err != nil {
		return err
	}

	// A bare invocation shows usage unless the file or environment
	// already selected something to run.
	if len(args) == 0 && cfg.Exercise == "" && !cfg.List && !cfg.Menu {
		printUsage(stderr, fs)
		return nil
	}

	// ── validate ─────────────────────────────────────────────────
	if err := cfg.Validate(); err != nil {
		return err
	}

	// ── build components ─────────────────────────────────────────
	logger := util.NewLogger(cfg.Verbose)
	logger.SetOutput(stderr)
	if cfg.ConfigPath != "" {
		logger.Info("loaded config from %s", cfg.ConfigPath)
	}

	var m *metrics.Collector
	if cfg.Stats {
		m = metrics.New()
		defer func() { fmt.Fprintln(stderr, m.JSON()) }()
	}

	mode, err := core.Build(cfg, logger, m)
	if err != nil {
		return err
	}
	if lm, ok := mode.(*core.ListMode); ok {
		lm.Stdout = stdout
	}
	return mode.Run(ctx)
}

// ── helpers ──────────────────────────────────────────────────────────

// applyFlags copies explicitly set flags and the positional exercise
// onto cfg.
func applyFlags(cfg *config.Config, fs *flag.FlagSet, fv *flagValues) error {
	if fs.Changed("list") {
		cfg.List = fv.list
	}
	if fs.Changed("menu") {
		cfg.Menu = fv.menu
	}
	if fs.Changed("max-attempts") {
		cfg.MaxAttempts = fv.maxAttempts
	}
	if fs.Changed("retry-delay") {
		cfg.RetryDelay = fv.retryDelay
	}
	if fs.Changed("stats") {
		cfg.Stats = fv.stats
	}
	if fs.Changed("verbose") {
		cfg.Verbose = fv.verbose
	}

	switch rest := fs.Args(); len(rest) {
	case 0:
	case 1:
		cfg.Exercise = rest[0]
	default:
		return fmt.Errorf("expected one exercise, got %d arguments", len(rest))
	}
	return nil
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, `drills – interactive console exercises v%s

Usage:
  drills [options] <exercise>       Run one exercise (number or name)
  drills --list                     List exercises
  drills --menu                     Pick exercises interactively

Options:
`, version)
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintf(w, `
Examples:
  drills password                   Three tries to guess the password
  drills -a 5 080                   Same, with five tries
  drills 84                         Split "5 3" into two numbers
  echo "5 3" | drills split         Scripted input
  DRILLS_CONFIG=drills.yaml drills --menu
`)
}
