package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"algotest/internal/config"
	"algotest/internal/discovery"
	"algotest/internal/engine"
	"algotest/internal/report"
	"algotest/internal/simfeed"
	"algotest/pkg/logging"
	"algotest/pkg/market"
	"algotest/pkg/registry"
)

var (
	runConfigPath  string
	runDataPath    string
	runInstrument  string
	runPeriod      string
	runBars        int
	runStartBar    int
	runEveryTick   bool
	runNamespace   string
	runNameFilter  string
	runQuiet       bool
	runVerbose     bool
	runAnnotate    bool
	runFailFast    bool
	runReportDir   string
	runTimeout     time.Duration
	runLogLevel    string
	runWatch       bool
	runInteractive bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute the registered test suites against a simulated host",
	Long: `The run command discovers every registered suite, applies the configured
filters and gates, and executes the remaining units strictly in sequence
against a simulated market host.

The host is built from a YAML bar file (--data) or, without one, from a
deterministic synthetic series. By default the run triggers once with the
full history available; --every-tick replays the bar clock and reruns the
plan on every bar at or past --start-bar.

Example usage:
  algotest run                            # run everything on synthetic data
  algotest run --data ticks/eurusd.yaml   # run against recorded bars
  algotest run --namespace indicators     # only indicator suites
  algotest run --filter sma --verbose     # suites matching "sma", detailed output
  algotest run --every-tick --start-bar 50
  algotest run --watch --data bars.yaml   # rerun on every file change
  algotest run --report reports/          # save a JSON report per run

The command exits non-zero when any unit fails, times out or errors.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Host selection
	runCmd.Flags().StringVar(&runConfigPath, "config", "", "Path to the configuration file (default: ./"+config.ConfigFileName+")")
	runCmd.Flags().StringVar(&runDataPath, "data", "", "YAML bar data file; empty synthesizes a deterministic series")
	runCmd.Flags().StringVar(&runInstrument, "instrument", "", "Instrument symbol for the synthetic host")
	runCmd.Flags().StringVar(&runPeriod, "period", "", "Bar period for the synthetic host (m1, m5, m15, m30, h1, h4, d1)")
	runCmd.Flags().IntVar(&runBars, "bars", 0, "Synthetic series length (default "+fmt.Sprint(simfeed.DefaultSyntheticBars)+")")

	// Trigger control
	runCmd.Flags().IntVar(&runStartBar, "start-bar", 0, "First bar index at which a run may trigger")
	runCmd.Flags().BoolVar(&runEveryTick, "every-tick", false, "Replay the bar clock and rerun on every bar")

	// Selection and filtering
	runCmd.Flags().StringVar(&runNamespace, "namespace", "", "Only suites whose namespace starts with this prefix")
	runCmd.Flags().StringVar(&runNameFilter, "filter", "", "Only suites whose name contains this fragment")
	runCmd.Flags().BoolVar(&runInteractive, "interactive", false, "Pick the suite to run from a menu")

	// Output and reporting
	runCmd.Flags().BoolVar(&runQuiet, "quiet", false, "Suppress live output (the transcript is still captured)")
	runCmd.Flags().BoolVar(&runVerbose, "verbose", false, "Include expected-outcome notes and fault traces")
	runCmd.Flags().BoolVar(&runAnnotate, "annotate", false, "Forward results to the host annotator")
	runCmd.Flags().StringVar(&runReportDir, "report", "", "Directory to save detailed JSON run reports")
	runCmd.Flags().StringVar(&runLogLevel, "log-level", "", "Diagnostic log level (debug, info, warn, error)")

	// Execution control
	runCmd.Flags().BoolVar(&runFailFast, "fail-fast", false, "Stop the run on the first bad result")
	runCmd.Flags().DurationVar(&runTimeout, "timeout", 0, "Default unit timeout for units that declare none")
	runCmd.Flags().BoolVar(&runWatch, "watch", false, "Keep running, rerunning whenever the bar data file changes")

	runCmd.MarkFlagsMutuallyExclusive("watch", "interactive")
	runCmd.MarkFlagsMutuallyExclusive("watch", "every-tick")

	runCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if runBars < 0 {
			return fmt.Errorf("--bars must not be negative, got %d", runBars)
		}
		return nil
	}
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Handle interrupts gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, stopping run...")
		cancel()
	}()

	cfg, err := config.Load(runConfigPath)
	if err != nil {
		return err
	}
	mergeRunFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Output.Logging {
		logging.InitForCLI(logging.ParseLevel(cfg.Output.LogLevel), os.Stderr)
	} else {
		logging.InitSilent()
	}

	if runInteractive {
		filter, err := pickSuite(registry.Default)
		if err != nil {
			return err
		}
		cfg.Filter.Name = filter
	}

	if runWatch {
		if cfg.DataPath == "" {
			return fmt.Errorf("--watch needs a bar data file, set --data or dataPath in %s", config.ConfigFileName)
		}
		return watchAndRerun(ctx, cfg)
	}

	summary, err := executeRun(ctx, cfg)
	if err != nil {
		return err
	}
	if err := exportReport(summary, cfg); err != nil {
		return err
	}

	// Set exit code based on results
	if !summary.Ok() {
		os.Exit(ExitCodeError)
	}
	return nil
}

// mergeRunFlags folds explicitly set command-line flags over the file
// configuration; flags always win.
func mergeRunFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataPath = runDataPath
	}
	if flags.Changed("instrument") {
		cfg.Instrument = runInstrument
	}
	if flags.Changed("period") {
		cfg.Period = runPeriod
	}
	if flags.Changed("start-bar") {
		cfg.StartBar = runStartBar
	}
	if flags.Changed("every-tick") {
		cfg.EveryTick = runEveryTick
	}
	if flags.Changed("namespace") {
		cfg.Filter.Namespace = runNamespace
	}
	if flags.Changed("filter") {
		cfg.Filter.Name = runNameFilter
	}
	if flags.Changed("quiet") {
		cfg.Output.Logging = !runQuiet
	}
	if flags.Changed("verbose") {
		cfg.Output.Verbose = runVerbose
	}
	if flags.Changed("annotate") {
		cfg.Output.Annotate = runAnnotate
	}
	if flags.Changed("fail-fast") {
		cfg.FailFast = runFailFast
	}
	if flags.Changed("report") {
		cfg.Output.ReportDir = runReportDir
	}
	if flags.Changed("timeout") {
		cfg.DefaultTimeout = runTimeout.String()
	}
	if flags.Changed("log-level") {
		cfg.Output.LogLevel = runLogLevel
	}
}

// buildFeed constructs the simulated host the run executes against.
func buildFeed(cfg config.Config, quiet bool) (*simfeed.Feed, error) {
	if cfg.DataPath == "" {
		period, ok := market.ParsePeriod(cfg.Period)
		if !ok {
			period = market.PeriodM5
		}
		return simfeed.Synthetic(cfg.Instrument, period, runBars), nil
	}

	var s *spinner.Spinner
	if !quiet {
		s = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Suffix = " Loading bar data..."
		s.Start()
	}

	feed, err := simfeed.FromFile(cfg.DataPath)

	if s != nil {
		s.Stop()
	}
	return feed, err
}

func engineOptions(cfg config.Config) engine.Options {
	opts := engine.Options{
		Filter: discovery.Filter{
			Namespace: cfg.Filter.Namespace,
			Name:      cfg.Filter.Name,
		},
		Logging:        cfg.Output.Logging,
		Out:            os.Stdout,
		Verbose:        cfg.Output.Verbose,
		FailFast:       cfg.FailFast,
		DefaultTimeout: cfg.TimeoutDuration(),
	}
	if cfg.Output.Annotate {
		opts.Annotate = true
		opts.Annotator = simfeed.LogAnnotator{}
	}
	return opts
}

// executeRun performs one run pass: build the host, attach the engine and
// fire the trigger. In every-tick mode the whole history is replayed; the
// default mode triggers once at the end of history.
func executeRun(ctx context.Context, cfg config.Config) (*report.RunSummary, error) {
	feed, err := buildFeed(cfg, !cfg.Output.Logging)
	if err != nil {
		return nil, err
	}

	eng := engine.New(registry.Default, feed, engineOptions(cfg))
	ctrl := engine.NewController(eng, engine.Trigger{
		StartBar:  cfg.StartBar,
		EveryTick: cfg.EveryTick,
	})

	if cfg.EveryTick {
		if err := simfeed.NewClock(feed, 0).Play(ctx, func(int) { ctrl.OnBar() }); err != nil {
			return nil, err
		}
		if ctrl.Last() == nil {
			return nil, fmt.Errorf("start bar %d is past the last bar %d, nothing triggered", cfg.StartBar, feed.Bars()-1)
		}
		return ctrl.Last(), nil
	}

	feed.Seek(feed.Bars() - 1)
	summary := ctrl.OnBar()
	if summary == nil {
		return nil, fmt.Errorf("start bar %d is past the last bar %d, nothing triggered", cfg.StartBar, feed.BarIndex())
	}
	return summary, nil
}

func exportReport(summary *report.RunSummary, cfg config.Config) error {
	if summary == nil || cfg.Output.ReportDir == "" {
		return nil
	}
	path, err := report.Export(summary, cfg.Output.ReportDir)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	if cfg.Output.Logging {
		fmt.Printf("💾 Detailed report saved to: %s\n", path)
	}
	return nil
}

// watchAndRerun keeps the process alive and reruns the plan whenever the
// bar data file changes on disk.
func watchAndRerun(ctx context.Context, cfg config.Config) error {
	rerun := make(chan struct{}, 1)
	watcher := simfeed.NewWatcher(cfg.DataPath, 0)
	if err := watcher.Start(ctx, func() {
		select {
		case rerun <- struct{}{}:
		default:
		}
	}); err != nil {
		return fmt.Errorf("failed to watch %s: %w", cfg.DataPath, err)
	}
	defer watcher.Stop()

	runPass := func() error {
		summary, err := executeRun(ctx, cfg)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			// a broken data file must not end the watch session
			fmt.Printf("❌ %v\n", err)
			return nil
		}
		return exportReport(summary, cfg)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := runPass(); err != nil {
			return err
		}
		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case <-rerun:
				fmt.Println("\n🔄 Bar data changed, rerunning...")
				if err := runPass(); err != nil {
					return err
				}
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
