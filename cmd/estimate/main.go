package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rgehrsitz/estimators/internal/calculation"
	"github.com/rgehrsitz/estimators/internal/config"
	"github.com/rgehrsitz/estimators/internal/domain"
	"github.com/rgehrsitz/estimators/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app holds state shared by every subcommand once flags are parsed
type app struct {
	ratesPath string
	debug     bool
	format    string

	settings config.Settings
	engine   *calculation.CalculationEngine
	log      *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "estimate",
		Short: "Insurance, paycheck and wage-claim estimators",
		Long: `Estimate auto, home and renters insurance premiums, take-home pay
after federal, FICA and state taxes, and the urgency of an unpaid wage claim.

Rates default to the built-in tables; --rates (or ESTIMATE_RATES) overlays a
YAML rate file on top of them.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.ratesPath, "rates", "", "Rate book overlay file (default: $"+config.EnvRates+")")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug output for detailed calculations")
	root.PersistentFlags().StringVarP(&a.format, "format", "f", "console", "Output format (console, json, csv)")

	root.AddCommand(
		autoCmd(a),
		homeCmd(a),
		rentersCmd(a),
		paycheckCmd(a),
		wageCheckCmd(a),
		runCmd(a),
		compareCmd(a),
		grossUpCmd(a),
		ratesCmd(a),
		serveCmd(a),
		tuiCmd(a),
		versionCmd(),
	)
	return root
}

// setup loads .env settings and the rate book, then builds the engine
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	settings, err := config.LoadSettings(".env")
	if err != nil {
		return err
	}
	a.settings = settings

	if !cmd.Flags().Changed("rates") {
		a.ratesPath = settings.RatesPath
	}
	if !cmd.Flags().Changed("debug") {
		a.debug = settings.Debug
	}

	level := zapcore.WarnLevel
	if a.debug {
		level = zapcore.DebugLevel
	}
	a.log, err = newLogger(level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	book, err := config.NewRateBookLoader().Load(a.ratesPath)
	if err != nil {
		return err
	}
	a.engine, err = calculation.NewCalculationEngineWithRateBook(book)
	if err != nil {
		return err
	}
	a.engine.SetLogger(zapLogger{a.log.Sugar()})
	a.engine.Debug = a.debug
	if a.ratesPath != "" {
		a.log.Sugar().Debugf("loaded rate book %s (data year %d)", a.ratesPath, a.engine.DataYear())
	}
	return nil
}

// writeReport renders a report with the selected formatter
func (a *app) writeReport(cmd *cobra.Command, report *domain.BatchReport) error {
	f, err := output.GetFormatterByName(a.format)
	if err != nil {
		return err
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// runOne evaluates a single request and prints it
func (a *app) runOne(cmd *cobra.Command, req domain.EstimateRequest) error {
	res, err := a.engine.Estimate(req)
	if err != nil {
		return err
	}
	return a.writeReport(cmd, &domain.BatchReport{
		DataYear: a.engine.DataYear(),
		Results:  []domain.EstimateResult{res},
	})
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "estimate %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.GoVersion
	}
	return ""
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
