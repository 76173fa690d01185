package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rgehrsitz/estimators/internal/breakeven"
	"github.com/rgehrsitz/estimators/internal/compare"
	"github.com/rgehrsitz/estimators/internal/config"
	"github.com/rgehrsitz/estimators/internal/domain"
	"github.com/rgehrsitz/estimators/internal/server"
	"github.com/rgehrsitz/estimators/internal/tui"
)

func runCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run [batch-file]",
		Short: "Evaluate every estimate in a batch file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			batch, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			report, err := a.engine.RunBatch(cmd.Context(), batch)
			if err != nil {
				return err
			}
			return a.writeReport(cmd, report)
		},
	}
}

func compareCmd(a *app) *cobra.Command {
	var compact, listTemplates bool
	cmd := &cobra.Command{
		Use:   "compare [compare-file]",
		Short: "Compare a base paycheck against what-if scenarios",
		Long: `Compare a base paycheck against named scenarios. Each scenario may apply
a built-in template and then override individual fields.

Examples:
  estimate compare compare.yaml
  estimate compare compare.yaml --format csv
  estimate compare compare.yaml --compact
  estimate compare --list-templates
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ce := compare.NewCompareEngine(a.engine)
			out := cmd.OutOrStdout()

			if listTemplates {
				for _, name := range ce.TemplateRegistry.List() {
					tmpl, _ := ce.TemplateRegistry.Get(name)
					fmt.Fprintf(out, "%-14s %s\n", name, tmpl.Description)
				}
				return nil
			}
			if len(args) == 0 {
				return fmt.Errorf("compare file required (use --list-templates to see available templates)")
			}

			cmp, err := config.NewInputParser().LoadComparison(args[0])
			if err != nil {
				return err
			}
			set, err := ce.Compare(cmd.Context(), cmp)
			if err != nil {
				return err
			}
			set.ConfigPath = args[0]

			switch strings.ToLower(a.format) {
			case "table", "console":
				tf := &compare.TableFormatter{}
				if compact {
					fmt.Fprintln(out, tf.FormatCompact(set))
				} else {
					fmt.Fprint(out, tf.Format(set))
				}
			case "csv":
				s, err := (&compare.CSVFormatter{}).Format(set)
				if err != nil {
					return err
				}
				fmt.Fprint(out, s)
			case "json":
				s, err := (&compare.JSONFormatter{Pretty: true}).Format(set)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, s)
			default:
				return fmt.Errorf("unsupported compare format %q (table, csv, json)", a.format)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&compact, "compact", false, "One-line summary of per-check differences")
	cmd.Flags().BoolVar(&listTemplates, "list-templates", false, "List the built-in scenario templates")
	return cmd
}

func grossUpCmd(a *app) *cobra.Command {
	var (
		pf                    payrollFlags
		target, lower, upper  float64
		solveFor, measureName string
	)
	cmd := &cobra.Command{
		Use:   "gross-up",
		Short: "Find the salary, bonus or overtime that reaches a take-home target",
		Long: `Solve for the value of one paycheck input that makes take-home pay reach
a target. With --solve all, each input is raised alone from its current value.

Examples:
  estimate gross-up --salary 75000 --frequency monthly --target 61156 --measure annual_net
  estimate gross-up --salary 60000 --target 2000 --solve overtime_hours
  estimate gross-up --salary 60000 --target 2000 --solve all --format json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := pf.input()
			if err != nil {
				return err
			}
			goal, err := domain.DecimalFromFloat("target", target)
			if err != nil {
				return err
			}
			m := breakeven.TargetMeasure(measureName)
			solver := breakeven.NewDefaultSolver(a.engine)
			out := cmd.OutOrStdout()

			var report any
			var text string
			if solveFor == "all" {
				mr, err := solver.SolveAll(cmd.Context(), base, m, goal)
				if err != nil {
					return err
				}
				report, text = mr, (&breakeven.TableFormatter{}).FormatMulti(mr)
			} else {
				req := breakeven.Request{Base: base, Variable: breakeven.SolveVariable(solveFor), Measure: m, Target: goal}
				if cmd.Flags().Changed("min") {
					req.Constraints.Min = boundFlag(lower)
				}
				if cmd.Flags().Changed("max") {
					req.Constraints.Max = boundFlag(upper)
				}
				result, err := solver.Solve(cmd.Context(), req)
				if err != nil {
					return err
				}
				report, text = result, (&breakeven.TableFormatter{}).Format(result)
			}

			switch strings.ToLower(a.format) {
			case "table", "console":
				fmt.Fprint(out, text)
			case "json":
				s, err := (&breakeven.JSONFormatter{Pretty: true}).Format(report)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, s)
			default:
				return fmt.Errorf("unsupported gross-up format %q (table, json)", a.format)
			}
			return nil
		},
	}
	pf.bind(cmd)
	cmd.Flags().Float64Var(&target, "target", 0, "Take-home amount to reach")
	cmd.Flags().StringVar(&measureName, "measure", string(breakeven.TargetNetPerCheck), "Take-home figure to match (net_per_check, monthly_net, annual_net)")
	cmd.Flags().StringVar(&solveFor, "solve", string(breakeven.SolveSalary), "Input to adjust (salary, bonus, overtime_hours, all)")
	cmd.Flags().Float64Var(&lower, "min", 0, "Lower bound for the adjusted input")
	cmd.Flags().Float64Var(&upper, "max", 0, "Upper bound for the adjusted input")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

// boundFlag converts a bound flag; negative bounds are left for Validate to reject
func boundFlag(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func ratesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rates",
		Short: "Print the effective rate book as YAML",
		Long:  "Print the built-in rate tables with any --rates overlay applied. The output is a valid overlay file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.NewRateBookLoader().Dump(a.engine.RateBook)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func serveCmd(a *app) *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the estimators as a JSON HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("port") {
				port = a.settings.Port
			}

			// Request logs are always on for the server
			level := zapcore.InfoLevel
			if a.debug {
				level = zapcore.DebugLevel
			}
			log, err := newLogger(level)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			a.engine.SetLogger(zapLogger{log.Sugar()})

			srv := server.New(a.engine, log.With(zap.String("service", "estimate")))
			return srv.ListenAndServe(cmd.Context(), fmt.Sprintf(":%d", port))
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Listen port (default: $"+config.EnvPort+" or 8080)")
	return cmd
}

func tuiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive estimator that recalculates as you type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Log lines would corrupt the alternate screen
			a.engine.SetLogger(nil)

			p := tea.NewProgram(tui.NewModel(a.engine), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running TUI: %w", err)
			}
			return nil
		},
	}
}
