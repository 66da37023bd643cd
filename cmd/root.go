package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/xid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/report"
	"github.com/schedsim/schedsim/sim/trace"
	"github.com/schedsim/schedsim/sim/workload"
)

// Summary formats accepted by --summary.
const (
	summaryNone  = "none"
	summaryTable = "table"
	summaryYAML  = "yaml"
)

var (
	logLevel      string // Log verbosity level
	outputPath    string // Report path; empty derives it from the input path
	summaryFormat string // Summary written to stdout after the run
	traceLevel    string // Decision trace verbosity
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "schedsim <input>",
	Short: "Tick-based CPU scheduling simulator (FCFS, preemptive SJF, Round-Robin)",
	Long: `Simulates a single CPU scheduling the processes described in <input> and writes
the event report to <input without extension>.out.

Input files ending in .yaml or .yml are read as YAML scenarios; anything else is
read as directives (processcount, runfor, use, quantum, process, end).

Every flag can also be set through an environment variable named SCHEDSIM_<FLAG>,
with dashes replaced by underscores (for example SCHEDSIM_SUMMARY=table).`,
	Args:              cobra.ExactArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runSimulation,
}

// setup applies environment overrides to unset flags and configures logging.
func setup(cmd *cobra.Command, _ []string) error {
	if err := applyEnv(cmd.Flags()); err != nil {
		return err
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	logrus.SetLevel(level)
	return nil
}

// applyEnv copies SCHEDSIM_* environment values into flags the user did not
// set on the command line. Command-line values win.
func applyEnv(flags *pflag.FlagSet) error {
	v := viper.New()
	v.SetEnvPrefix("SCHEDSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return err
	}

	var errs []error
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Changed || f.Name == "help" {
			return
		}
		val := v.GetString(f.Name)
		if val == "" || val == f.DefValue {
			return
		}
		if err := flags.Set(f.Name, val); err != nil {
			errs = append(errs, fmt.Errorf("environment value for --%s: %w", f.Name, err))
		}
	})
	return errors.Join(errs...)
}

func runSimulation(cmd *cobra.Command, args []string) error {
	input := args[0]
	if !trace.IsValidTraceLevel(traceLevel) {
		return fmt.Errorf("invalid trace level %q; valid: none, decisions", traceLevel)
	}
	if !isValidSummaryFormat(summaryFormat) {
		return fmt.Errorf("invalid summary format %q; valid: none, table, yaml", summaryFormat)
	}
	out := outputPath
	if out == "" {
		out = DefaultOutputPath(input)
	}
	if samePath(input, out) {
		return fmt.Errorf("output path %s would overwrite the input file", out)
	}

	runID := xid.New().String()
	log := logrus.WithFields(logrus.Fields{"run": runID, "input": input})

	sc, err := workload.LoadScenario(input)
	if err != nil {
		return err
	}
	s, err := sim.NewSimulator(sc.Config(), sc.SortedProcesses())
	if err != nil {
		return err
	}
	traceCfg := trace.TraceConfig{Level: trace.TraceLevel(traceLevel)}
	if traceCfg.Enabled() {
		s.Trace = trace.NewSimulationTrace(traceCfg)
	}

	res := s.Run()
	log.Infof("%d finished, %d unfinished", len(res.Finished), len(res.Unfinished))

	if err := report.WriteFileAtomic(out, func(w io.Writer) error {
		return report.WriteText(w, res)
	}); err != nil {
		return &workload.FileError{Op: "write", Path: out, Err: err}
	}
	log.Infof("report written to %s", out)

	var ts *trace.TraceSummary
	if s.Trace != nil {
		ts = trace.Summarize(s.Trace)
		log.Debugf("trace: %d dispatches, %d preemptions", ts.TotalDispatches, ts.Preemptions)
	}
	return writeSummary(cmd.OutOrStdout(), runID, res, ts)
}

func writeSummary(w io.Writer, runID string, res *sim.Result, ts *trace.TraceSummary) error {
	switch summaryFormat {
	case summaryTable:
		return report.WriteTable(w, res, ts)
	case summaryYAML:
		return report.WriteYAML(w, report.NewSummary(runID, res, ts))
	default:
		return nil
	}
}

func isValidSummaryFormat(f string) bool {
	return f == summaryNone || f == summaryTable || f == summaryYAML
}

// DefaultOutputPath replaces the extension of input with .out.
func DefaultOutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".out"
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Report path (default: input path with extension replaced by .out)")
	rootCmd.Flags().StringVar(&summaryFormat, "summary", summaryNone, "Summary written to stdout after the run: none, table, yaml")
	rootCmd.Flags().StringVar(&traceLevel, "trace", string(trace.TraceLevelNone), "Decision trace level: none, decisions")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(generateCmd)
}
