package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/schedsim/schedsim/sim/workload"
)

var convertTo string

var convertCmd = &cobra.Command{
	Use:   "convert <input>",
	Short: "Print a scenario in another input format",
	Long:  "Load and validate a scenario (directives or YAML) and print it as YAML or directives. Output is written to stdout for piping.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := workload.LoadScenario(args[0])
		if err != nil {
			return err
		}
		return writeScenario(cmd.OutOrStdout(), sc, convertTo)
	},
}

// writeScenario renders a scenario as "yaml" or "directives".
func writeScenario(w io.Writer, sc *workload.Scenario, format string) error {
	switch format {
	case "yaml":
		data, err := yaml.Marshal(sc)
		if err != nil {
			return fmt.Errorf("YAML marshal failed: %w", err)
		}
		_, err = w.Write(data)
		return err
	case "directives":
		return workload.FormatDirectives(w, sc)
	default:
		return fmt.Errorf("unknown format %q; valid: yaml, directives", format)
	}
}

func init() {
	convertCmd.Flags().StringVar(&convertTo, "to", "yaml", "Output format: yaml, directives")
}
