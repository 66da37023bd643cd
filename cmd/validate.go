package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/workload"
)

var validateCmd = &cobra.Command{
	Use:   "validate <input>",
	Short: "Check a scenario file without simulating it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := workload.LoadScenario(args[0])
		if err != nil {
			return err
		}
		cfg := sc.Config()
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d processes, %s, runfor %d)\n",
			args[0], cfg.ProcessCount, sim.AlgorithmDisplayName(cfg.Algorithm), cfg.RunFor)
		return err
	},
}
