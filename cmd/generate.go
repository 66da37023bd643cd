package cmd

import (
	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/sim/workload"
)

var (
	genCfg    workload.GeneratorConfig
	genFormat string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a random scenario",
	Long:  "Synthesize a random, valid scenario from a seed. The same flags always produce the same scenario.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		sc, err := workload.GenerateScenario(genCfg)
		if err != nil {
			return err
		}
		return writeScenario(cmd.OutOrStdout(), sc, genFormat)
	},
}

func init() {
	generateCmd.Flags().Int64Var(&genCfg.Seed, "seed", 42, "Seed for arrival and burst generation")
	generateCmd.Flags().IntVar(&genCfg.Count, "count", 5, "Number of processes")
	generateCmd.Flags().IntVar(&genCfg.RunFor, "runfor", 50, "Simulation horizon in ticks")
	generateCmd.Flags().StringVar(&genCfg.Use, "use", "rr", "Scheduling algorithm: fcfs, sjf, rr")
	generateCmd.Flags().IntVar(&genCfg.Quantum, "quantum", 2, "Round-Robin quantum (rr only)")
	generateCmd.Flags().IntVar(&genCfg.MaxArrival, "max-arrival", 20, "Latest arrival tick")
	generateCmd.Flags().IntVar(&genCfg.BurstMin, "burst-min", 1, "Minimum burst length")
	generateCmd.Flags().IntVar(&genCfg.BurstMax, "burst-max", 10, "Maximum burst length")
	generateCmd.Flags().StringVar(&genFormat, "format", "directives", "Output format: directives, yaml")
}
