package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/edstats/linreg/compare"
	"github.com/edstats/linreg/dataset"
)

var compareGroup string

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the Regressor against a reference fit",
	Long: `Fits the Regressor and gonum's reference estimator on the same
Anscombe group and prints both parameter sets with their deltas.`,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&compareGroup, "group", "I", "Anscombe group to compare on (I, II, III, IV)")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	g, err := dataset.GroupByName(compareGroup)
	if err != nil {
		return err
	}

	report, err := compare.Simple(g.Name, g.X, g.Y)
	if err != nil {
		return err
	}

	return report.TablePrint(os.Stdout)
}
