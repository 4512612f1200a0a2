package main

import (
	"github.com/spf13/cobra"

	"github.com/edstats/linreg/pkg/log"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "linreg",
	Short: "Ordinary least-squares regression lab",
	Long: `linreg fits simple and multiple linear regression models, evaluates
their accuracy (R², RMSE, MAE) and checks them against reference
implementations, using Anscombe's quartet as the worked example.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return log.Setup(logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}
