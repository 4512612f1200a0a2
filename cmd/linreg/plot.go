package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edstats/linreg/core/model"
	"github.com/edstats/linreg/dataset"
	"github.com/edstats/linreg/linear"
	"github.com/edstats/linreg/pkg/log"
	"github.com/edstats/linreg/plot"
)

var (
	plotOutDir string
	plotHTML   string
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render the quartet fits as PNGs and an HTML page",
	RunE:  runPlot,
}

func init() {
	plotCmd.Flags().StringVar(&plotOutDir, "out-dir", ".", "Directory for PNG output")
	plotCmd.Flags().StringVar(&plotHTML, "html", "anscombe.html", "Path for the HTML overview page")
	rootCmd.AddCommand(plotCmd)
}

func runPlot(cmd *cobra.Command, args []string) error {
	groups, err := dataset.Anscombe()
	if err != nil {
		return err
	}

	models := make(map[string]model.SimplePredictor, len(groups))
	for _, g := range groups {
		reg := linear.NewRegressor()
		if err := reg.FitSimple(g.X, g.Y); err != nil {
			return err
		}
		models[g.Name] = reg

		p, err := plot.ScatterFit(g, reg)
		if err != nil {
			return err
		}

		name := "anscombe_" + strings.ToLower(g.Name) + ".png"
		path := filepath.Join(plotOutDir, name)
		if err := plot.SavePNG(p, path); err != nil {
			return err
		}

		log.L().Info().
			Str(log.DatasetKey, g.Name).
			Str("path", path).
			Msg("wrote plot")
	}

	file, err := os.Create(plotHTML)
	if err != nil {
		return err
	}

	if err := plot.QuartetHTML(file, groups, models); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}

	log.L().Info().Str("path", plotHTML).Msg("wrote overview page")
	return nil
}
