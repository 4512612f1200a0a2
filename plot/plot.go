// Package plot renders fitted regression models for visual inspection. PNG
// output goes through gonum/plot; the quartet overview page goes through
// go-echarts. Both consume fitted Regressor instances via their public API
// only.
package plot

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/edstats/linreg/core/model"
	"github.com/edstats/linreg/dataset"
	"github.com/edstats/linreg/pkg/errors"
)

// ScatterFit builds a scatter plot of the group's observations with the
// model's fitted line drawn across the predictor range. The model must be
// fitted.
func ScatterFit(g dataset.Group, reg model.SimplePredictor) (*plot.Plot, error) {
	if g.Len() == 0 {
		return nil, errors.NewValueError("plot.ScatterFit", "empty group")
	}

	p := plot.New()
	p.Title.Text = "Dataset " + g.Name
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	pts := make(plotter.XYs, g.Len())
	minX, maxX := g.X[0], g.X[0]
	for i := range g.X {
		pts[i].X = g.X[i]
		pts[i].Y = g.Y[i]
		if g.X[i] < minX {
			minX = g.X[i]
		}
		if g.X[i] > maxX {
			maxX = g.X[i]
		}
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, errors.Wrap(err, "building scatter")
	}

	preds, err := reg.PredictSimple([]float64{minX, maxX})
	if err != nil {
		return nil, err
	}

	fitLine, err := plotter.NewLine(plotter.XYs{
		{X: minX, Y: preds[0]},
		{X: maxX, Y: preds[1]},
	})
	if err != nil {
		return nil, errors.Wrap(err, "building fit line")
	}

	p.Add(scatter, fitLine)
	p.Legend.Add("observations", scatter)
	p.Legend.Add("fit", fitLine)

	return p, nil
}

// SavePNG writes the plot to path as a PNG.
func SavePNG(p *plot.Plot, path string) error {
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// QuartetHTML renders one scatter-plus-fit chart per group into a single
// HTML page. The models map is keyed by group name; groups without a model
// are skipped.
func QuartetHTML(w io.Writer, groups []dataset.Group, models map[string]model.SimplePredictor) error {
	page := components.NewPage()
	page.PageTitle = "Anscombe's quartet"

	for _, g := range groups {
		reg, ok := models[g.Name]
		if !ok {
			continue
		}

		chart, err := groupChart(g, reg)
		if err != nil {
			return err
		}
		page.AddCharts(chart)
	}

	return page.Render(w)
}

// groupChart builds the echarts scatter for one group with the fitted line
// overlaid.
func groupChart(g dataset.Group, reg model.SimplePredictor) (*charts.Scatter, error) {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: "Dataset " + g.Name,
			},
		),
	)

	scatterData := make([]opts.ScatterData, 0, g.Len())
	for i := range g.X {
		scatterData = append(scatterData, opts.ScatterData{Value: []float64{g.X[i], g.Y[i]}})
	}
	scatter.AddSeries("observations", scatterData)

	preds, err := reg.PredictSimple(g.X)
	if err != nil {
		return nil, err
	}

	lineData := make([]opts.LineData, 0, len(preds))
	for i := range preds {
		lineData = append(lineData, opts.LineData{Value: []float64{g.X[i], preds[i]}})
	}

	line := charts.NewLine()
	line.AddSeries("fit", lineData)
	scatter.Overlap(line)

	return scatter, nil
}
