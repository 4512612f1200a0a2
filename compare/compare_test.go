package compare

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/edstats/linreg/dataset"
)

func TestSimpleAgreesWithReference(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{2, 4, 6, 8}

	report, err := Simple("exact line", x, y)
	require.NoError(t, err)

	assert.InDelta(t, 2.0, report.CustomCoefficients[0], 1e-9)
	assert.InDelta(t, 0.0, report.CustomIntercept, 1e-9)
	assert.InDelta(t, 0.0, report.InterceptDelta(), 1e-9)
	assert.InDelta(t, 0.0, report.CoefficientDeltas()[0], 1e-9)
}

func TestSimpleOnAnscombe(t *testing.T) {
	groups, err := dataset.Anscombe()
	require.NoError(t, err)

	for _, g := range groups {
		report, err := Simple(g.Name, g.X, g.Y)
		require.NoError(t, err, "group %s", g.Name)

		// Population-divisor covariance over population-divisor variance
		// equals gonum's closed form; the two fits must agree tightly.
		assert.InDelta(t, 0.0, report.InterceptDelta(), 1e-9, "group %s intercept", g.Name)
		assert.InDelta(t, 0.0, report.CoefficientDeltas()[0], 1e-9, "group %s slope", g.Name)
	}
}

func TestMultipleAgreesWithReference(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		1, 1,
		1, 2,
		2, 2,
		2, 3,
	})
	y := mat.NewDense(4, 1, []float64{6, 8, 9, 11})

	report, err := Multiple("two features", X, y)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, report.CustomIntercept, 1e-9)
	assert.InDeltaSlice(t, []float64{2.0, 1.0}, report.CustomCoefficients, 1e-9)

	assert.InDelta(t, 0.0, report.InterceptDelta(), 1e-8)
	for i, d := range report.CoefficientDeltas() {
		assert.InDelta(t, 0.0, d, 1e-8, "coefficient %d", i)
	}
}

func TestMultipleSingular(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{
		1, 2,
		2, 4,
		3, 6,
	})
	y := mat.NewDense(3, 1, []float64{1, 2, 3})

	_, err := Multiple("collinear", X, y)
	assert.Error(t, err)
}

func TestReportTablePrint(t *testing.T) {
	report := &Report{
		Name:                  "demo",
		CustomCoefficients:    []float64{2.0},
		CustomIntercept:       0.5,
		ReferenceCoefficients: []float64{2.0},
		ReferenceIntercept:    0.5,
	}

	var buf bytes.Buffer
	require.NoError(t, report.TablePrint(&buf))

	out := buf.String()
	assert.Contains(t, out, "Comparison: demo")
	assert.Contains(t, out, "intercept")
	assert.Contains(t, out, "coef[0]")
}
