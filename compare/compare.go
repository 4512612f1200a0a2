// Package compare fits a reference estimator next to the Regressor on the
// same observations and reports how far apart the two parameter sets are.
// The reference for the simple path is gonum's closed-form
// stat.LinearRegression; the multiple path uses an independent QR
// least-squares solve. The Regressor is consumed through its public API
// only.
package compare

import (
	"fmt"
	"io"
	"math"

	"github.com/olekukonko/tablewriter"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/edstats/linreg/linear"
	"github.com/edstats/linreg/pkg/errors"
)

// Report holds the parameters fitted by the Regressor and by the reference
// estimator on the same data.
type Report struct {
	Name string

	CustomCoefficients    []float64
	CustomIntercept       float64
	ReferenceCoefficients []float64
	ReferenceIntercept    float64
}

// InterceptDelta returns |custom - reference| for the intercept.
func (r *Report) InterceptDelta() float64 {
	return math.Abs(r.CustomIntercept - r.ReferenceIntercept)
}

// CoefficientDeltas returns |custom - reference| per coefficient.
func (r *Report) CoefficientDeltas() []float64 {
	deltas := make([]float64, len(r.CustomCoefficients))
	for i := range deltas {
		deltas[i] = math.Abs(r.CustomCoefficients[i] - r.ReferenceCoefficients[i])
	}
	return deltas
}

// Simple fits the Regressor and gonum's stat.LinearRegression on a
// single-predictor dataset and returns both parameter sets.
func Simple(name string, x, y []float64) (*Report, error) {
	reg := linear.NewRegressor()
	if err := reg.FitSimple(x, y); err != nil {
		return nil, err
	}

	refIntercept, refSlope := stat.LinearRegression(x, y, nil, false)

	report := &Report{
		Name:                  name,
		CustomCoefficients:    reg.Coefficients(),
		CustomIntercept:       reg.Intercept(),
		ReferenceCoefficients: []float64{refSlope},
		ReferenceIntercept:    refIntercept,
	}
	warnOnUnstable("compare.Simple", report)
	return report, nil
}

// Multiple fits the Regressor via the normal equations and an independent QR
// least-squares solve on a multi-predictor dataset and returns both
// parameter sets.
func Multiple(name string, X, y mat.Matrix) (*Report, error) {
	reg := linear.NewRegressor()
	if err := reg.FitMultiple(X, y); err != nil {
		return nil, err
	}

	refIntercept, refCoefs, err := referenceSolve(X, y)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Name:                  name,
		CustomCoefficients:    reg.Coefficients(),
		CustomIntercept:       reg.Intercept(),
		ReferenceCoefficients: refCoefs,
		ReferenceIntercept:    refIntercept,
	}
	warnOnUnstable("compare.Multiple", report)
	return report, nil
}

// referenceSolve computes least-squares parameters for [1, X] via QR,
// without going through the Regressor.
func referenceSolve(X, y mat.Matrix) (float64, []float64, error) {
	rows, cols := X.Dims()

	XDesign := mat.NewDense(rows, cols+1, nil)
	for i := 0; i < rows; i++ {
		XDesign.Set(i, 0, 1.0)
		for j := 0; j < cols; j++ {
			XDesign.Set(i, j+1, X.At(i, j))
		}
	}

	yVec := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		yVec.SetVec(i, y.At(i, 0))
	}

	var qr mat.QR
	qr.Factorize(XDesign)

	var solved mat.Dense
	if err := qr.SolveTo(&solved, false, yVec); err != nil {
		return 0, nil, errors.NewModelError("compare.Multiple", "reference solve failed", errors.ErrSingularMatrix)
	}

	coefs := make([]float64, cols)
	for i := 0; i < cols; i++ {
		coefs[i] = solved.At(i+1, 0)
	}
	return solved.At(0, 0), coefs, nil
}

// warnOnUnstable flags reports whose parameters are not finite, which
// happens with degenerate inputs (constant predictors). The report is
// returned unchanged either way.
func warnOnUnstable(op string, r *Report) {
	values := append([]float64{r.CustomIntercept}, r.CustomCoefficients...)
	if err := errors.CheckNumericalStability(op, values); err != nil {
		errors.Warn(err)
	}
}

// TablePrint renders the comparison as a table to w.
func (r *Report) TablePrint(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Comparison: %s\n", r.Name); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Parameter", "Custom", "Reference", "Delta"})

	table.Append([]string{
		"intercept",
		fmt.Sprintf("%.6f", r.CustomIntercept),
		fmt.Sprintf("%.6f", r.ReferenceIntercept),
		fmt.Sprintf("%.2e", r.InterceptDelta()),
	})

	deltas := r.CoefficientDeltas()
	for i := range r.CustomCoefficients {
		table.Append([]string{
			fmt.Sprintf("coef[%d]", i),
			fmt.Sprintf("%.6f", r.CustomCoefficients[i]),
			fmt.Sprintf("%.6f", r.ReferenceCoefficients[i]),
			fmt.Sprintf("%.2e", deltas[i]),
		})
	}

	table.Render()
	return nil
}
