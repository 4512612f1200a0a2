package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/edstats/linreg/pkg/errors"
)

// Metric names returned by EvaluateRegression.
const (
	MetricR2   = "R2"
	MetricRMSE = "RMSE"
	MetricMAE  = "MAE"
)

// EvaluateRegression computes R², RMSE and MAE for the given true and
// predicted responses and returns them keyed by metric name. All three keys
// are always present on success.
//
// Mismatched input lengths fail with a dimension error rather than silently
// truncating. Zero variance in yTrue makes R² ill-defined; the degenerate
// ±Inf/NaN value is returned unchanged and an UndefinedMetricWarning is
// emitted. NaN and Inf in the inputs propagate into the results.
func EvaluateRegression(yTrue, yPred []float64) (map[string]float64, error) {
	n := len(yTrue)
	if n == 0 {
		return nil, errors.NewValueError("EvaluateRegression", "empty input")
	}
	if len(yPred) != n {
		return nil, errors.NewDimensionError("EvaluateRegression", n, len(yPred), 0)
	}

	var yMean float64
	for _, v := range yTrue {
		yMean += v
	}
	yMean /= float64(n)

	// RSS, TSS, and absolute-error sums in one pass.
	var rss, tss, absSum float64
	for i := 0; i < n; i++ {
		diff := yTrue[i] - yPred[i]
		rss += diff * diff
		absSum += math.Abs(diff)

		dev := yTrue[i] - yMean
		tss += dev * dev
	}

	r2 := 1 - rss/tss
	if tss == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning(MetricR2, "zero total sum of squares (no variance in yTrue)", r2))
	}

	return map[string]float64{
		MetricR2:   r2,
		MetricRMSE: math.Sqrt(rss / float64(n)),
		MetricMAE:  absSum / float64(n),
	}, nil
}

// MSE computes the mean squared error.
func MSE(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("MSE", "empty vector")
	}

	if yPred.Len() != n {
		return 0, errors.NewDimensionError("MSE", n, yPred.Len(), 0)
	}

	// MSE = (1/n) * Σ(yTrue - yPred)²
	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue.AtVec(i) - yPred.AtVec(i)
		sum += diff * diff
	}

	return sum / float64(n), nil
}

// RMSE computes the root mean squared error.
func RMSE(yTrue, yPred *mat.VecDense) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE computes the mean absolute error.
func MAE(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("MAE", "empty vector")
	}

	if yPred.Len() != n {
		return 0, errors.NewDimensionError("MAE", n, yPred.Len(), 0)
	}

	// MAE = (1/n) * Σ|yTrue - yPred|
	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue.AtVec(i) - yPred.AtVec(i)
		sum += math.Abs(diff)
	}

	return sum / float64(n), nil
}

// R2Score computes the coefficient of determination (R²). Unlike
// EvaluateRegression it treats zero variance in yTrue as an error, for
// callers that need a usable scalar rather than parity with the map form.
func R2Score(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("R2Score", "empty vector")
	}

	if yPred.Len() != n {
		return 0, errors.NewDimensionError("R2Score", n, yPred.Len(), 0)
	}

	var yMean float64
	for i := 0; i < n; i++ {
		yMean += yTrue.AtVec(i)
	}
	yMean /= float64(n)

	var tss, rss float64
	for i := 0; i < n; i++ {
		yTrueVal := yTrue.AtVec(i)
		yPredVal := yPred.AtVec(i)

		tss += (yTrueVal - yMean) * (yTrueVal - yMean)
		rss += (yTrueVal - yPredVal) * (yTrueVal - yPredVal)
	}

	if tss == 0 {
		return 0, errors.Newf("R2Score: total sum of squares is zero (no variance in yTrue)")
	}

	return 1 - rss/tss, nil
}
