package linear

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/edstats/linreg/core/model"
	"github.com/edstats/linreg/core/parallel"
	"github.com/edstats/linreg/pkg/errors"
)

// Regressor is an ordinary least-squares linear regression model supporting
// a single predictor (closed-form slope/intercept) or multiple predictors
// (normal equations). Coefficients and intercept are set together by exactly
// one successful fit call and are never touched by prediction or scoring; a
// fresh fit fully overwrites them.
type Regressor struct {
	model.BaseEstimator
	weights   *mat.VecDense // fitted coefficients, one per predictor
	intercept float64
	nFeatures int
	solver    Solver
}

var (
	_ model.SimpleFitter      = (*Regressor)(nil)
	_ model.MultipleFitter    = (*Regressor)(nil)
	_ model.SimplePredictor   = (*Regressor)(nil)
	_ model.MultiplePredictor = (*Regressor)(nil)
	_ model.LinearModel       = (*Regressor)(nil)
)

// NewRegressor creates a new, unfitted Regressor.
func NewRegressor(opts ...Option) *Regressor {
	r := &Regressor{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FitSimple fits a single-predictor model using the closed-form estimator.
//
// Sample covariance and variance both use the population divisor n, matching
// the closed-form slope derivation:
//
//	slope = cov(x, y) / var(x)
//	intercept = mean(y) - slope*mean(x)
//
// n >= 2 is the caller's responsibility. A constant predictor (zero
// variance) yields non-finite parameters; they are stored unchanged and a
// ConstantInputWarning is emitted.
func (r *Regressor) FitSimple(x, y []float64) error {
	if len(x) == 0 {
		return errors.NewModelError("Regressor.FitSimple", "empty data", errors.ErrEmptyData)
	}
	if len(y) != len(x) {
		return errors.NewDimensionError("Regressor.FitSimple", len(x), len(y), 0)
	}

	n := float64(len(x))

	var xMean, yMean float64
	for i := range x {
		xMean += x[i]
		yMean += y[i]
	}
	xMean /= n
	yMean /= n

	var cov, varX float64
	for i := range x {
		dx := x[i] - xMean
		cov += dx * (y[i] - yMean)
		varX += dx * dx
	}
	cov /= n
	varX /= n

	slope := cov / varX
	if math.IsInf(slope, 0) || math.IsNaN(slope) {
		errors.Warn(errors.NewConstantInputWarning("Regressor.FitSimple", "x"))
	}

	r.intercept = yMean - slope*xMean
	r.weights = mat.NewVecDense(1, []float64{slope})
	r.nFeatures = 1
	r.SetFitted()

	return nil
}

// FitSimpleMatrix flattens a matrix-shaped predictor into a single sequence
// (row-major) and fits it with FitSimple. This is a defensive reshape for
// callers holding 1×n or n×1 data, not a multi-feature path.
func (r *Regressor) FitSimpleMatrix(X mat.Matrix, y []float64) error {
	rows, cols := X.Dims()
	x := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			x = append(x, X.At(i, j))
		}
	}
	return r.FitSimple(x, y)
}

// FitMultiple fits a multi-predictor model by solving the normal equations
// on the design matrix [1, X]. The first solved element becomes the
// intercept; the rest become the coefficients in input column order.
//
// X is n×k with n > k required for invertibility. Perfectly collinear
// predictors (or n <= k) make XᵀX singular, which surfaces as a ModelError
// wrapping ErrSingularMatrix. Parameters are untouched on any error.
func (r *Regressor) FitMultiple(X, y mat.Matrix) error {
	rows, cols := X.Dims()
	ry, cy := y.Dims()

	if rows == 0 || cols == 0 {
		return errors.NewModelError("Regressor.FitMultiple", "empty data", errors.ErrEmptyData)
	}
	if ry != rows {
		return errors.NewDimensionError("Regressor.FitMultiple", rows, ry, 0)
	}
	if cy != 1 {
		return errors.NewValueError("Regressor.FitMultiple", "y must be a column vector")
	}

	// Design matrix with a leading bias column: [1, X].
	XDesign := mat.NewDense(rows, cols+1, nil)

	// Below this many rows the fill runs sequentially.
	const parallelThreshold = 1000

	parallel.ParallelizeWithThreshold(rows, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			XDesign.Set(i, 0, 1.0)
			for j := 0; j < cols; j++ {
				XDesign.Set(i, j+1, X.At(i, j))
			}
		}
	})

	yVec := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		yVec.SetVec(i, y.At(i, 0))
	}

	var solved *mat.VecDense
	var err error
	switch r.solver {
	case SolverQR:
		solved, err = solveQR(XDesign, yVec)
	default:
		solved, err = solveNormalEquations(XDesign, yVec)
	}
	if err != nil {
		return err
	}

	r.intercept = solved.AtVec(0)
	r.weights = mat.NewVecDense(cols, nil)
	for i := 0; i < cols; i++ {
		r.weights.SetVec(i, solved.AtVec(i+1))
	}
	r.nFeatures = cols
	r.SetFitted()

	return nil
}

// solveNormalEquations computes w = (XᵀX)⁻¹ Xᵀy with an explicit inverse.
func solveNormalEquations(X *mat.Dense, y *mat.VecDense) (*mat.VecDense, error) {
	var XT mat.Dense
	XT.CloneFrom(X.T())

	var XTX mat.Dense
	XTX.Mul(&XT, X)

	var XTXInv mat.Dense
	if err := XTXInv.Inverse(&XTX); err != nil {
		return nil, errors.NewModelError("Regressor.FitMultiple", "singular matrix", errors.ErrSingularMatrix)
	}

	var XTy mat.VecDense
	XTy.MulVec(&XT, y)

	_, cols := X.Dims()
	w := mat.NewVecDense(cols, nil)
	w.MulVec(&XTXInv, &XTy)
	return w, nil
}

// solveQR solves min ||Xw - y|| via QR factorization.
func solveQR(X *mat.Dense, y *mat.VecDense) (*mat.VecDense, error) {
	var qr mat.QR
	qr.Factorize(X)

	_, cols := X.Dims()
	var solved mat.Dense
	if err := qr.SolveTo(&solved, false, y); err != nil {
		return nil, errors.NewModelError("Regressor.FitMultiple", "singular matrix", errors.ErrSingularMatrix)
	}

	w := mat.NewVecDense(cols, nil)
	for i := 0; i < cols; i++ {
		w.SetVec(i, solved.At(i, 0))
	}
	return w, nil
}

// PredictSimple predicts responses for a single-predictor input. The model
// must have been fitted with exactly one predictor.
func (r *Regressor) PredictSimple(x []float64) ([]float64, error) {
	if !r.IsFitted() {
		return nil, errors.NewNotFittedError("Regressor", "PredictSimple")
	}
	if r.nFeatures != 1 {
		return nil, errors.NewDimensionError("Regressor.PredictSimple", r.nFeatures, 1, 1)
	}

	slope := r.weights.AtVec(0)
	preds := make([]float64, len(x))
	for i, v := range x {
		preds[i] = slope*v + r.intercept
	}
	return preds, nil
}

// PredictMultiple predicts responses for an n×k input matrix. The column
// count must match the number of predictors the model was fitted with.
func (r *Regressor) PredictMultiple(X mat.Matrix) (*mat.VecDense, error) {
	if !r.IsFitted() {
		return nil, errors.NewNotFittedError("Regressor", "PredictMultiple")
	}

	rows, cols := X.Dims()
	if cols != r.nFeatures {
		return nil, errors.NewDimensionError("Regressor.PredictMultiple", r.nFeatures, cols, 1)
	}

	preds := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		pred := r.intercept
		for j := 0; j < cols; j++ {
			pred += X.At(i, j) * r.weights.AtVec(j)
		}
		preds.SetVec(i, pred)
	}
	return preds, nil
}

// Coefficients returns the fitted coefficients, one per predictor, or nil
// when the model is unfitted.
func (r *Regressor) Coefficients() []float64 {
	if r.weights == nil {
		return nil
	}

	coefs := make([]float64, r.weights.Len())
	for i := 0; i < r.weights.Len(); i++ {
		coefs[i] = r.weights.AtVec(i)
	}
	return coefs
}

// Intercept returns the fitted intercept, or 0 when the model is unfitted.
func (r *Regressor) Intercept() float64 {
	if !r.IsFitted() {
		return 0
	}
	return r.intercept
}

// NumFeatures returns the number of predictors the model was fitted with.
func (r *Regressor) NumFeatures() int {
	return r.nFeatures
}

// Score computes the coefficient of determination (R²) on the given data.
func (r *Regressor) Score(X, y mat.Matrix) (float64, error) {
	if !r.IsFitted() {
		return 0, errors.NewNotFittedError("Regressor", "Score")
	}

	yPred, err := r.PredictMultiple(X)
	if err != nil {
		return 0, err
	}

	rows, _ := y.Dims()
	yVec := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		yVec.SetVec(i, y.At(i, 0))
	}

	var yMean float64
	for i := 0; i < rows; i++ {
		yMean += yVec.AtVec(i)
	}
	yMean /= float64(rows)

	var tss, rss float64
	for i := 0; i < rows; i++ {
		yTrue := yVec.AtVec(i)
		diff := yTrue - yPred.AtVec(i)
		tss += (yTrue - yMean) * (yTrue - yMean)
		rss += diff * diff
	}

	if tss == 0 {
		return 0, errors.Newf("total sum of squares is zero")
	}

	return 1 - rss/tss, nil
}
