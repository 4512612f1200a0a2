package model

import "gonum.org/v1/gonum/mat"

// SimpleFitter is a model trained on a single predictor sequence.
type SimpleFitter interface {
	// FitSimple trains the model on one predictor and its responses.
	FitSimple(x, y []float64) error
}

// MultipleFitter is a model trained on an n×k observation matrix.
type MultipleFitter interface {
	// FitMultiple trains the model on k predictors and a response column.
	FitMultiple(X, y mat.Matrix) error
}

// SimplePredictor produces predictions from a single predictor sequence.
type SimplePredictor interface {
	// PredictSimple returns predicted responses for the given predictor values.
	PredictSimple(x []float64) ([]float64, error)
}

// MultiplePredictor produces predictions from an n×k observation matrix.
type MultiplePredictor interface {
	// PredictMultiple returns predicted responses for the given observations.
	PredictMultiple(X mat.Matrix) (*mat.VecDense, error)
}

// LinearModel exposes the parameters of a fitted linear model.
type LinearModel interface {
	// Coefficients returns the fitted coefficients, one per predictor.
	Coefficients() []float64
	// Intercept returns the fitted intercept.
	Intercept() float64
	// Score computes the coefficient of determination on the given data.
	Score(X, y mat.Matrix) (float64, error)
}
