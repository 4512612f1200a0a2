package model

// EstimatorState represents the training state of a model.
type EstimatorState int

const (
	// NotFitted means the model has not been trained yet.
	NotFitted EstimatorState = iota
	// Fitted means the model has been trained.
	Fitted
)

// BaseEstimator is the base struct embedded by every model. It makes the
// fitted/unfitted distinction an explicit state rather than a pair of
// nullable parameter fields, so a model can never be observed "half fit".
type BaseEstimator struct {
	state EstimatorState
}

// IsFitted reports whether the model has been trained.
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted marks the model as trained.
func (e *BaseEstimator) SetFitted() {
	e.state = Fitted
}

// Reset returns the model to its untrained state.
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
}
