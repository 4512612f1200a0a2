package model

import "testing"

func TestBaseEstimatorStateTransitions(t *testing.T) {
	var e BaseEstimator

	if e.IsFitted() {
		t.Error("new estimator should not be fitted")
	}

	e.SetFitted()
	if !e.IsFitted() {
		t.Error("estimator should be fitted after SetFitted")
	}

	e.Reset()
	if e.IsFitted() {
		t.Error("estimator should not be fitted after Reset")
	}
}
