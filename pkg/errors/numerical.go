package errors

import (
	"fmt"
	"math"
)

// CheckNumericalStability checks if values contain NaN or Inf
// and returns an error if numerical instability is detected.
func CheckNumericalStability(operation string, values []float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewNumericalInstabilityError(operation, values)
		}
	}
	return nil
}

// CheckScalar checks a single scalar value for numerical instability.
func CheckScalar(operation string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NewNumericalInstabilityError(operation, []float64{value})
	}
	return nil
}

// NumericalInstabilityError reports that a computation produced NaN or Inf.
type NumericalInstabilityError struct {
	Operation string    // operation where the instability occurred
	Values    []float64 // the offending values
}

func (e *NumericalInstabilityError) Error() string {
	valStr := ""
	for i, v := range e.Values {
		if i > 0 {
			valStr += ", "
		}
		if i >= 5 {
			valStr += "..."
			break
		}
		valStr += fmt.Sprintf("%.6g", v)
	}
	return fmt.Sprintf("linreg: numerical instability detected in %s. Values: [%s]", e.Operation, valStr)
}

// NewNumericalInstabilityError creates a new NumericalInstabilityError.
func NewNumericalInstabilityError(operation string, values []float64) error {
	err := &NumericalInstabilityError{
		Operation: operation,
		Values:    values,
	}
	return WithStack(err)
}
