// Package errors provides error handling and the warning system for the
// whole project. It is inspired by scikit-learn's warning/exception system
// and carries structured error information suitable for logging.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================

var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// The default handler logs to standard error.
		log.Printf("linreg-Warning: %v\n", w)
	}
	// zerolog warn hook, injected lazily to avoid an import cycle with pkg/log.
	zerologWarnFunc func(warning error)
)

// SetWarningHandler sets the warning handler for the whole library. This
// controls how warnings such as UndefinedMetricWarning are processed.
//
// Example:
//
//	errors.SetWarningHandler(func(w error) {
//	    // ignore warnings
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc installs the zerolog warning function (injected from
// pkg/log to avoid a circular import).
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn raises a warning. When zerolog is available the warning is emitted as
// a structured log event, otherwise the plain handler is used.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	scikit-learn compatible warning types
//
// ===========================================================================

// UndefinedMetricWarning is raised when an evaluation metric cannot be
// computed meaningfully. For example R² when the true responses have zero
// variance: the division by a zero total sum of squares is still performed
// and its degenerate result returned, but the caller is warned.
type UndefinedMetricWarning struct {
	Metric    string
	Condition string
	Result    float64 // the value returned under this condition
}

func (w *UndefinedMetricWarning) Error() string {
	return fmt.Sprintf("'%s' is ill-defined and being set to %f due to %s.", w.Metric, w.Result, w.Condition)
}

// MarshalZerologObject adds structured warning information to a zerolog event.
func (w *UndefinedMetricWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("metric", w.Metric).
		Str("condition", w.Condition).
		Float64("result", w.Result).
		Str("type", "UndefinedMetricWarning")
}

// NewUndefinedMetricWarning creates a new UndefinedMetricWarning.
func NewUndefinedMetricWarning(metric, condition string, result float64) *UndefinedMetricWarning {
	return &UndefinedMetricWarning{Metric: metric, Condition: condition, Result: result}
}

// ConstantInputWarning is raised when an input variable has zero variance,
// which makes closed-form regression parameters degenerate (±Inf or NaN).
// The parameters are stored unchanged; only the warning flags the condition.
type ConstantInputWarning struct {
	Op       string
	Variable string
}

func (w *ConstantInputWarning) Error() string {
	return fmt.Sprintf("%s: input '%s' is constant; fitted parameters are not finite", w.Op, w.Variable)
}

// MarshalZerologObject adds structured warning information to a zerolog event.
func (w *ConstantInputWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("operation", w.Op).
		Str("variable", w.Variable).
		Str("type", "ConstantInputWarning")
}

// NewConstantInputWarning creates a new ConstantInputWarning.
func NewConstantInputWarning(op, variable string) *ConstantInputWarning {
	return &ConstantInputWarning{Op: op, Variable: variable}
}

// ===========================================================================
//
//	Structured error types
//
// ===========================================================================

// NotFittedError is returned when Predict or Score is called on a model that
// has not been fitted yet.
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("linreg: %s: this model is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a new NotFittedError with a stack trace attached.
func NewNotFittedError(modelName, method string) error {
	err := &NotFittedError{ModelName: modelName, Method: method}
	return errors.WithStack(err)
}

// DimensionError is returned when input data has an unexpected dimension.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) Error() string {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("linreg: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName).
		Str("type", "DimensionError")
}

// NewDimensionError creates a new DimensionError with a stack trace attached.
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValueError is returned when an argument value is inappropriate or invalid,
// for example an empty observation set.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("linreg: %s: %s", e.Op, e.Message)
}

// NewValueError creates a new ValueError with a stack trace attached.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ModelError is a general error concerning a model operation.
type ModelError struct {
	Op   string
	Kind string
	Err  error
}

func (e *ModelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("linreg: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("linreg: %s: %s", e.Op, e.Kind)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// NewModelError creates a new ModelError with a stack trace attached.
func NewModelError(op, kind string, err error) error {
	modelErr := &ModelError{Op: op, Kind: kind, Err: err}
	return errors.WithStack(modelErr)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches the target error.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As reports whether err can be cast to the target type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an existing error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an existing error with a format string.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack attaches a stack trace to an error.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Common sentinel errors
//
// ===========================================================================

var (
	// ErrEmptyData is returned when empty data is passed to an operation.
	ErrEmptyData = New("empty data")

	// ErrSingularMatrix is returned when the design matrix is singular,
	// which happens with perfectly collinear predictors or n <= k.
	ErrSingularMatrix = New("singular matrix")
)
