package plot

import (
	"errors"
	"fmt"
	"math"
)

// ErrEmptyInput is returned when the expression is blank after trimming.
var ErrEmptyInput = errors.New("empty expression")

// EvaluationError reports a formula that could not be parsed or that failed
// while being evaluated. X is NaN when the failure happened at parse time.
type EvaluationError struct {
	Expression string
	X          float64
	Cause      error
}

func (e *EvaluationError) Error() string {
	if math.IsNaN(e.X) {
		return fmt.Sprintf("invalid function %q: %v", e.Expression, e.Cause)
	}
	return fmt.Sprintf("invalid function %q at x=%g: %v", e.Expression, e.X, e.Cause)
}

func (e *EvaluationError) Unwrap() error {
	return e.Cause
}
