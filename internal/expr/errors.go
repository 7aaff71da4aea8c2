package expr

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned when a divisor evaluates to zero, including
// zero raised to a negative power.
var ErrDivisionByZero = errors.New("division by zero")

// SyntaxError describes malformed input. Pos is a zero-based byte offset.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at position %d: %s", e.Pos+1, e.Msg)
}

// UnknownNameError is returned for identifiers outside the allowlist.
type UnknownNameError struct {
	Name string
	Pos  int
}

func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("name %q is not defined", e.Name)
}
