package board

import (
	"errors"
	"fmt"
)

// Conversion failures. Constructors wrap them in a *SquareError, so test
// with errors.Is.
var (
	ErrOutOfRange     = errors.New("square index out of range 0-63")
	ErrInvalidLength  = errors.New("square name must be exactly 2 characters")
	ErrInvalidFile    = errors.New("square file must be a-h or A-H")
	ErrInvalidRank    = errors.New("square rank must be 1-8")
	ErrNotASingleton  = errors.New("square set must contain exactly one square")
	ErrMaskOutOfRange = errors.New("square set mask exceeds 64 board cells")
	ErrNoInput        = errors.New("no square given")
)

// SquareError records a failed conversion and the input that caused it.
type SquareError struct {
	Input string
	Err   error
}

func (e *SquareError) Error() string {
	return fmt.Sprintf("invalid square %q: %v", e.Input, e.Err)
}

func (e *SquareError) Unwrap() error {
	return e.Err
}
