package turing

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds   = errors.New("head out of bounds")
	ErrUnknownSymbol = errors.New("symbol not in alphabet")
	ErrUnknownState  = errors.New("next state not in table")
	ErrRowLength     = errors.New("transition row length does not match alphabet")
	ErrStepLimit     = errors.New("step limit reached")
	ErrHalted        = errors.New("machine halted")
)

// LoadError reports a malformed program description. Line is 1-based; 0 means
// the error is not tied to a single line.
type LoadError struct {
	Line int
	Err  error
}

func (e *LoadError) Error() string {
	if e.Line <= 0 {
		return fmt.Sprintf("load program: %v", e.Err)
	}
	return fmt.Sprintf("load program: line %d: %v", e.Line, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
