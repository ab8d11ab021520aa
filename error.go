package charmatch

import (
	"errors"
	"fmt"

	"github.com/coregx/charmatch/pattern"
)

// Construction-time errors. Matching itself never fails.
var (
	// ErrInvalidLiteral indicates a single-character coercion received a
	// value that does not denote exactly one character code.
	ErrInvalidLiteral = errors.New("invalid character literal")

	// ErrInvalidPattern indicates a malformed character-class description.
	// It is the same sentinel the pattern package wraps, so errors.Is
	// works against errors returned by Pattern.
	ErrInvalidPattern = pattern.ErrInvalidPattern
)

// LiteralError wraps an invalid single-character literal with the value
// that was rejected.
type LiteralError struct {
	Value any
}

// Error implements the error interface.
func (e *LiteralError) Error() string {
	return fmt.Sprintf("charmatch: not a single character: %#v", e.Value)
}

// Unwrap returns ErrInvalidLiteral.
func (e *LiteralError) Unwrap() error {
	return ErrInvalidLiteral
}
