// Package pattern parses restricted character-class descriptions into
// character-code ranges.
//
// The syntax is the body of a regular-expression character class:
//
//	a-z0-9_    ranges and literals
//	^a-z       leading ^ negates the class
//	[a-z]      an optional enclosing bracket pair
//	\-  \\ \^  backslash escapes the next character
//
// A dash at the start or end of the body is a literal dash. All parsing
// happens here, at construction time; a malformed description is reported
// as an error and never deferred to match time.
package pattern

import (
	"errors"
	"fmt"

	"github.com/coregx/charmatch/rangeset"
)

// ErrInvalidPattern indicates a malformed character-class description.
var ErrInvalidPattern = errors.New("invalid character-class pattern")

// ParseError wraps a pattern parse failure with the offending input and
// the byte position where parsing stopped.
type ParseError struct {
	Pattern string
	Pos     int
	Msg     string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q at %d: %s", e.Pattern, e.Pos, e.Msg)
}

// Unwrap returns ErrInvalidPattern so callers can errors.Is against it.
func (e *ParseError) Unwrap() error {
	return ErrInvalidPattern
}

// Class is the parsed form of a character-class description: the raw
// ranges it names (unnormalized, in source order) and whether the class
// was negated with a leading ^.
type Class struct {
	Negated bool
	Ranges  []rangeset.Range
}

// Parse parses a character-class body. An empty body yields a Class with
// no ranges, which matches no code (or every code when negated).
func Parse(s string) (Class, error) {
	body := s

	// Strip one enclosing bracket pair. A lone opening or closing
	// bracket is an unbalanced bracket expression.
	if len(body) > 0 && body[0] == '[' {
		if len(body) < 2 || body[len(body)-1] != ']' {
			return Class{}, &ParseError{Pattern: s, Pos: len(s), Msg: "unbalanced bracket expression"}
		}
		body = body[1 : len(body)-1]
	} else if len(body) > 0 && body[len(body)-1] == ']' {
		return Class{}, &ParseError{Pattern: s, Pos: 0, Msg: "unbalanced bracket expression"}
	}

	var cls Class
	runes := []rune(body)
	if len(runes) > 0 && runes[0] == '^' {
		cls.Negated = true
		runes = runes[1:]
	}

	// Unescape into a flat code list, remembering which positions were
	// escaped so an escaped dash never acts as a range operator.
	codes := make([]rune, 0, len(runes))
	literal := make([]bool, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\\' {
			if i+1 == len(runes) {
				return Class{}, &ParseError{Pattern: s, Pos: len(s), Msg: "trailing backslash"}
			}
			i++
			codes = append(codes, runes[i])
			literal = append(literal, true)
			continue
		}
		codes = append(codes, r)
		literal = append(literal, false)
	}

	for i := 0; i < len(codes); i++ {
		// X-Y forms a range when the dash is unescaped and has a code
		// on both sides; a leading or trailing dash is a literal.
		if i+2 < len(codes) && codes[i+1] == '-' && !literal[i+1] {
			lo, hi := codes[i], codes[i+2]
			if lo > hi {
				return Class{}, &ParseError{
					Pattern: s,
					Pos:     i,
					Msg:     fmt.Sprintf("reversed range %q-%q", lo, hi),
				}
			}
			cls.Ranges = append(cls.Ranges, rangeset.New(lo, hi))
			i += 2
			continue
		}
		cls.Ranges = append(cls.Ranges, rangeset.Single(codes[i]))
	}
	return cls, nil
}
