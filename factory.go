package charmatch

import (
	"math"
	"unicode/utf8"

	"github.com/coregx/charmatch/pattern"
	"github.com/coregx/charmatch/rangeset"
)

// Any returns a matcher that matches every character code.
func Any() Matcher {
	return Matcher{kind: kindAny}
}

// None returns a matcher that matches no character code.
func None() Matcher {
	return Matcher{kind: kindNone}
}

// Is returns a matcher for exactly the code c.
func Is(c rune) Matcher {
	return Matcher{kind: kindSingle, lo: c}
}

// IsChar returns a matcher for a single character given as either a
// numeric code (rounded to the nearest integer) or a one-character string.
//
// Any other value is a construction-time error wrapping ErrInvalidLiteral:
// a multi-character or empty string, a negative or non-finite number, or a
// value of any other type.
//
// Example:
//
//	m, err := charmatch.IsChar("x")
//	m, err = charmatch.IsChar(120) // same matcher
func IsChar(value any) (Matcher, error) {
	switch v := value.(type) {
	case rune: // also int32
		if v < 0 {
			return Matcher{}, &LiteralError{Value: value}
		}
		return Is(v), nil
	case int:
		if v < 0 || v > utf8.MaxRune {
			return Matcher{}, &LiteralError{Value: value}
		}
		return Is(rune(v)), nil
	case float64:
		r := math.Round(v)
		if math.IsNaN(r) || r < 0 || r > utf8.MaxRune {
			return Matcher{}, &LiteralError{Value: value}
		}
		return Is(rune(r)), nil
	case string:
		c, size := utf8.DecodeRuneInString(v)
		if size == 0 || size != len(v) || c == utf8.RuneError && size == 1 {
			return Matcher{}, &LiteralError{Value: value}
		}
		return Is(c), nil
	}
	return Matcher{}, &LiteralError{Value: value}
}

// MustChar is like IsChar but panics on an invalid literal. Useful for
// characters known to be valid at compile time.
func MustChar(value any) Matcher {
	m, err := IsChar(value)
	if err != nil {
		panic(err.Error())
	}
	return m
}

// InRange returns a matcher for all codes in [lo, hi] inclusive.
// Panics if lo > hi, since a reversed range indicates a programming error.
func InRange(lo, hi rune) Matcher {
	if lo > hi {
		panic("charmatch: reversed range")
	}
	return Matcher{kind: kindRange, lo: lo, hi: hi}
}

// CharSet returns a matcher for the set of characters in s, in canonical
// optimized form. Duplicates are allowed.
//
// Example:
//
//	vowels := charmatch.CharSet("aeiou")
func CharSet(s string) Matcher {
	ranges := make([]rangeset.Range, 0, len(s))
	for _, c := range s {
		ranges = append(ranges, rangeset.Single(c))
	}
	return FromRanges(ranges...)
}

// Pattern returns a matcher for a restricted character-class description:
// ranges like "a-z", literal characters, a leading "^" negation marker,
// backslash escapes and an optional enclosing bracket pair.
//
// The description is parsed once here; a malformed description is a
// construction-time error wrapping ErrInvalidPattern. The resulting class
// is expanded into the optimizer's canonical form.
//
// Example:
//
//	ident, err := charmatch.Pattern("a-zA-Z0-9_")
//	noDigit, err := charmatch.Pattern("^0-9")
func Pattern(p string) (Matcher, error) {
	cls, err := pattern.Parse(p)
	if err != nil {
		return Matcher{}, err
	}
	m := FromRanges(cls.Ranges...)
	if cls.Negated {
		m = m.Negate()
	}
	return m, nil
}

// MustPattern is like Pattern but panics on a malformed description.
func MustPattern(p string) Matcher {
	m, err := Pattern(p)
	if err != nil {
		panic(err.Error())
	}
	return m
}

// ASCII returns a matcher for the 7-bit ASCII codes 0-127.
func ASCII() Matcher {
	return InRange(0, 127)
}

// Digit returns a matcher for the decimal digits '0'-'9'.
func Digit() Matcher {
	return InRange('0', '9')
}

// Letter returns a matcher for the ASCII letters 'A'-'Z' and 'a'-'z'.
func Letter() Matcher {
	return Matcher{kind: kindLetter}
}

// UpperCaseLetter returns a matcher for 'A'-'Z'.
func UpperCaseLetter() Matcher {
	return Matcher{kind: kindUpperLetter}
}

// LowerCaseLetter returns a matcher for 'a'-'z'.
func LowerCaseLetter() Matcher {
	return Matcher{kind: kindLowerLetter}
}

// LetterOrDigit returns a matcher for ASCII letters and decimal digits.
func LetterOrDigit() Matcher {
	return Matcher{kind: kindLetterOrDigit}
}

// Whitespace returns a matcher for whitespace codes: the ASCII space
// controls plus the Unicode space separators (see isSpaceCode).
func Whitespace() Matcher {
	return Matcher{kind: kindWhitespace}
}
