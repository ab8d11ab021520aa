// Package charmatch provides composable, immutable predicates over character
// codes and string operations driven by them.
//
// A Matcher answers one question: does this character code belong to the
// class? Matchers are built from named factories, combined with Or and
// Negate, and then applied to strings with scan operations such as CountIn,
// TrimFrom, CollapseFrom and RetainFrom.
//
// Basic usage:
//
//	// Count the digits in a string
//	n := charmatch.Digit().CountIn("a1b22c333") // 6
//
//	// Collapse runs of whitespace
//	s := charmatch.Whitespace().CollapseFrom("a   b    c", "_") // "a_b_c"
//
//	// Combine classes
//	ident := charmatch.MustPattern("a-zA-Z0-9_")
//	ok := ident.EveryOf("my_name42") // true
//
// Matchers are immutable after construction and safe to share across
// goroutines without synchronization. Matching never fails and never
// allocates; all validation happens in the constructors.
package charmatch

import (
	"fmt"
	"strings"

	"github.com/coregx/charmatch/rangeset"
)

// matcherKind identifies the variant stored in a Matcher.
type matcherKind uint8

const (
	kindAny matcherKind = iota
	kindNone
	kindSingle
	kindRange
	kindMultiRange
	kindTable
	kindLetter
	kindUpperLetter
	kindLowerLetter
	kindLetterOrDigit
	kindWhitespace
	kindNegate
	kindDisjunction
)

// Matcher is an immutable predicate over character codes.
//
// The zero value is the Any matcher. Two matchers are behaviorally equal
// when they match the same set of codes; FromRanges guarantees a canonical
// structural form for range-built matchers.
//
// A Matcher holds no mutable state, so a single instance may be evaluated
// concurrently from any number of goroutines.
type Matcher struct {
	kind matcherKind

	// lo/hi carry the code for kindSingle (lo) and the bounds for kindRange.
	lo rune
	hi rune

	set     *rangeset.Set // kindMultiRange
	table   *lookupTable  // kindTable
	inner   *Matcher      // kindNegate
	members []Matcher     // kindDisjunction
}

// lookupTable is the character-set variant: a dense membership table for
// codes below 256 with the original matcher kept as fallback above.
type lookupTable struct {
	ascii    [256]bool
	fallback Matcher
}

// Match reports whether the character code c belongs to the matcher's
// class. It is total over all codes, has no side effects and cannot fail.
func (m Matcher) Match(c rune) bool {
	switch m.kind {
	case kindAny:
		return true
	case kindNone:
		return false
	case kindSingle:
		return c == m.lo
	case kindRange:
		return m.lo <= c && c <= m.hi
	case kindMultiRange:
		return m.set.Contains(c)
	case kindTable:
		if c >= 0 && c < 256 {
			return m.table.ascii[c]
		}
		return m.table.fallback.Match(c)
	case kindLetter:
		return isASCIIUpper(c) || isASCIILower(c)
	case kindUpperLetter:
		return isASCIIUpper(c)
	case kindLowerLetter:
		return isASCIILower(c)
	case kindLetterOrDigit:
		return isASCIIUpper(c) || isASCIILower(c) || isASCIIDigit(c)
	case kindWhitespace:
		return isSpaceCode(c)
	case kindNegate:
		return !m.inner.Match(c)
	case kindDisjunction:
		for _, member := range m.members {
			if member.Match(c) {
				return true
			}
		}
		return false
	}
	return false
}

// String returns a variant-shaped description for diagnostics, e.g.
// "range('a','z')" or "or(is('x'), digit)".
func (m Matcher) String() string {
	switch m.kind {
	case kindAny:
		return "any"
	case kindNone:
		return "none"
	case kindSingle:
		return fmt.Sprintf("is(%q)", m.lo)
	case kindRange:
		return fmt.Sprintf("range(%q,%q)", m.lo, m.hi)
	case kindMultiRange:
		return fmt.Sprintf("multiRange(%d)", m.set.Len())
	case kindTable:
		return fmt.Sprintf("table(%s)", m.table.fallback)
	case kindLetter:
		return "letter"
	case kindUpperLetter:
		return "upperCaseLetter"
	case kindLowerLetter:
		return "lowerCaseLetter"
	case kindLetterOrDigit:
		return "letterOrDigit"
	case kindWhitespace:
		return "whitespace"
	case kindNegate:
		return fmt.Sprintf("negate(%s)", m.inner)
	case kindDisjunction:
		parts := make([]string, len(m.members))
		for i, member := range m.members {
			parts[i] = member.String()
		}
		return "or(" + strings.Join(parts, ", ") + ")"
	}
	return "unknown"
}

func isASCIIUpper(c rune) bool { return 'A' <= c && c <= 'Z' }
func isASCIILower(c rune) bool { return 'a' <= c && c <= 'z' }
func isASCIIDigit(c rune) bool { return '0' <= c && c <= '9' }

// isSpaceCode reports whether c is a whitespace code. The set covers the
// ASCII space controls plus the Unicode space separators, NEL, NBSP,
// narrow/medium math spaces, line/paragraph separators, ideographic space
// and the BOM.
func isSpaceCode(c rune) bool {
	switch {
	case c == 0x20:
		return true
	case 0x09 <= c && c <= 0x0d:
		return true
	case 0x2000 <= c && c <= 0x200a:
		return true
	}
	switch c {
	case 0x85, 0xa0, 0x1680, 0x2028, 0x2029, 0x202f, 0x205f, 0x3000, 0xfeff:
		return true
	}
	return false
}
