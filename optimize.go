package charmatch

import "github.com/coregx/charmatch/rangeset"

// FromRanges builds the canonical minimal matcher for the union of the
// given ranges. The input may be unsorted and may contain overlapping or
// adjacent ranges.
//
// The ranges are normalized (sorted, merged) and the result classified:
//
//	no ranges            -> None
//	one range, one code  -> Is
//	one range            -> InRange
//	two or more ranges   -> a multi-range matcher with O(log n) lookup
//
// For every code c, FromRanges(rs...).Match(c) is true exactly when some
// input range contains c. FromRanges is idempotent on its own output's
// ranges.
func FromRanges(ranges ...rangeset.Range) Matcher {
	norm := rangeset.Normalize(ranges)
	switch {
	case len(norm) == 0:
		return None()
	case len(norm) == 1 && norm[0].Lo == norm[0].Hi:
		return Is(norm[0].Lo)
	case len(norm) == 1:
		return InRange(norm[0].Lo, norm[0].Hi)
	default:
		return Matcher{kind: kindMultiRange, set: rangeset.NewSet(norm)}
	}
}

// Ranges returns the ascending disjoint ranges of a range-built matcher
// and true, or nil and false for matchers that are not built from ranges.
// Useful for re-optimization and inspection.
func (m Matcher) Ranges() ([]rangeset.Range, bool) {
	switch m.kind {
	case kindNone:
		return nil, true
	case kindSingle:
		return []rangeset.Range{rangeset.Single(m.lo)}, true
	case kindRange:
		return []rangeset.Range{rangeset.New(m.lo, m.hi)}, true
	case kindMultiRange:
		return m.set.Ranges(), true
	}
	return nil, false
}
