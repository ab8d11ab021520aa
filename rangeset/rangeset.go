// Package rangeset provides normalization and lookup for sets of inclusive
// character-code ranges.
//
// Normalize compacts an arbitrary collection of ranges into the minimal
// sorted, pairwise disjoint, non-adjacent form. Set stores such a form as
// parallel ascending arrays and answers membership queries by binary search,
// the same representation the unicode package uses for its range tables.
package rangeset

import "sort"

// Range is an inclusive range of character codes [Lo, Hi].
//
// A Range with Lo == Hi contains exactly one code. Lo must not exceed Hi;
// New panics otherwise since a reversed range indicates a programming error.
type Range struct {
	Lo rune
	Hi rune
}

// New returns the range [lo, hi]. Panics if lo > hi.
func New(lo, hi rune) Range {
	if lo > hi {
		panic("rangeset: reversed range")
	}
	return Range{Lo: lo, Hi: hi}
}

// Single returns the one-code range [r, r].
func Single(r rune) Range {
	return Range{Lo: r, Hi: r}
}

// Contains reports whether code c lies within the range.
func (r Range) Contains(c rune) bool {
	return r.Lo <= c && c <= r.Hi
}

// Normalize compacts ranges into canonical form: sorted ascending by Lo
// (ties by Hi), with overlapping and adjacent ranges merged into single
// contiguous runs. The result is pairwise disjoint and non-adjacent:
// for consecutive ranges a, b it holds that a.Hi+1 < b.Lo.
//
// The input slice is not modified. O(n log n) for the sort, O(n) for the
// merge sweep.
func Normalize(ranges []Range) []Range {
	if len(ranges) == 0 {
		return nil
	}

	sorted := make([]Range, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Lo != sorted[j].Lo {
			return sorted[i].Lo < sorted[j].Lo
		}
		return sorted[i].Hi < sorted[j].Hi
	})

	merged := sorted[:1]
	for _, next := range sorted[1:] {
		acc := &merged[len(merged)-1]
		if acc.Hi+1 >= next.Lo {
			// Overlapping or adjacent: extend the accumulator run.
			if next.Hi > acc.Hi {
				acc.Hi = next.Hi
			}
			continue
		}
		merged = append(merged, next)
	}
	return merged
}

// Set is an immutable set of character codes stored as parallel ascending
// arrays of range starts and stops. Membership tests are O(log n).
//
// A Set must be built from normalized ranges (see Normalize); NewSet panics
// on input that violates the disjoint ascending non-adjacent invariant.
type Set struct {
	los []rune
	his []rune
}

// NewSet builds a Set from normalized ranges. Panics if ranges is not in
// canonical form, since callers are expected to run Normalize first.
func NewSet(ranges []Range) *Set {
	s := &Set{
		los: make([]rune, len(ranges)),
		his: make([]rune, len(ranges)),
	}
	for i, r := range ranges {
		if r.Lo > r.Hi {
			panic("rangeset: reversed range")
		}
		if i > 0 && ranges[i-1].Hi+1 >= r.Lo {
			panic("rangeset: ranges not normalized")
		}
		s.los[i] = r.Lo
		s.his[i] = r.Hi
	}
	return s
}

// Contains reports whether code c belongs to the set.
//
// Binary search for the first range whose stop is >= c, then a single
// start comparison. O(log n).
func (s *Set) Contains(c rune) bool {
	i := sort.Search(len(s.his), func(i int) bool {
		return s.his[i] >= c
	})
	return i < len(s.los) && s.los[i] <= c
}

// Len returns the number of ranges in the set.
func (s *Set) Len() int {
	return len(s.los)
}

// Ranges returns a copy of the set's ranges in ascending order.
func (s *Set) Ranges() []Range {
	out := make([]Range, len(s.los))
	for i := range s.los {
		out[i] = Range{Lo: s.los[i], Hi: s.his[i]}
	}
	return out
}

// Min returns the smallest code in the set. Panics on an empty set.
func (s *Set) Min() rune {
	return s.los[0]
}

// Max returns the largest code in the set. Panics on an empty set.
func (s *Set) Max() rune {
	return s.his[len(s.his)-1]
}
