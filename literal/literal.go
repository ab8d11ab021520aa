// Package literal provides multi-literal string search: the multi-character
// counterpart of the charmatch scan operations.
//
// A Set is a fixed collection of literal strings compiled once into an
// Aho-Corasick automaton. Searches are O(n) in the text length regardless
// of how many literals the set holds, with leftmost match semantics.
//
// Unlike the character-level operations, indices here are byte offsets:
// literal search is a byte-string operation.
package literal

import (
	"errors"
	"strings"

	"github.com/coregx/ahocorasick"
)

// Construction-time errors. Searching never fails.
var (
	// ErrEmptySet indicates NewSet was called with no patterns.
	ErrEmptySet = errors.New("literal: empty pattern set")

	// ErrEmptyPattern indicates a pattern in the set is the empty string.
	ErrEmptyPattern = errors.New("literal: empty pattern")
)

// Set is an immutable collection of literal strings with O(n) multi-pattern
// search. Safe for concurrent use after construction.
type Set struct {
	auto     *ahocorasick.Automaton
	patterns []string
}

// NewSet compiles patterns into a search automaton. At least one pattern
// is required and none may be empty.
func NewSet(patterns []string) (*Set, error) {
	if len(patterns) == 0 {
		return nil, ErrEmptySet
	}
	builder := ahocorasick.NewBuilder()
	for _, p := range patterns {
		if p == "" {
			return nil, ErrEmptyPattern
		}
		builder.AddPattern([]byte(p))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Set{
		auto:     auto,
		patterns: append([]string(nil), patterns...),
	}, nil
}

// MustNewSet is like NewSet but panics on invalid input.
func MustNewSet(patterns []string) *Set {
	s, err := NewSet(patterns)
	if err != nil {
		panic(err.Error())
	}
	return s
}

// Patterns returns a copy of the set's literals in insertion order.
func (s *Set) Patterns() []string {
	return append([]string(nil), s.patterns...)
}

// AnyOf reports whether any literal of the set occurs in text.
func (s *Set) AnyOf(text string) bool {
	return s.auto.IsMatch([]byte(text))
}

// FirstIndexIn returns the byte range [start, end) of the leftmost
// occurrence of any literal in text, or (-1, -1) if none occurs.
func (s *Set) FirstIndexIn(text string) (start, end int) {
	return s.FirstIndexFrom(text, 0)
}

// FirstIndexFrom is like FirstIndexIn but considers only occurrences
// beginning at or after byte offset at. A negative at is treated as 0.
func (s *Set) FirstIndexFrom(text string, at int) (start, end int) {
	if at < 0 {
		at = 0
	}
	if at >= len(text) {
		return -1, -1
	}
	m := s.auto.Find([]byte(text), at)
	if m == nil {
		return -1, -1
	}
	return m.Start, m.End
}

// CountIn returns the number of non-overlapping occurrences of the set's
// literals in text, counted left to right.
func (s *Set) CountIn(text string) int {
	haystack := []byte(text)
	n := 0
	at := 0
	for at < len(haystack) {
		m := s.auto.Find(haystack, at)
		if m == nil {
			break
		}
		n++
		at = m.End
	}
	return n
}

// ReplaceFrom replaces each non-overlapping occurrence of any literal in
// text with replacement, left to right.
func (s *Set) ReplaceFrom(text, replacement string) string {
	haystack := []byte(text)
	var b strings.Builder
	at := 0
	for at < len(haystack) {
		m := s.auto.Find(haystack, at)
		if m == nil {
			break
		}
		b.Write(haystack[at:m.Start])
		b.WriteString(replacement)
		at = m.End
	}
	b.Write(haystack[at:])
	return b.String()
}
