package charmatch

import (
	"strings"
	"unicode/utf8"
)

// String scan operations. All of them are defined purely against Match,
// never against a matcher's internal variant, and all are total: the empty
// string yields empty/-1/0 results, never an error. Indices are rune
// indices, since the data model is a sequence of character codes.

// EveryOf reports whether every character of s matches. True for the
// empty string.
func (m Matcher) EveryOf(s string) bool {
	for _, c := range s {
		if !m.Match(c) {
			return false
		}
	}
	return true
}

// AnyOf reports whether at least one character of s matches. False for
// the empty string.
func (m Matcher) AnyOf(s string) bool {
	for _, c := range s {
		if m.Match(c) {
			return true
		}
	}
	return false
}

// FirstIndexIn returns the rune index of the first matching character in
// s, or -1 if none matches.
func (m Matcher) FirstIndexIn(s string) int {
	return m.FirstIndexFrom(s, 0)
}

// FirstIndexFrom returns the rune index of the first matching character
// at or after start, or -1 if none matches. A negative start is treated
// as 0.
func (m Matcher) FirstIndexFrom(s string, start int) int {
	if start < 0 {
		start = 0
	}
	i := 0
	for _, c := range s {
		if i >= start && m.Match(c) {
			return i
		}
		i++
	}
	return -1
}

// LastIndexIn returns the rune index of the last matching character in s,
// or -1 if none matches.
func (m Matcher) LastIndexIn(s string) int {
	return m.LastIndexFrom(s, utf8.RuneCountInString(s)-1)
}

// LastIndexFrom returns the rune index of the last matching character at
// or before start, scanning backward, or -1 if none matches. A start
// beyond the end of s is clamped to the last index.
func (m Matcher) LastIndexFrom(s string, start int) int {
	runes := []rune(s)
	if start >= len(runes) {
		start = len(runes) - 1
	}
	for i := start; i >= 0; i-- {
		if m.Match(runes[i]) {
			return i
		}
	}
	return -1
}

// CountIn returns the number of matching characters in s.
func (m Matcher) CountIn(s string) int {
	n := 0
	for _, c := range s {
		if m.Match(c) {
			n++
		}
	}
	return n
}

// CollapseFrom replaces every maximal run of consecutive matching
// characters with exactly one copy of replacement. Non-matching
// characters pass through unchanged. Single pass, order preserving.
//
// Example:
//
//	charmatch.Whitespace().CollapseFrom("a   b    c", "_") // "a_b_c"
func (m Matcher) CollapseFrom(s, replacement string) string {
	var b strings.Builder
	inRun := false
	for _, c := range s {
		if m.Match(c) {
			if !inRun {
				b.WriteString(replacement)
				inRun = true
			}
			continue
		}
		b.WriteRune(c)
		inRun = false
	}
	return b.String()
}

// ReplaceFrom replaces each individually matching character with
// replacement. Runs are not collapsed.
func (m Matcher) ReplaceFrom(s, replacement string) string {
	var b strings.Builder
	for _, c := range s {
		if m.Match(c) {
			b.WriteString(replacement)
		} else {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// RetainFrom keeps only the matching characters of s, preserving order.
func (m Matcher) RetainFrom(s string) string {
	var b strings.Builder
	for _, c := range s {
		if m.Match(c) {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// RemoveFrom drops the matching characters of s. It is defined as
// retaining under the negated matcher.
func (m Matcher) RemoveFrom(s string) string {
	return m.Negate().RetainFrom(s)
}

// TrimFrom strips the maximal matching prefix and suffix of s. Interior
// characters are untouched even when they match.
//
// A matcher matching every code trims s to the empty string.
func (m Matcher) TrimFrom(s string) string {
	return m.TrimLeadingFrom(m.TrimTailingFrom(s))
}

// TrimLeadingFrom strips only the maximal matching prefix of s.
func (m Matcher) TrimLeadingFrom(s string) string {
	for i, c := range s {
		if !m.Match(c) {
			return s[i:]
		}
	}
	return ""
}

// TrimTailingFrom strips only the maximal matching suffix of s.
func (m Matcher) TrimTailingFrom(s string) string {
	for len(s) > 0 {
		c, size := utf8.DecodeLastRuneInString(s)
		if !m.Match(c) {
			break
		}
		s = s[:len(s)-size]
	}
	return s
}
