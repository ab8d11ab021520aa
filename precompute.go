package charmatch

// Precomputed returns a matcher with the same behavior as the receiver
// backed by a dense membership table for codes below 256. Codes at or
// above 256 fall back to the receiver.
//
// Useful on hot paths when the receiver is a deep composite: the table
// turns matching of ASCII and Latin-1 input into a single array load.
//
// Example:
//
//	m := charmatch.MustPattern("a-fA-F0-9").Or(charmatch.Is('#')).Precomputed()
func (m Matcher) Precomputed() Matcher {
	if m.kind == kindTable {
		return m
	}
	t := &lookupTable{fallback: m}
	for c := rune(0); c < 256; c++ {
		t.ascii[c] = m.Match(c)
	}
	return Matcher{kind: kindTable, table: t}
}
