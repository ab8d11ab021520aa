package charmatch

// Negate returns a matcher matching exactly the codes the receiver does
// not match.
//
// Negation is purely structural: negating an already-negated matcher
// yields a nested negation rather than the original matcher. Range-level
// canonicalization is the optimizer's job (see FromRanges), not this one.
func (m Matcher) Negate() Matcher {
	inner := m
	return Matcher{kind: kindNegate, inner: &inner}
}

// Or returns a matcher matching every code that either operand matches.
//
// The result is simplified eagerly at construction:
//
//   - an Any operand absorbs the union, a None operand is dropped
//   - Disjunction operands are flattened into the member list
//
// so a Disjunction never contains another Disjunction nor an Any/None
// member, for any sequence of unions. No range-aware merging or
// deduplication happens here; unions built from known range collections
// should go through FromRanges instead.
func (m Matcher) Or(other Matcher) Matcher {
	// Trivial receivers short-circuit before the general rules.
	switch m.kind {
	case kindAny:
		return m
	case kindNone:
		return other
	}

	switch other.kind {
	case kindAny:
		return other
	case kindNone:
		return m
	}

	members := make([]Matcher, 0, len(m.members)+len(other.members)+2)
	if m.kind == kindDisjunction {
		members = append(members, m.members...)
	} else {
		members = append(members, m)
	}
	if other.kind == kindDisjunction {
		members = append(members, other.members...)
	} else {
		members = append(members, other)
	}
	return Matcher{kind: kindDisjunction, members: members}
}
