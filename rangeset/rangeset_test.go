package rangeset

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   []Range
		want []Range
	}{
		{"empty", nil, nil},
		{"single", []Range{{'a', 'z'}}, []Range{{'a', 'z'}}},
		{"disjoint sorted", []Range{{'0', '9'}, {'a', 'z'}}, []Range{{'0', '9'}, {'a', 'z'}}},
		{"disjoint unsorted", []Range{{'a', 'z'}, {'0', '9'}}, []Range{{'0', '9'}, {'a', 'z'}}},
		{"overlapping", []Range{{10, 20}, {15, 30}}, []Range{{10, 30}}},
		{"adjacent", []Range{{10, 20}, {21, 30}}, []Range{{10, 30}}},
		{"gap of one", []Range{{10, 20}, {22, 30}}, []Range{{10, 20}, {22, 30}}},
		{"contained", []Range{{10, 30}, {15, 20}}, []Range{{10, 30}}},
		{"duplicates", []Range{{5, 5}, {5, 5}, {5, 5}}, []Range{{5, 5}}},
		{"chain collapse", []Range{{1, 2}, {3, 4}, {5, 6}, {7, 8}}, []Range{{1, 8}}},
		{
			"letters and digits",
			[]Range{{'a', 'z'}, {'A', 'Z'}, {'0', '9'}},
			[]Range{{'0', '9'}, {'A', 'Z'}, {'a', 'z'}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	in := []Range{{'a', 'z'}, {'0', '9'}}
	Normalize(in)
	want := []Range{{'a', 'z'}, {'0', '9'}}
	if !reflect.DeepEqual(in, want) {
		t.Errorf("Normalize mutated its input: %v", in)
	}
}

// TestNormalizeEquivalence checks Normalize against naive membership on
// random range collections.
func TestNormalizeEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(8)
		ranges := make([]Range, n)
		for i := range ranges {
			lo := rune(rng.Intn(120))
			hi := lo + rune(rng.Intn(20))
			ranges[i] = Range{lo, hi}
		}

		norm := Normalize(ranges)

		// Invariant: sorted, disjoint, non-adjacent.
		for i := 1; i < len(norm); i++ {
			if norm[i-1].Hi+1 >= norm[i].Lo {
				t.Fatalf("trial %d: ranges %v not disjoint/non-adjacent", trial, norm)
			}
		}

		for c := rune(0); c < 160; c++ {
			want := false
			for _, r := range ranges {
				if r.Contains(c) {
					want = true
					break
				}
			}
			got := false
			for _, r := range norm {
				if r.Contains(c) {
					got = true
					break
				}
			}
			if got != want {
				t.Fatalf("trial %d: code %d: normalized %v, naive %v (in %v -> %v)",
					trial, c, got, want, ranges, norm)
			}
		}
	}
}

func TestSetContains(t *testing.T) {
	// \w-like set: three ranges plus a singleton.
	ranges := Normalize([]Range{{'a', 'z'}, {'A', 'Z'}, {'0', '9'}, {'_', '_'}})
	set := NewSet(ranges)

	tests := []struct {
		c    rune
		want bool
	}{
		{'a', true},
		{'z', true},
		{'A', true},
		{'Z', true},
		{'0', true},
		{'9', true},
		{'_', true},
		{'`', false}, // between '_' and 'a'
		{'@', false}, // just before 'A'
		{'[', false}, // just after 'Z'
		{'/', false}, // just before '0'
		{':', false}, // just after '9'
		{0, false},
		{0x10FFFF, false},
	}

	for _, tt := range tests {
		if got := set.Contains(tt.c); got != tt.want {
			t.Errorf("Contains(%q) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestSetAccessors(t *testing.T) {
	ranges := []Range{{'0', '9'}, {'a', 'z'}}
	set := NewSet(ranges)

	if got := set.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
	if got := set.Min(); got != '0' {
		t.Errorf("Min() = %q, want '0'", got)
	}
	if got := set.Max(); got != 'z' {
		t.Errorf("Max() = %q, want 'z'", got)
	}
	if got := set.Ranges(); !reflect.DeepEqual(got, ranges) {
		t.Errorf("Ranges() = %v, want %v", got, ranges)
	}
}

func TestNewSetRejectsUnnormalized(t *testing.T) {
	tests := []struct {
		name   string
		ranges []Range
	}{
		{"overlapping", []Range{{10, 20}, {15, 30}}},
		{"adjacent", []Range{{10, 20}, {21, 30}}},
		{"unsorted", []Range{{'a', 'z'}, {'0', '9'}}},
		{"reversed", []Range{{20, 10}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("NewSet(%v) did not panic", tt.ranges)
				}
			}()
			NewSet(tt.ranges)
		})
	}
}

func TestNewPanicsOnReversedRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New('z', 'a') did not panic")
		}
	}()
	New('z', 'a')
}
