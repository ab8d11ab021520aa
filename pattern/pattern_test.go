package pattern

import (
	"errors"
	"reflect"
	"testing"

	"github.com/coregx/charmatch/rangeset"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		negated bool
		ranges  []rangeset.Range
	}{
		{"empty", "", false, nil},
		{"single literal", "x", false, []rangeset.Range{{Lo: 'x', Hi: 'x'}}},
		{"single range", "a-z", false, []rangeset.Range{{Lo: 'a', Hi: 'z'}}},
		{
			"word class", "a-zA-Z0-9_", false,
			[]rangeset.Range{
				{Lo: 'a', Hi: 'z'},
				{Lo: 'A', Hi: 'Z'},
				{Lo: '0', Hi: '9'},
				{Lo: '_', Hi: '_'},
			},
		},
		{"negated", "^a-z", true, []rangeset.Range{{Lo: 'a', Hi: 'z'}}},
		{"negated empty", "^", true, nil},
		{"bracketed", "[a-z]", false, []rangeset.Range{{Lo: 'a', Hi: 'z'}}},
		{"bracketed negated", "[^0-9]", true, []rangeset.Range{{Lo: '0', Hi: '9'}}},
		{
			"leading dash literal", "-z", false,
			[]rangeset.Range{{Lo: '-', Hi: '-'}, {Lo: 'z', Hi: 'z'}},
		},
		{
			"trailing dash literal", "a-", false,
			[]rangeset.Range{{Lo: 'a', Hi: 'a'}, {Lo: '-', Hi: '-'}},
		},
		{
			"escaped dash", `a\-z`, false,
			[]rangeset.Range{
				{Lo: 'a', Hi: 'a'},
				{Lo: '-', Hi: '-'},
				{Lo: 'z', Hi: 'z'},
			},
		},
		{"escaped backslash", `\\`, false, []rangeset.Range{{Lo: '\\', Hi: '\\'}}},
		{
			"escaped caret not negation", `\^a`, false,
			[]rangeset.Range{{Lo: '^', Hi: '^'}, {Lo: 'a', Hi: 'a'}},
		},
		{
			"interior caret literal", "a^", false,
			[]rangeset.Range{{Lo: 'a', Hi: 'a'}, {Lo: '^', Hi: '^'}},
		},
		{"unicode range", "à-ÿ", false, []rangeset.Range{{Lo: 0xe0, Hi: 0xff}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cls, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.in, err)
			}
			if cls.Negated != tt.negated {
				t.Errorf("Parse(%q).Negated = %v, want %v", tt.in, cls.Negated, tt.negated)
			}
			if !reflect.DeepEqual(cls.Ranges, tt.ranges) {
				t.Errorf("Parse(%q).Ranges = %v, want %v", tt.in, cls.Ranges, tt.ranges)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"reversed range", "z-a"},
		{"trailing backslash", `a\`},
		{"unbalanced open bracket", "[a-z"},
		{"unbalanced close bracket", "a-z]"},
		{"lone open bracket", "["},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.in)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.in)
			}
			if !errors.Is(err, ErrInvalidPattern) {
				t.Errorf("Parse(%q) error = %v, want wrapping ErrInvalidPattern", tt.in, err)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Errorf("Parse(%q) error type = %T, want *ParseError", tt.in, err)
			}
		})
	}
}
