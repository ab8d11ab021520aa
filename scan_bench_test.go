package charmatch

import (
	"strings"
	"testing"
)

var benchInput = strings.Repeat("lorem ipsum 4012 dolor sit 9 amet ", 100)

func BenchmarkCountInRange(b *testing.B) {
	m := Digit()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.CountIn(benchInput)
	}
}

func BenchmarkCountInMultiRange(b *testing.B) {
	m := MustPattern("a-zA-Z0-9_")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.CountIn(benchInput)
	}
}

func BenchmarkCountInDisjunction(b *testing.B) {
	m := Letter().Or(Digit()).Or(Is('_'))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.CountIn(benchInput)
	}
}

func BenchmarkCountInPrecomputed(b *testing.B) {
	m := Letter().Or(Digit()).Or(Is('_')).Precomputed()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.CountIn(benchInput)
	}
}

func BenchmarkCollapseFrom(b *testing.B) {
	m := Whitespace()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.CollapseFrom(benchInput, "_")
	}
}
