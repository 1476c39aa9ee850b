package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequenceRatio(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{"identical", "stadservice", "stadservice", 1.0},
		{"both empty", "", "", 1.0},
		{"one empty", "stadservice", "", 0.0},
		{"disjoint", "abc", "xyz", 0.0},
		{"single substitution", "stadservlce", "stadservice", 20.0 / 22.0},
		{"prefix", "stad", "stadservice", 8.0 / 15.0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, sequenceRatio(tc.a, tc.b), 1e-9)
			assert.InDelta(t, tc.want, sequenceRatio(tc.b, tc.a), 1e-9)
		})
	}
}

func TestFuzzyCanonicalKnownLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"stadservlce", "Stadservice"},
		{"storstadnlng", "Storstadning"},
		{"fonsterputs", "Fonsterputs"},
		{"xyz", ""},
		{"ab", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, fuzzyCanonicalKnownLabel(tc.in), "input %q", tc.in)
	}
}
