package standardize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"crediscope/internal/standardize"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "chase bank", "chase bank", 1.0},
		{"both empty", "", "", 1.0},
		{"one empty", "chase", "", 0.0},
		{"single substitution", "chase bank", "chase bonk", 0.9},
		{"unrelated", "chase bank", "zzzz", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, standardize.Similarity(tt.a, tt.b), 0.01)
		})
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"chase bank", "chase bnak"},
		{"capital one", "capitol one"},
		{"wells fargo", "wells farg"},
		{"", "midland"},
	}
	for _, p := range pairs {
		assert.Equal(t, standardize.Similarity(p[0], p[1]), standardize.Similarity(p[1], p[0]),
			"Similarity(%q, %q) must be symmetric", p[0], p[1])
	}
}

func TestSimilarity_Bounds(t *testing.T) {
	inputs := []string{"", "a", "chase", "portfolio recovery associates", "x y z"}
	for _, a := range inputs {
		for _, b := range inputs {
			sim := standardize.Similarity(a, b)
			assert.GreaterOrEqual(t, sim, 0.0)
			assert.LessOrEqual(t, sim, 1.0)
		}
	}
}

func TestNormalizeAlias(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  CHASE   Bank  ", "chase bank"},
		{"Midland Credit Management, Inc!", "midland credit management inc"},
		{"!!!", ""},
		{"AT&T Wireless", "at&t wireless"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, standardize.NormalizeAlias(tt.in))
	}
}
