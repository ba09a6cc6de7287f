package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorOfBuckets(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		ok       bool
		expected string
	}{
		{name: "well above top threshold", score: 0.95, ok: true, expected: ColorCritical},
		{name: "just above top threshold", score: 0.81, ok: true, expected: ColorCritical},
		{name: "exactly 0.8 stays in lower bucket", score: 0.8, ok: true, expected: ColorHigh},
		{name: "high bucket", score: 0.7, ok: true, expected: ColorHigh},
		{name: "exactly 0.6 stays in lower bucket", score: 0.6, ok: true, expected: ColorMedium},
		{name: "medium bucket", score: 0.5, ok: true, expected: ColorMedium},
		{name: "low bucket", score: 0.3, ok: true, expected: ColorLow},
		{name: "exactly 0.2 is minimal", score: 0.2, ok: true, expected: ColorMinimal},
		{name: "minimal bucket", score: 0.1, ok: true, expected: ColorMinimal},
		{name: "zero", score: 0, ok: true, expected: ColorMinimal},
		{name: "missing score", score: 0, ok: false, expected: ColorNoData},
		{name: "NaN score", score: math.NaN(), ok: true, expected: ColorNoData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ColorOf(tt.score, tt.ok))
		})
	}
}

func TestColorOfDistinctColors(t *testing.T) {
	colors := make(map[string]bool)
	for _, s := range []float64{0.9, 0.7, 0.5, 0.3, 0.1} {
		colors[ColorOf(s, true)] = true
	}
	colors[ColorOf(0, false)] = true
	assert.Len(t, colors, 6, "scale must produce six distinct colors")
}

func TestColorOfMonotonic(t *testing.T) {
	// Walking the domain upward must never visit a color twice after
	// leaving it: bucket intensity follows the score.
	intensity := map[string]int{
		ColorMinimal:  0,
		ColorLow:      1,
		ColorMedium:   2,
		ColorHigh:     3,
		ColorCritical: 4,
	}

	prev := -1
	for s := 0.0; s <= 1.0; s += 0.01 {
		cur := intensity[ColorOf(s, true)]
		assert.GreaterOrEqual(t, cur, prev, "score %.2f mapped to a lower-intensity color", s)
		prev = cur
	}
}
