package render

import "math"

// SSI bucket colors, highest pressure first. The sixth color marks
// zones without a usable score.
const (
	ColorCritical = "#bd0026" // ssi > 0.8
	ColorHigh     = "#f03b20" // ssi > 0.6
	ColorMedium   = "#fd8d3c" // ssi > 0.4
	ColorLow      = "#fecc5c" // ssi > 0.2
	ColorMinimal  = "#ffffb2" // ssi <= 0.2
	ColorNoData   = "#cccccc"
)

// ColorOf maps an SSI score onto its bucket color. ok=false marks a
// missing or non-numeric score and yields the no-data color, as does
// NaN. Thresholds are strict greater-than comparisons, so 0.8 itself
// still falls into the 0.6-0.8 bucket.
func ColorOf(score float64, ok bool) string {
	if !ok || math.IsNaN(score) {
		return ColorNoData
	}
	switch {
	case score > 0.8:
		return ColorCritical
	case score > 0.6:
		return ColorHigh
	case score > 0.4:
		return ColorMedium
	case score > 0.2:
		return ColorLow
	default:
		return ColorMinimal
	}
}
