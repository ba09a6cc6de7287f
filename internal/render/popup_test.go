package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPopupHTMLActivityCount(t *testing.T) {
	// Present-but-zero is a display-worthy value
	html := PopupHTML(zoneWith(map[string]interface{}{
		"zone_id":        "Z-1",
		"activity_count": float64(0),
	}))
	assert.Contains(t, html, "<td>0</td>")

	// Absent count degrades to the placeholder
	html = PopupHTML(zoneWith(map[string]interface{}{
		"zone_id": "Z-1",
	}))
	assert.NotContains(t, html, "<td>0</td>")
	assert.Contains(t, html, Placeholder)
}

func TestPopupHTMLBadge(t *testing.T) {
	html := PopupHTML(zoneWith(map[string]interface{}{
		"zone_id":        "Z-7",
		"is_recommended": float64(1),
		"recommend_rank": float64(3),
	}))
	assert.Contains(t, html, "dss-badge")
	assert.Contains(t, html, "RECOMMENDED #3")

	html = PopupHTML(zoneWith(map[string]interface{}{
		"zone_id":        "Z-8",
		"is_recommended": float64(0),
		"recommend_rank": float64(0),
	}))
	assert.NotContains(t, html, "dss-badge")
	assert.NotContains(t, html, "RECOMMENDED")
}

func TestPopupHTMLScoreFormatting(t *testing.T) {
	html := PopupHTML(zoneWith(map[string]interface{}{
		"zone_id":   "Z-9",
		"ssi_score": 0.5,
	}))
	// Scores render with six decimal digits
	assert.Contains(t, html, "0.500000")
}

func TestPopupHTMLNonNumericScore(t *testing.T) {
	html := PopupHTML(zoneWith(map[string]interface{}{
		"zone_id":   "Z-10",
		"ssi_score": "abc",
	}))
	assert.Contains(t, html, "SSI score</td><td>"+Placeholder)
}

func TestPopupHTMLEmptyZone(t *testing.T) {
	// A zone with no metrics at all still renders, placeholders all over
	html := PopupHTML(zoneWith(map[string]interface{}{}))
	assert.NotEmpty(t, html)
	assert.GreaterOrEqual(t, strings.Count(html, Placeholder), 7)
}

func TestFormatNumberDefaultPrecision(t *testing.T) {
	z := zoneWith(map[string]interface{}{"access_score": 0.123456789})
	assert.Equal(t, "0.1235", FormatNumber(z, "access_score", 4))
	assert.Equal(t, Placeholder, FormatNumber(z, "no_such_field", 4))
}
