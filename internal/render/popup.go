package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/911ray911/GIDS-Medium/internal/model"
)

// Placeholder shown for metrics that are missing or non-numeric
const Placeholder = "–"

const scoreDigits = 6

var popupTmpl = template.Must(template.New("popup").Parse(`<div style="font-family:sans-serif;min-width:220px">
  <div style="font-weight:bold;margin-bottom:4px">Zone {{.ZoneID}}{{if .Recommended}} <span class="dss-badge" style="background:#111;color:#fff;border-radius:3px;padding:1px 6px;font-size:11px">RECOMMENDED #{{.Rank}}</span>{{end}}</div>
  <table style="font-size:12px;border-spacing:0">
    <tr><td style="padding-right:8px">SSI score</td><td>{{.SSI}}</td></tr>
    <tr><td style="padding-right:8px">Dominant pressure</td><td>{{.Dominant}}</td></tr>
    <tr><td style="padding-right:8px">Env pressure</td><td>{{.Env}}</td></tr>
    <tr><td style="padding-right:8px">Social pressure</td><td>{{.Social}}</td></tr>
    <tr><td style="padding-right:8px">Ops pressure</td><td>{{.Ops}}</td></tr>
    <tr><td style="padding-right:8px">Activities</td><td>{{.Activities}}</td></tr>
    <tr><td style="padding-right:8px">Access score</td><td>{{.Access}}</td></tr>
    <tr><td style="padding-right:8px">Underserved score</td><td>{{.Underserved}}</td></tr>
  </table>
</div>`))

type popupData struct {
	ZoneID      string
	Recommended bool
	Rank        int
	SSI         string
	Dominant    string
	Env         string
	Social      string
	Ops         string
	Activities  string
	Access      string
	Underserved string
}

// PopupHTML builds the popup fragment for one zone. Formatting is
// permissive per field: a zone with no usable metrics still renders,
// every hole filled with the placeholder.
func PopupHTML(z *model.Zone) string {
	data := popupData{
		ZoneID:      z.ID(),
		SSI:         formatScore(z, "ssi_score"),
		Dominant:    z.String("dominant_pressure"),
		Env:         formatScore(z, "env_pressure"),
		Social:      formatScore(z, "social_pressure"),
		Ops:         formatScore(z, "ops_pressure"),
		Activities:  formatCount(z, "activity_count"),
		Access:      formatScore(z, "access_score"),
		Underserved: formatScore(z, "underserved_score"),
	}
	if data.ZoneID == "" {
		data.ZoneID = Placeholder
	}
	if data.Dominant == "" {
		data.Dominant = Placeholder
	}
	// The badge only exists for recommended zones, no empty badge otherwise
	if z.IsRecommended() {
		if rank, ok := z.RecommendRank(); ok {
			data.Recommended = true
			data.Rank = rank
		}
	}

	var buf bytes.Buffer
	if err := popupTmpl.Execute(&buf, data); err != nil {
		// The template only touches plain struct fields, execution
		// cannot fail on well-formed data
		return ""
	}
	return buf.String()
}

// formatScore renders a sub-score with fixed precision, or the
// placeholder when the property is missing or non-numeric
func formatScore(z *model.Zone, key string) string {
	return FormatNumber(z, key, scoreDigits)
}

// FormatNumber formats a numeric property to the given number of
// decimal digits, degrading to the placeholder on bad data
func FormatNumber(z *model.Zone, key string, digits int) string {
	v, ok := z.Float(key)
	if !ok {
		return Placeholder
	}
	return fmt.Sprintf("%.*f", digits, v)
}

// formatCount keeps present-but-zero distinct from absent: 0 renders
// as "0", only a missing or non-numeric count yields the placeholder
func formatCount(z *model.Zone, key string) string {
	n, ok := z.Int(key)
	if !ok {
		return Placeholder
	}
	return fmt.Sprintf("%d", n)
}
