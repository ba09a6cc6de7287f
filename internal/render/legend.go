package render

import (
	"bytes"
	"html/template"
	"math"
)

// LegendEntry pairs one bucket description with its swatch color
type LegendEntry struct {
	Label string
	Color string
}

var legendTmpl = template.Must(template.New("legend").Parse(`<div style="font-weight:bold;margin-bottom:6px">SSI (Sustainability/Stress Index)</div>
{{range .Entries}}<div class="legend-row" style="display:flex;align-items:center;margin:2px 0">
  <span style="display:inline-block;width:18px;height:12px;margin-right:6px;border:1px solid #999;background:{{.Color}}"></span>{{.Label}}
</div>
{{end}}<div class="legend-row legend-border-note" style="display:flex;align-items:center;margin-top:6px">
  <span style="display:inline-block;width:18px;height:12px;margin-right:6px;border:3px solid #111"></span>Recommended zone (thick border)
</div>`))

// LegendEntries returns the six fixed bucket descriptions, each swatch
// colored by evaluating the scale at a representative interior value so
// the legend can never drift from the scale itself.
func LegendEntries() []LegendEntry {
	return []LegendEntry{
		{Label: "> 0.8", Color: ColorOf(0.81, true)},
		{Label: "0.6 – 0.8", Color: ColorOf(0.61, true)},
		{Label: "0.4 – 0.6", Color: ColorOf(0.41, true)},
		{Label: "0.2 – 0.4", Color: ColorOf(0.21, true)},
		{Label: "≤ 0.2", Color: ColorOf(0.1, true)},
		{Label: "No data", Color: ColorOf(math.NaN(), false)},
	}
}

// LegendHTML renders the legend panel content: six colored rows plus
// one static row describing the recommended-border convention. The
// output fully replaces any prior panel content, so repeated calls are
// idempotent.
func LegendHTML() template.HTML {
	var buf bytes.Buffer
	if err := legendTmpl.Execute(&buf, struct{ Entries []LegendEntry }{LegendEntries()}); err != nil {
		return ""
	}
	return template.HTML(buf.String())
}
