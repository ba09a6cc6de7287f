package render

import "github.com/911ray911/GIDS-Medium/internal/model"

// Border colors for the recommended-zone convention
const (
	BorderRecommended = "#111111"
	BorderDefault     = "#666666"
)

// Fill opacities at rest and under the pointer. The hover value is
// applied client side; the rest value is the layer default the hover
// exit restores.
const (
	FillOpacityDefault = 0.7
	FillOpacityHover   = 0.85
)

// ZoneStyle carries the rendering attributes for one zone. JSON tags
// match Leaflet path options so the struct can be attached to a feature
// and fed to the layer unchanged.
type ZoneStyle struct {
	FillColor   string  `json:"fillColor"`
	Color       string  `json:"color"`
	Weight      int     `json:"weight"`
	Opacity     float64 `json:"opacity"`
	FillOpacity float64 `json:"fillOpacity"`
}

// StyleOf derives the rendering attributes for a zone: fill from the
// SSI color scale, a thick near-black border for recommended zones and
// a thin gray one for the rest.
func StyleOf(z *model.Zone) ZoneStyle {
	score, ok := z.Float("ssi_score")

	style := ZoneStyle{
		FillColor:   ColorOf(score, ok),
		Color:       BorderDefault,
		Weight:      1,
		Opacity:     1,
		FillOpacity: FillOpacityDefault,
	}
	if z.IsRecommended() {
		style.Color = BorderRecommended
		style.Weight = 3
	}
	return style
}
