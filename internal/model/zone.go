package model

import (
	"fmt"
	"math"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Zone wraps a single feature of the DSS output file. All metric
// properties are optional and may arrive non-numeric, so every accessor
// reports presence instead of failing.
type Zone struct {
	feature *geojson.Feature
}

// NewZone creates a Zone backed by the given feature
func NewZone(f *geojson.Feature) *Zone {
	return &Zone{feature: f}
}

// Feature returns the underlying GeoJSON feature
func (z *Zone) Feature() *geojson.Feature {
	return z.feature
}

// Geometry returns the zone shape. The geometry is opaque to this
// service, it is only forwarded to the map renderer.
func (z *Zone) Geometry() orb.Geometry {
	return z.feature.Geometry
}

// ID returns the zone_id property, or an empty string when absent
func (z *Zone) ID() string {
	return z.String("zone_id")
}

// String returns a property as a display string, empty when absent
func (z *Zone) String(key string) string {
	v, ok := z.feature.Properties[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Float returns a numeric property. Numeric strings coerce the same way
// the data file's original consumers coerced them; anything else
// reports absent.
func (z *Zone) Float(key string) (float64, bool) {
	v, ok := z.feature.Properties[key]
	if !ok || v == nil {
		return 0, false
	}
	return coerceFloat(v)
}

// Int returns an integer property. Zero is a present value, only a
// missing or non-numeric property reports absent.
func (z *Zone) Int(key string) (int, bool) {
	f, ok := z.Float(key)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// IsRecommended reports whether the upstream decision layer flagged
// this zone. The flag is numerically encoded: any value whose numeric
// interpretation equals 1 qualifies (1, 1.0, "1"), everything else,
// including true and "true", does not.
func (z *Zone) IsRecommended() bool {
	f, ok := z.Float("is_recommended")
	return ok && f == 1
}

// RecommendRank returns the ordinal assigned to a recommended zone
func (z *Zone) RecommendRank() (int, bool) {
	return z.Int("recommend_rank")
}

func coerceFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) {
			return 0, false
		}
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil || math.IsNaN(f) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
