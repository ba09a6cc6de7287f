package util

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// CollectionBound returns the union of all feature bounds in the
// collection. ok is false for an empty collection or one with only
// nil geometries.
func CollectionBound(fc *geojson.FeatureCollection) (orb.Bound, bool) {
	var bound orb.Bound
	found := false
	for _, f := range fc.Features {
		if f == nil || f.Geometry == nil {
			continue
		}
		b := f.Geometry.Bound()
		if !found {
			bound = b
			found = true
			continue
		}
		bound = bound.Union(b)
	}
	return bound, found
}

// LeafletBounds converts an orb bound (lon/lat order) to the
// [[south, west], [north, east]] lat/lng pairs Leaflet expects
func LeafletBounds(b orb.Bound) [2][2]float64 {
	return [2][2]float64{
		{b.Min[1], b.Min[0]},
		{b.Max[1], b.Max[0]},
	}
}

// BoundCenter returns the midpoint of a bound as lat, lng
func BoundCenter(b orb.Bound) (float64, float64) {
	c := b.Center()
	return c[1], c[0]
}
