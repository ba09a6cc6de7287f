package util

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionBound(t *testing.T) {
	fc := geojson.NewFeatureCollection()
	fc.Append(geojson.NewFeature(orb.Polygon{{{106.8, -6.2}, {106.81, -6.2}, {106.81, -6.19}, {106.8, -6.19}, {106.8, -6.2}}}))
	fc.Append(geojson.NewFeature(orb.Polygon{{{106.9, -6.3}, {106.91, -6.3}, {106.91, -6.29}, {106.9, -6.29}, {106.9, -6.3}}}))

	bound, ok := CollectionBound(fc)
	require.True(t, ok)
	assert.Equal(t, orb.Point{106.8, -6.3}, bound.Min)
	assert.Equal(t, orb.Point{106.91, -6.19}, bound.Max)
}

func TestCollectionBoundEmpty(t *testing.T) {
	_, ok := CollectionBound(geojson.NewFeatureCollection())
	assert.False(t, ok)
}

func TestLeafletBounds(t *testing.T) {
	b := orb.Bound{Min: orb.Point{106.8, -6.3}, Max: orb.Point{106.91, -6.19}}

	// Leaflet wants [[south, west], [north, east]]
	assert.Equal(t, [2][2]float64{{-6.3, 106.8}, {-6.19, 106.91}}, LeafletBounds(b))
}

func TestBoundCenter(t *testing.T) {
	b := orb.Bound{Min: orb.Point{100, -10}, Max: orb.Point{102, -6}}
	lat, lng := BoundCenter(b)
	assert.InDelta(t, -8, lat, 1e-9)
	assert.InDelta(t, 101, lng, 1e-9)
}
