package geoarea_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flyermap/planner/internal/geoarea"
)

func TestFromPoints_Identity(t *testing.T) {
	points := []geoarea.Point{
		{Lat: 40.71, Lng: -74.01},
		{Lat: 40.72, Lng: -74.01},
		{Lat: 40.715, Lng: -74.00},
	}

	poly, err := geoarea.FromPoints(points)
	require.NoError(t, err)
	assert.Equal(t, len(points), poly.NumVertices())
	assert.Equal(t, points, poly.Vertices)
}

func TestFromPoints_TooFew(t *testing.T) {
	_, err := geoarea.FromPoints([]geoarea.Point{{Lat: 0, Lng: 0}, {Lat: 1, Lng: 1}})
	assert.ErrorIs(t, err, geoarea.ErrInvalidArea)
}

func TestBoundingBox(t *testing.T) {
	poly, err := geoarea.FromPoints([]geoarea.Point{
		{Lat: 1, Lng: 5},
		{Lat: 3, Lng: 1},
		{Lat: -2, Lng: 9},
	})
	require.NoError(t, err)

	minLat, minLng, maxLat, maxLng := geoarea.BoundingBox(poly)
	assert.Equal(t, -2.0, minLat)
	assert.Equal(t, 1.0, minLng)
	assert.Equal(t, 3.0, maxLat)
	assert.Equal(t, 9.0, maxLng)
}

func TestCentroid(t *testing.T) {
	poly, err := geoarea.FromPoints([]geoarea.Point{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 2},
		{Lat: 2, Lng: 2},
		{Lat: 2, Lng: 0},
	})
	require.NoError(t, err)

	c := geoarea.Centroid(poly)
	assert.Equal(t, 1.0, c.Lat)
	assert.Equal(t, 1.0, c.Lng)
}
