package export_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flyermap/planner/internal/export"
	"github.com/flyermap/planner/internal/geoarea"
	"github.com/flyermap/planner/internal/routing"
)

func sampleRoutes() []routing.Route {
	return []routing.Route{
		{
			RouteID: 1, Color: "#e74c3c", AssignedFlyers: 10,
			TotalDistanceM: 1200, EstimatedDurationMin: 18,
			Waypoints: []geoarea.Point{{Lat: 40.70, Lng: -74.00}, {Lat: 40.71, Lng: -74.01}},
			Geometry:  []geoarea.Point{{Lat: 40.70, Lng: -74.00}, {Lat: 40.71, Lng: -74.01}},
		},
		{
			RouteID: 2, Color: "#3498db", AssignedFlyers: 5,
			TotalDistanceM: 800, EstimatedDurationMin: 12,
			Waypoints: []geoarea.Point{{Lat: 40.72, Lng: -74.02}, {Lat: 40.73, Lng: -74.03}},
			Geometry:  []geoarea.Point{{Lat: 40.72, Lng: -74.02}, {Lat: 40.73, Lng: -74.03}},
		},
	}
}

func TestGPX_SingleRoute(t *testing.T) {
	out, err := export.GPX(sampleRoutes()[0])
	require.NoError(t, err)
	assert.Contains(t, out, "<trk>")
	assert.Contains(t, out, "Route 1")
	assert.Contains(t, out, `lat="40.7"`)
}

func TestGPXAll_OneTrackPerRoute(t *testing.T) {
	out, err := export.GPXAll(sampleRoutes())
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "<trk>"))
}

func TestKML_OneFolderPerRoute(t *testing.T) {
	out, err := export.KML(sampleRoutes())
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "<Folder>"))
	assert.Contains(t, out, "ff") // color conversion present
}

func TestGeoJSON_FeatureCollection(t *testing.T) {
	data, err := export.GeoJSON(sampleRoutes())
	require.NoError(t, err)
	assert.Contains(t, string(data), "FeatureCollection")
	assert.Contains(t, string(data), "LineString")
	assert.Contains(t, string(data), "\"route_id\":1")
}

func TestGoogleMapsURL_TwoPoints(t *testing.T) {
	u := export.GoogleMapsURL(sampleRoutes()[0].Waypoints, routing.ModeWalking)
	assert.Contains(t, u, "travelmode=walking")
	assert.Contains(t, u, "origin=")
	assert.Contains(t, u, "destination=")
	assert.NotContains(t, u, "waypoints=")
}

func TestGoogleMapsURL_FewerThanTwoPointsIsEmpty(t *testing.T) {
	assert.Equal(t, "", export.GoogleMapsURL(nil, routing.ModeWalking))
	assert.Equal(t, "", export.GoogleMapsURL([]geoarea.Point{{Lat: 1, Lng: 1}}, routing.ModeWalking))
}

func TestGoogleMapsURL_SubsamplesLongRoutes(t *testing.T) {
	points := make([]geoarea.Point, 100)
	for i := range points {
		points[i] = geoarea.Point{Lat: float64(i) * 0.001, Lng: float64(i) * 0.001}
	}

	u := export.GoogleMapsURL(points, routing.ModeDriving)
	assert.Contains(t, u, "travelmode=driving")
	assert.Contains(t, u, "waypoints=")
}
