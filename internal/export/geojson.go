package export

import (
	"fmt"

	geojson "github.com/paulmach/go.geojson"

	"github.com/flyermap/planner/internal/routing"
)

// GeoJSON renders every route of a job as a single FeatureCollection, one
// LineString feature per route, carrying the route's summary stats as
// feature properties.
func GeoJSON(routes []routing.Route) ([]byte, error) {
	fc := geojson.NewFeatureCollection()

	for _, r := range routes {
		coords := make([][]float64, len(r.Geometry))
		for i, p := range r.Geometry {
			coords[i] = []float64{p.Lng, p.Lat}
		}

		feature := geojson.NewLineStringFeature(coords)
		feature.SetProperty("route_id", r.RouteID)
		feature.SetProperty("flyers", r.AssignedFlyers)
		feature.SetProperty("distance_m", r.TotalDistanceM)
		feature.SetProperty("duration_min", r.EstimatedDurationMin)
		feature.SetProperty("color", r.Color)

		fc.AddFeature(feature)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("export: marshaling geojson: %w", err)
	}

	return data, nil
}
