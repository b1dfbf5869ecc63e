package roadgraph

import (
	"math"

	"github.com/flyermap/planner/internal/geoarea"
)

// residentialClasses are the highway tags kept during ingest: local/
// residential-scale road classes plus the always-preserved pedestrian
// classes.
var residentialClasses = map[string]bool{
	"residential":    true,
	"living_street":  true,
	"service":        true,
	"unclassified":   true,
	"tertiary":       true,
	"secondary":      true,
	"tertiary_link":  true,
	"secondary_link": true,
	"footway":        true,
	"path":           true,
	"pedestrian":     true,
}

const earthRadiusMeters = 6371000.0

// haversineMeters returns the great-circle distance in meters between two
// (lat, lng) points, used to backfill an edge's Length when the provider
// did not supply one.
func haversineMeters(a, b geoarea.Point) float64 {
	lat1, lat2 := a.Lat*math.Pi/180, b.Lat*math.Pi/180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(h))
}

// Ingest normalizes a provider's RawGraph into a Graph ready for density
// estimation:
//
//  1. Every edge is given a numeric Length, computed from endpoint
//     coordinates via the great-circle distance when the provider did not
//     supply one.
//  2. Missing Name becomes "Unnamed Road"; missing or empty Highway
//     becomes "unclassified"; a multi-valued Highway keeps only its first
//     tag.
//  3. Edges whose highway class is not in the residential/pedestrian
//     allow-list are dropped.
//  4. Nodes left with no incident edges after filtering are dropped.
//
// Ingest returns ErrNoRoads if no edges remain after filtering.
func Ingest(raw *RawGraph) (*Graph, error) {
	g := NewGraph(true)

	byID := make(map[string]RawNode, len(raw.Nodes))
	for _, n := range raw.Nodes {
		byID[n.ID] = n
		_ = g.AddNode(n.ID, n.X, n.Y)
	}

	for _, e := range raw.Edges {
		from, okFrom := byID[e.From]
		to, okTo := byID[e.To]
		if !okFrom || !okTo {
			continue
		}

		highway := "unclassified"
		if len(e.Highway) > 0 && e.Highway[0] != "" {
			highway = e.Highway[0]
		}
		if !residentialClasses[highway] {
			continue
		}

		name := e.Name
		if name == "" {
			name = "Unnamed Road"
		}

		length := 0.0
		if e.Length != nil {
			length = *e.Length
		} else {
			length = haversineMeters(
				geoarea.Point{Lat: from.Y, Lng: from.X},
				geoarea.Point{Lat: to.Y, Lng: to.X},
			)
		}

		if _, err := g.AddEdge(e.From, e.To, EdgeAttrs{
			Length:   length,
			Highway:  highway,
			Name:     name,
			Geometry: e.Geometry,
		}); err != nil {
			continue
		}
	}

	g.RemoveIsolatedNodes()

	if g.NumEdges() == 0 {
		return nil, ErrNoRoads
	}

	return g, nil
}
