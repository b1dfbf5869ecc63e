package density

import (
	"github.com/tidwall/rtree"

	"github.com/flyermap/planner/internal/geoarea"
	"github.com/flyermap/planner/internal/roadgraph"
)

// Estimate assigns an EstimatedAddresses count to every edge of g.
//
// When buildings is non-empty, each building's centroid is snapped to its
// nearest edge (within maxDistanceM, converted to degrees via
// metersPerDegreeLat — see the package note on this conflation) using an
// R-tree over edge bounding boxes for candidate lookup, and that edge's
// count is incremented by UnitsPerBuilding(b). When buildings is empty, or
// when every edge ends up with zero after the snapping pass (e.g. all
// buildings fell outside maxDistanceM of every road), every edge instead
// receives EstimateFromRoadLength(edge.Length, edge.Highway): a city never
// reports a flyer run with zero addresses just because its building layer
// came back empty.
//
// Estimate returns a new Graph; g itself is never mutated.
func Estimate(g *roadgraph.Graph, area geoarea.Polygon, buildings []Building, maxDistanceM float64) *roadgraph.Graph {
	_ = area // buildings are already scoped to area by the caller's BuildingProvider
	if maxDistanceM <= 0 {
		maxDistanceM = DefaultMaxDistanceM
	}
	maxDistanceDeg := maxDistanceM / metersPerDegreeLat

	out := g.Clone()
	edges := out.Edges()

	counts := make(map[string]int, len(edges))
	lines := make(map[string][]geoarea.Point, len(edges))

	var tr rtree.RTreeG[string]
	for _, e := range edges {
		from, _ := out.Node(e.From)
		to, _ := out.Node(e.To)
		line := polyline(from.Point(), to.Point(), e.Geometry)
		lines[e.ID] = line

		minX, minY, maxX, maxY := line[0].Lng, line[0].Lat, line[0].Lng, line[0].Lat
		for _, p := range line[1:] {
			if p.Lng < minX {
				minX = p.Lng
			}
			if p.Lng > maxX {
				maxX = p.Lng
			}
			if p.Lat < minY {
				minY = p.Lat
			}
			if p.Lat > maxY {
				maxY = p.Lat
			}
		}
		tr.Insert(
			[2]float64{minX - maxDistanceDeg, minY - maxDistanceDeg},
			[2]float64{maxX + maxDistanceDeg, maxY + maxDistanceDeg},
			e.ID,
		)
	}

	for _, b := range buildings {
		c := b.Centroid
		best, bestDist := "", maxDistanceDeg
		found := false

		tr.Search(
			[2]float64{c.Lng - maxDistanceDeg, c.Lat - maxDistanceDeg},
			[2]float64{c.Lng + maxDistanceDeg, c.Lat + maxDistanceDeg},
			func(_, _ [2]float64, edgeID string) bool {
				d := distanceToPolyline(c, lines[edgeID])
				if d < bestDist || (found && d == bestDist && edgeID < best) {
					bestDist, best, found = d, edgeID, true
				}
				return true
			},
		)

		if found {
			counts[best] += UnitsPerBuilding(b)
		}
	}

	total := 0
	for _, n := range counts {
		total += n
	}

	for _, e := range edges {
		estimated := counts[e.ID]
		if total == 0 {
			estimated = EstimateFromRoadLength(e.Length, e.Highway)
		}
		out.SetEstimatedAddresses(e.ID, estimated)
	}

	return out
}
