package partition

import (
	"math"

	"github.com/flyermap/planner/internal/geoarea"
	"github.com/flyermap/planner/internal/roadgraph"
)

// point2 is a planar (x, y) coordinate in the graph's own (lng, lat)
// convention, used only for clustering arithmetic; it never crosses a
// package boundary as coordinates.
type point2 struct{ X, Y float64 }

// edgeMidpoint returns the 50%-arc-length point along e's recorded
// Geometry, or the arithmetic mean of its two endpoints when no geometry
// was recorded.
func edgeMidpoint(g *roadgraph.Graph, e roadgraph.Edge) point2 {
	if len(e.Geometry) >= 2 {
		return midpointAlongPolyline(e.Geometry)
	}

	from, _ := g.Node(e.From)
	to, _ := g.Node(e.To)

	return point2{X: (from.X + to.X) / 2, Y: (from.Y + to.Y) / 2}
}

// midpointAlongPolyline walks geom's points via geoarea.Point's
// (Lat, Lng) fields, interpreted here in the graph's (X=lng, Y=lat)
// convention, and returns the point at half the polyline's total arc
// length.
func midpointAlongPolyline(geom []geoarea.Point) point2 {
	segLen := make([]float64, len(geom)-1)
	total := 0.0
	for i := range segLen {
		segLen[i] = euclid2(
			point2{X: geom[i].Lng, Y: geom[i].Lat},
			point2{X: geom[i+1].Lng, Y: geom[i+1].Lat},
		)
		total += segLen[i]
	}
	if total == 0 {
		return point2{X: geom[0].Lng, Y: geom[0].Lat}
	}

	target := total / 2
	walked := 0.0
	for i, l := range segLen {
		if walked+l >= target {
			t := (target - walked) / l
			a := point2{X: geom[i].Lng, Y: geom[i].Lat}
			b := point2{X: geom[i+1].Lng, Y: geom[i+1].Lat}

			return point2{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}
		}
		walked += l
	}

	last := geom[len(geom)-1]

	return point2{X: last.Lng, Y: last.Lat}
}

// edgeWeight returns e's balancing weight under priority, floored at 1 so
// every edge contributes at least one unit (an edge with zero estimated
// addresses and zero length still needs to land in some zone).
func edgeWeight(e roadgraph.Edge, priority Priority) float64 {
	var w float64
	if priority == PriorityArea {
		w = e.Length
	} else {
		w = float64(e.EstimatedAddresses)
	}
	if w < 1 {
		w = 1
	}

	return w
}

func dist2(a, b point2) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y

	return dx*dx + dy*dy
}

func euclid2(a, b point2) float64 {
	return math.Sqrt(dist2(a, b))
}
