package density

import (
	"math"

	"github.com/flyermap/planner/internal/geoarea"
)

// polyline returns the point sequence a distance computation should walk
// along: an edge's recorded Geometry when the provider supplied one, or
// just its two endpoints otherwise.
func polyline(from, to geoarea.Point, geom []geoarea.Point) []geoarea.Point {
	if len(geom) >= 2 {
		return geom
	}

	return []geoarea.Point{from, to}
}

// distanceToPolyline returns the shortest distance, in degrees, from p to
// the given polyline, measured over raw (lat, lng) coordinates. Degrees,
// not meters: see the package-level note on the acceptance-radius
// conflation this preserves.
func distanceToPolyline(p geoarea.Point, line []geoarea.Point) float64 {
	best := distanceToSegment(p, line[0], line[0])
	for i := 0; i+1 < len(line); i++ {
		d := distanceToSegment(p, line[i], line[i+1])
		if d < best {
			best = d
		}
	}

	return best
}

// distanceToSegment returns the shortest Euclidean distance, in the same
// (lat, lng) degree units as its inputs, from p to the segment a-b.
func distanceToSegment(p, a, b geoarea.Point) float64 {
	vx, vy := b.Lng-a.Lng, b.Lat-a.Lat
	wx, wy := p.Lng-a.Lng, p.Lat-a.Lat

	segLenSq := vx*vx + vy*vy
	if segLenSq == 0 {
		return euclid(p.Lng, p.Lat, a.Lng, a.Lat)
	}

	t := (wx*vx + wy*vy) / segLenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	projX, projY := a.Lng+t*vx, a.Lat+t*vy

	return euclid(p.Lng, p.Lat, projX, projY)
}

func euclid(x1, y1, x2, y2 float64) float64 {
	dx, dy := x2-x1, y2-y1

	return math.Sqrt(dx*dx + dy*dy)
}
