package geoarea

import "math"

// MinPolygonVertices is the fewest vertices a Polygon can have and still
// describe an area.
const MinPolygonVertices = 3

// FromPoints builds a Polygon from an ordered vertex list. It returns
// ErrInvalidArea if fewer than MinPolygonVertices points are supplied.
// No self-intersection check is performed; simple polygons are assumed.
func FromPoints(points []Point) (Polygon, error) {
	if len(points) < MinPolygonVertices {
		return Polygon{}, ErrInvalidArea
	}
	verts := make([]Point, len(points))
	copy(verts, points)

	return Polygon{Vertices: verts}, nil
}

// BoundingBox returns the (minLat, minLng, maxLat, maxLng) envelope of p.
// BoundingBox of an empty polygon returns the zero value for all four
// bounds.
func BoundingBox(p Polygon) (minLat, minLng, maxLat, maxLng float64) {
	if len(p.Vertices) == 0 {
		return 0, 0, 0, 0
	}
	minLat, minLng = math.Inf(1), math.Inf(1)
	maxLat, maxLng = math.Inf(-1), math.Inf(-1)
	for _, v := range p.Vertices {
		minLat = math.Min(minLat, v.Lat)
		maxLat = math.Max(maxLat, v.Lat)
		minLng = math.Min(minLng, v.Lng)
		maxLng = math.Max(maxLng, v.Lng)
	}

	return minLat, minLng, maxLat, maxLng
}

// Centroid returns the arithmetic mean of the polygon's vertices. This is a
// vertex centroid, not an area-weighted centroid, which is sufficient for
// this system's use (choosing a default route start point and validating
// the circle-roundness property); it matches the reference shapely
// centroid closely enough for those purposes at the scales this system
// operates at.
func Centroid(p Polygon) Point {
	if len(p.Vertices) == 0 {
		return Point{}
	}
	var sumLat, sumLng float64
	for _, v := range p.Vertices {
		sumLat += v.Lat
		sumLng += v.Lng
	}
	n := float64(len(p.Vertices))

	return Point{Lat: sumLat / n, Lng: sumLng / n}
}
