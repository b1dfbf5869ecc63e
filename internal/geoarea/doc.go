// Package geoarea builds the planning-area polygon a request operates on,
// either from a circle (center + radius) or from an explicit vertex list,
// and provides the small set of planar geometry queries the rest of the
// pipeline needs (bounding box, centroid).
//
// Coordinates are always (lat, lng) at this package's boundary. Internally,
// the circle approximation uses the equirectangular projection described on
// Circle; it is accurate near the equator and
// increasingly approximate at high latitudes, by design (see Circle).
package geoarea
