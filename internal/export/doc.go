// Package export renders a planner Job's routes into the formats a flyer
// volunteer or a mapping tool can consume: GPX and KML track files,
// a GeoJSON FeatureCollection, and a shareable Google Maps directions URL.
package export
