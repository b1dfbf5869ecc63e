// Package density assigns a dwelling-unit estimate to every edge of a road
// graph, either by snapping building footprints to their nearest edge or,
// when no building data is usable, by a road-length-and-class heuristic.
//
// The per-edge estimate this package produces (Graph edge attribute
// EstimatedAddresses) drives both the partitioner's density-balanced
// clustering and the orchestrator's flyer allocation.
//
// Degree/meter conflation: building-to-edge distances are computed in raw
// (lat, lng) degrees, and the acceptance radius is converted from meters
// by dividing by metersPerDegreeLat (111320), the length of one degree of
// latitude. Longitude degrees are shorter than that away from the equator,
// so the effective radius is exact only for north-south offsets near the
// equator and grows increasingly loose east-west at higher latitudes.
package density
