// Package provider defines the map-data collaborators the orchestrator
// depends on — a road network source and a building footprint source —
// as narrow interfaces, plus a deterministic in-memory implementation for
// tests and for callers who already have their own OSM-fetch layer. No
// live OSM client ships in this module.
package provider
