package roadgraph

import "github.com/flyermap/planner/internal/geoarea"

// RawNode is a provider-supplied node: an opaque ID plus (lng, lat)
// coordinates, matching the x/y convention road-network providers use.
type RawNode struct {
	ID string
	X  float64
	Y  float64
}

// RawEdge is a provider-supplied edge, with attributes exactly as
// providers tend to hand them back: Length may be unset (nil), Highway may
// be empty or carry more than one tag (some providers return a list when a
// way carries conflicting classification — only the first is meaningful
// here), and Name may be empty.
type RawEdge struct {
	From     string
	To       string
	Length   *float64
	Highway  []string
	Name     string
	Geometry []geoarea.Point
}

// RawGraph is the road network exactly as a map provider returns it,
// before Ingest normalizes and filters it.
type RawGraph struct {
	Nodes []RawNode
	Edges []RawEdge
}
