package roadgraph

import "errors"

// Sentinel errors returned by Graph mutation and query methods.
var (
	// ErrEmptyNodeID indicates a node operation was given an empty ID.
	ErrEmptyNodeID = errors.New("roadgraph: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a node that does
	// not exist in the graph.
	ErrNodeNotFound = errors.New("roadgraph: node not found")

	// ErrEdgeNotFound indicates an operation referenced an edge that does
	// not exist in the graph.
	ErrEdgeNotFound = errors.New("roadgraph: edge not found")

	// ErrNoRoads indicates that, after ingest filtering, zero edges remain
	// in the graph.
	ErrNoRoads = errors.New("roadgraph: no roads in area")
)
