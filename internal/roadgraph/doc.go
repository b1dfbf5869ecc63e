// Package roadgraph defines the road-network multigraph this system plans
// routes over, and the ingest step that turns a raw provider graph into a
// pruned, residential-only network ready for density estimation.
//
// Graph is a directed multigraph: parallel edges between the same pair of
// nodes are permitted and keyed by a per-pair ParallelKey. Node coordinates
// are stored as (X=lng, Y=lat) internally — the inverse of this system's
// public (lat, lng) convention — because that is the convention
// road-network providers use; callers at this package's boundary must
// keep the two straight.
//
// All mutation is guarded by a pair of sync.RWMutex locks (one for nodes,
// one for edges/adjacency) so a Graph can be built or queried safely
// across goroutines.
package roadgraph
