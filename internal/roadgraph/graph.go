package roadgraph

import "sort"

// NeighborsSorted returns the distinct node IDs reachable from id via an
// outgoing (or, for an undirected graph, either-direction) edge, in
// ascending sorted order. This is the deterministic iteration order the
// router relies on when choosing the "first" unvisited neighbor.
func (g *Graph) NeighborsSorted(id string) []string {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	nbrs := g.adj[id]
	out := make([]string, 0, len(nbrs))
	for to, ids := range nbrs {
		if len(ids) > 0 {
			out = append(out, to)
		}
	}
	sort.Strings(out)

	return out
}

// EdgeBetween returns an edge between u and v: the lowest-ParallelKey edge
// u->v if one exists, otherwise the lowest-ParallelKey edge v->u. When
// parallel edges exist between the same pair, the lowest key's length
// always wins for distance accounting — an intentional simplification,
// not a guarantee that the chosen edge is the shortest or most recent.
func (g *Graph) EdgeBetween(u, v string) (Edge, bool) {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	if ids, ok := g.adj[u][v]; ok && len(ids) > 0 {
		return *g.edges[firstByParallelKey(g.edges, ids)], true
	}
	if ids, ok := g.adj[v][u]; ok && len(ids) > 0 {
		return *g.edges[firstByParallelKey(g.edges, ids)], true
	}

	return Edge{}, false
}

func firstByParallelKey(edges map[string]*Edge, ids []string) string {
	best := ids[0]
	for _, id := range ids[1:] {
		if edges[id].ParallelKey < edges[best].ParallelKey {
			best = id
		}
	}

	return best
}

// RemoveIsolatedNodes deletes every node with zero incident edges (neither
// outgoing nor, for a directed graph, incoming). It is the final ingest
// step after highway-class filtering has removed edges.
func (g *Graph) RemoveIsolatedNodes() {
	incident := make(map[string]bool, len(g.nodes))
	for _, e := range g.Edges() {
		incident[e.From] = true
		incident[e.To] = true
	}

	g.muNodes.Lock()
	defer g.muNodes.Unlock()
	for id := range g.nodes {
		if !incident[id] {
			delete(g.nodes, id)
			delete(g.adj, id)
		}
	}
}

// Clone returns a deep copy of the graph: all nodes and edges, independent
// of g.
func (g *Graph) Clone() *Graph {
	clone := NewGraph(g.directed)
	for _, id := range g.Nodes() {
		n, _ := g.Node(id)
		_ = clone.AddNode(n.ID, n.X, n.Y)
	}
	for _, e := range g.Edges() {
		_, _ = clone.AddEdge(e.From, e.To, EdgeAttrs{
			Length:             e.Length,
			Highway:            e.Highway,
			Name:               e.Name,
			Geometry:           e.Geometry,
			EstimatedAddresses: e.EstimatedAddresses,
		})
	}

	return clone
}

// SetEstimatedAddresses overwrites the EstimatedAddresses attribute of an
// existing edge in place. It is a narrow mutator for the density estimator,
// which computes this single attribute after the graph's topology is
// already final; ok is false if id does not name an edge of g.
func (g *Graph) SetEstimatedAddresses(id string, estimated int) (ok bool) {
	g.muEdges.Lock()
	defer g.muEdges.Unlock()
	e, found := g.edges[id]
	if !found {
		return false
	}
	e.EstimatedAddresses = estimated

	return true
}

// EdgeInducedSubgraph builds a new Graph, directed exactly when g is,
// containing exactly the given edges and their endpoint nodes. Edge IDs not present in g are
// silently skipped.
func (g *Graph) EdgeInducedSubgraph(edgeIDs []string) *Graph {
	sub := NewGraph(g.directed)
	for _, id := range edgeIDs {
		e, ok := g.Edge(id)
		if !ok {
			continue
		}
		if !sub.HasNode(e.From) {
			n, _ := g.Node(e.From)
			_ = sub.AddNode(n.ID, n.X, n.Y)
		}
		if !sub.HasNode(e.To) {
			n, _ := g.Node(e.To)
			_ = sub.AddNode(n.ID, n.X, n.Y)
		}
		_, _ = sub.AddEdge(e.From, e.To, EdgeAttrs{
			Length:             e.Length,
			Highway:            e.Highway,
			Name:               e.Name,
			Geometry:           e.Geometry,
			EstimatedAddresses: e.EstimatedAddresses,
		})
	}

	return sub
}

// Undirected returns a new Graph containing the same nodes and edges as g,
// but indexed so that every edge is traversable in either direction. Used
// by the router to derive a walking-mode projection of a directed zone
// subgraph; the original edge Directed semantics are not preserved (the
// returned graph reports Directed() == false).
func (g *Graph) Undirected() *Graph {
	und := NewGraph(false)
	for _, id := range g.Nodes() {
		n, _ := g.Node(id)
		_ = und.AddNode(n.ID, n.X, n.Y)
	}
	for _, e := range g.Edges() {
		_, _ = und.AddEdge(e.From, e.To, EdgeAttrs{
			Length:             e.Length,
			Highway:            e.Highway,
			Name:               e.Name,
			Geometry:           e.Geometry,
			EstimatedAddresses: e.EstimatedAddresses,
		})
	}

	return und
}
