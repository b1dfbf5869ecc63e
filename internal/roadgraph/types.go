package roadgraph

import (
	"fmt"
	"sort"
	"sync"

	"github.com/flyermap/planner/internal/geoarea"
)

// Node is a vertex of the road network. X and Y are stored in provider
// convention: X is longitude, Y is latitude.
type Node struct {
	ID string
	X  float64
	Y  float64
}

// Point returns the node's location in this system's public (lat, lng)
// convention.
func (n Node) Point() geoarea.Point {
	return geoarea.Point{Lat: n.Y, Lng: n.X}
}

// EdgeAttrs carries the attributes a caller supplies when adding an edge.
// AddEdge stores them as given, without filling in defaults. Ingest fills
// in a missing Length, Highway or Name from the provider's RawEdge before
// it builds the EdgeAttrs (see ingest.go); a caller building a graph
// directly (e.g. a test fixture) supplies all three up front.
type EdgeAttrs struct {
	Length             float64
	Highway            string
	Name               string
	Geometry           []geoarea.Point
	EstimatedAddresses int
}

// Edge is one directed road segment. ParallelKey distinguishes multiple
// edges between the same ordered pair of nodes: the adjacency list is
// keyed on (from, to, parallelKey) rather than a single global edge id,
// so parallel road segments between the same two intersections each get
// their own entry.
type Edge struct {
	ID                 string
	From               string
	To                 string
	ParallelKey        int
	Length             float64
	Highway            string
	Name               string
	Geometry           []geoarea.Point
	EstimatedAddresses int
}

// Graph is a directed multigraph of road segments. The zero value is not
// usable; construct with NewGraph.
type Graph struct {
	muNodes sync.RWMutex // guards nodes
	muEdges sync.RWMutex // guards edges and adjacency

	directed bool

	nodes map[string]*Node
	edges map[string]*Edge

	// adj[from][to] lists edge IDs from 'from' to 'to'. For an undirected
	// Graph (directed == false), adding an edge u->v also populates
	// adj[v][u] with the same edge ID, so traversal can walk either way.
	adj map[string]map[string][]string

	nextEdgeSeq uint64
}

// NewGraph constructs an empty Graph. directed selects whether edges are
// one-way (true) or usable in either direction (false); road ingest always
// builds a directed graph, and the router derives an undirected projection
// of a zone for walking mode via Undirected.
func NewGraph(directed bool) *Graph {
	return &Graph{
		directed: directed,
		nodes:    make(map[string]*Node),
		edges:    make(map[string]*Edge),
		adj:      make(map[string]map[string][]string),
	}
}

// Directed reports whether this graph treats edges as one-way.
func (g *Graph) Directed() bool {
	return g.directed
}

// AddNode inserts a node with the given coordinates. Calling AddNode twice
// with the same id overwrites the coordinates of the existing node. Returns
// ErrEmptyNodeID if id is empty.
func (g *Graph) AddNode(id string, x, y float64) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.muNodes.Lock()
	defer g.muNodes.Unlock()
	g.nodes[id] = &Node{ID: id, X: x, Y: y}
	if _, ok := g.adj[id]; !ok {
		g.muEdges.Lock()
		g.adj[id] = make(map[string][]string)
		g.muEdges.Unlock()
	}

	return nil
}

// HasNode reports whether id names an existing node.
func (g *Graph) HasNode(id string) bool {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Node returns the node named id, or ok == false if it does not exist.
func (g *Graph) Node(id string) (Node, bool) {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}

	return *n, true
}

// Nodes returns all node IDs in ascending sorted order, for deterministic
// iteration.
func (g *Graph) Nodes() []string {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	out := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// NumNodes returns the number of nodes in the graph.
func (g *Graph) NumNodes() int {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	return len(g.nodes)
}

// AddEdge inserts a new edge from -> to with the given attributes. Both
// endpoints must already exist (ErrNodeNotFound otherwise). The edge is
// assigned the next ParallelKey among existing from->to edges and a unique
// ID. For an undirected graph the edge is also indexed to -> from.
func (g *Graph) AddEdge(from, to string, attrs EdgeAttrs) (*Edge, error) {
	if !g.HasNode(from) || !g.HasNode(to) {
		return nil, ErrNodeNotFound
	}

	g.muEdges.Lock()
	defer g.muEdges.Unlock()

	key := len(g.adj[from][to])
	g.nextEdgeSeq++
	e := &Edge{
		ID:                 fmt.Sprintf("%s->%s#%d", from, to, g.nextEdgeSeq),
		From:               from,
		To:                 to,
		ParallelKey:        key,
		Length:             attrs.Length,
		Highway:            attrs.Highway,
		Name:               attrs.Name,
		Geometry:           attrs.Geometry,
		EstimatedAddresses: attrs.EstimatedAddresses,
	}
	g.edges[e.ID] = e

	if g.adj[from] == nil {
		g.adj[from] = make(map[string][]string)
	}
	g.adj[from][to] = append(g.adj[from][to], e.ID)

	if !g.directed && from != to {
		if g.adj[to] == nil {
			g.adj[to] = make(map[string][]string)
		}
		g.adj[to][from] = append(g.adj[to][from], e.ID)
	}

	return e, nil
}

// Edge returns the edge named id, or ok == false if it does not exist.
func (g *Graph) Edge(id string) (Edge, bool) {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	e, ok := g.edges[id]
	if !ok {
		return Edge{}, false
	}

	return *e, true
}

// Edges returns all edges, sorted by ID for deterministic iteration.
func (g *Graph) Edges() []Edge {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// NumEdges returns the number of edges in the graph. For an undirected
// graph each edge is counted once, not once per direction it is indexed
// under.
func (g *Graph) NumEdges() int {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	return len(g.edges)
}
