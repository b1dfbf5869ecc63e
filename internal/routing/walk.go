package routing

import "github.com/flyermap/planner/internal/roadgraph"

// firstUnvisitedNeighbor returns the first node, in sorted order, reachable
// from node by an edge not yet in visited. This is the walk's deterministic
// "pick the next unvisited street" rule.
func firstUnvisitedNeighbor(g *roadgraph.Graph, node string, visited map[string]bool) (next, edgeID string, ok bool) {
	for _, nbr := range g.NeighborsSorted(node) {
		e, found := g.EdgeBetween(node, nbr)
		if !found || visited[e.ID] {
			continue
		}

		return nbr, e.ID, true
	}

	return "", "", false
}

func hasUnvisitedEdge(g *roadgraph.Graph, node string, visited map[string]bool) bool {
	_, _, ok := firstUnvisitedNeighbor(g, node, visited)

	return ok
}

// nearestNodeWithUnvisitedEdge runs a breadth-first search outward from
// start and returns the first node discovered, other than start itself,
// that still has at least one unvisited incident edge. BFS with sorted
// neighbor iteration makes this deterministic: the node returned is
// nearest by hop count, and ties are broken by which node BFS discovers
// first under that sorted iteration order.
func nearestNodeWithUnvisitedEdge(g *roadgraph.Graph, start string, visited map[string]bool) (string, bool) {
	seen := map[string]bool{start: true}
	queue := []string{start}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		if node != start && hasUnvisitedEdge(g, node, visited) {
			return node, true
		}

		for _, nbr := range g.NeighborsSorted(node) {
			if !seen[nbr] {
				seen[nbr] = true
				queue = append(queue, nbr)
			}
		}
	}

	return "", false
}

// edgeCoverWalk produces a node path and the ordered edge IDs it traverses,
// covering every edge of g at least once starting from start. When the
// walk reaches a node with no unvisited outgoing edge, it bridges via the
// shortest (length-weighted) path to the nearest node (by hop count) that
// still has one; bridge edges are appended to the route but are not marked
// visited, since walking them isn't "covering" them in the sense the walk
// is trying to satisfy.
//
// The walk stops once every edge is covered, once no more nodes have an
// unvisited edge reachable from the current position, or after
// 3*|E|+100 iterations — whichever comes first. That cap exists so a
// graph shape the walk can't fully resolve (e.g. a bridge target already
// unreachable due to a prior truncation) can never spin forever; it is
// not expected to bind in practice.
func edgeCoverWalk(g *roadgraph.Graph, start string, returnToStart bool) (nodePath []string, edgeOrder []string) {
	visited := make(map[string]bool, g.NumEdges())
	current := start
	nodePath = []string{current}

	iterCap := 3*g.NumEdges() + 100
	for iter := 0; iter < iterCap && len(visited) < g.NumEdges(); iter++ {
		if next, edgeID, ok := firstUnvisitedNeighbor(g, current, visited); ok {
			visited[edgeID] = true
			edgeOrder = append(edgeOrder, edgeID)
			nodePath = append(nodePath, next)
			current = next

			continue
		}

		target, ok := nearestNodeWithUnvisitedEdge(g, current, visited)
		if !ok {
			break
		}

		dist, prev := dijkstra(g, current)
		bridge := shortestPath(dist, prev, current, target)
		if len(bridge) < 2 {
			break
		}
		nodePath, edgeOrder = appendPath(g, nodePath, edgeOrder, bridge)
		current = target
	}

	if returnToStart && current != start {
		dist, prev := dijkstra(g, current)
		closing := shortestPath(dist, prev, current, start)
		nodePath, edgeOrder = appendPath(g, nodePath, edgeOrder, closing)
	}

	return nodePath, edgeOrder
}

func appendPath(g *roadgraph.Graph, nodePath, edgeOrder []string, path []string) ([]string, []string) {
	for i := 1; i < len(path); i++ {
		e, ok := g.EdgeBetween(path[i-1], path[i])
		if !ok {
			break
		}
		edgeOrder = append(edgeOrder, e.ID)
		nodePath = append(nodePath, path[i])
	}

	return nodePath, edgeOrder
}
