package routing

import (
	"container/heap"
	"math"

	"github.com/flyermap/planner/internal/roadgraph"
)

// dijkstra computes shortest-path distances (by edge Length) from source to
// every node of g reachable from it, using a lazy-decrease-key min-heap:
// duplicate, stale heap entries for an already-finalized node are simply
// skipped rather than removed from the heap, the same tradeoff the
// teacher-library implementation this is modeled on makes.
//
// dist[v] is math.Inf(1) for a node that source cannot reach. prev[v] ==
// "" for source itself and for unreachable nodes; otherwise prev[v] names
// the node immediately before v on its shortest path, letting the caller
// walk prev backward to reconstruct the path.
func dijkstra(g *roadgraph.Graph, source string) (dist map[string]float64, prev map[string]string) {
	nodes := g.Nodes()
	dist = make(map[string]float64, len(nodes))
	prev = make(map[string]string, len(nodes))
	for _, id := range nodes {
		dist[id] = math.Inf(1)
	}
	dist[source] = 0

	visited := make(map[string]bool, len(nodes))
	pq := make(distPQ, 0, len(nodes))
	heap.Init(&pq)
	heap.Push(&pq, &distItem{id: source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*distItem)
		u := item.id
		if visited[u] {
			continue
		}
		visited[u] = true

		for _, v := range g.NeighborsSorted(u) {
			e, ok := g.EdgeBetween(u, v)
			if !ok {
				continue
			}
			newDist := dist[u] + e.Length
			if newDist >= dist[v] {
				continue
			}
			dist[v] = newDist
			prev[v] = u
			heap.Push(&pq, &distItem{id: v, dist: newDist})
		}
	}

	return dist, prev
}

// shortestPath reconstructs the node sequence from source to target using
// the prev map produced by dijkstra run with that same source. Returns nil
// if target is unreachable.
func shortestPath(dist map[string]float64, prev map[string]string, source, target string) []string {
	if math.IsInf(dist[target], 1) && source != target {
		return nil
	}
	if source == target {
		return []string{source}
	}

	var path []string
	for at := target; at != ""; {
		path = append(path, at)
		if at == source {
			break
		}
		at = prev[at]
	}
	if len(path) == 0 || path[len(path)-1] != source {
		return nil
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

type distItem struct {
	id   string
	dist float64
}

type distPQ []*distItem

func (pq distPQ) Len() int            { return len(pq) }
func (pq distPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq distPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *distPQ) Push(x interface{}) { *pq = append(*pq, x.(*distItem)) }
func (pq *distPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
