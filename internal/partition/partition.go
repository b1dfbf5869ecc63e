package partition

import "github.com/flyermap/planner/internal/roadgraph"

// Partition splits g into at most k connected zones, balancing each
// zone's total weight (estimated addresses or road length, per priority)
// via a weighted k-means over edge midpoints.
//
// k == 1 returns a single zone that clones g in its entirety, skipping
// clustering altogether. For k > 1, edges are clustered by nearest
// weighted centroid, grouped into per-label edge-induced subgraphs, and
// each subgraph is reduced to its largest weakly-connected component —
// k-means has no notion of graph connectivity, so a cluster can come out
// split across disjoint pieces of the road network; the smaller pieces
// are dropped rather than shipped as an unreachable route. Zones that end
// up with zero edges after that reduction are dropped entirely, so the
// returned slice may contain fewer than k zones. Zones are returned in
// ascending label order with ZoneID reassigned to their position in the
// result.
func Partition(g *roadgraph.Graph, k int, priority Priority) ([]*Zone, error) {
	if k < 1 {
		return nil, ErrInvalidK
	}

	if k == 1 {
		return []*Zone{{Graph: g.Clone(), ZoneID: 0}}, nil
	}

	edges := g.Edges()
	if len(edges) == 0 {
		return nil, nil
	}

	points := make([]point2, len(edges))
	weights := make([]float64, len(edges))
	for i, e := range edges {
		points[i] = edgeMidpoint(g, e)
		weights[i] = edgeWeight(e, priority)
	}

	effectiveK := k
	if effectiveK > len(edges) {
		effectiveK = len(edges)
	}

	labels, _ := weightedKMeans(points, weights, effectiveK)

	byLabel := make(map[int][]string, effectiveK)
	for i, e := range edges {
		byLabel[labels[i]] = append(byLabel[labels[i]], e.ID)
	}

	zones := make([]*Zone, 0, effectiveK)
	for label := 0; label < effectiveK; label++ {
		edgeIDs, ok := byLabel[label]
		if !ok {
			continue
		}

		sub := g.EdgeInducedSubgraph(edgeIDs)
		largest := sub.LargestWeaklyConnectedComponent()
		if largest.NumEdges() == 0 {
			continue
		}

		zones = append(zones, &Zone{Graph: largest, ZoneID: len(zones)})
	}

	return zones, nil
}
