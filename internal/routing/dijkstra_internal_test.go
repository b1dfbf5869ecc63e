package routing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flyermap/planner/internal/roadgraph"
)

func lineGraph(t *testing.T) *roadgraph.Graph {
	t.Helper()
	g := roadgraph.NewGraph(true)
	require.NoError(t, g.AddNode("A", 0, 0))
	require.NoError(t, g.AddNode("B", 1, 0))
	require.NoError(t, g.AddNode("C", 2, 0))
	require.NoError(t, g.AddNode("isolated", 9, 9))
	_, err := g.AddEdge("A", "B", roadgraph.EdgeAttrs{Length: 5})
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", roadgraph.EdgeAttrs{Length: 7})
	require.NoError(t, err)

	return g
}

func TestDijkstra_ShortestDistances(t *testing.T) {
	g := lineGraph(t)
	dist, _ := dijkstra(g, "A")

	assert.Equal(t, 0.0, dist["A"])
	assert.Equal(t, 5.0, dist["B"])
	assert.Equal(t, 12.0, dist["C"])
	assert.True(t, math.IsInf(dist["isolated"], 1))
}

func TestShortestPath_Reconstruction(t *testing.T) {
	g := lineGraph(t)
	dist, prev := dijkstra(g, "A")

	path := shortestPath(dist, prev, "A", "C")
	assert.Equal(t, []string{"A", "B", "C"}, path)

	assert.Nil(t, shortestPath(dist, prev, "A", "isolated"))
	assert.Equal(t, []string{"A"}, shortestPath(dist, prev, "A", "A"))
}

func TestEdgeCoverWalk_CoversAllEdgesOfATriangle(t *testing.T) {
	g := roadgraph.NewGraph(false)
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddNode(id, 0, 0))
	}
	_, err := g.AddEdge("A", "B", roadgraph.EdgeAttrs{Length: 1})
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", roadgraph.EdgeAttrs{Length: 1})
	require.NoError(t, err)
	_, err = g.AddEdge("C", "A", roadgraph.EdgeAttrs{Length: 1})
	require.NoError(t, err)

	_, edgeOrder := edgeCoverWalk(g, "A", false)
	assert.Len(t, edgeOrder, 3)
}
