package roadgraph_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flyermap/planner/internal/roadgraph"
)

func TestWeaklyConnectedComponents_SplitsDisjointIslands(t *testing.T) {
	g := roadgraph.NewGraph(true)
	for _, id := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddNode(id, 0, 0))
	}
	_, _ = g.AddEdge("A", "B", roadgraph.EdgeAttrs{Length: 1})
	_, _ = g.AddEdge("C", "D", roadgraph.EdgeAttrs{Length: 1})

	comps := g.WeaklyConnectedComponents()
	require.Len(t, comps, 2)

	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	assert.Equal(t, []int{2, 2}, sizes)
}

func TestLargestWeaklyConnectedComponent_DropsSmaller(t *testing.T) {
	g := roadgraph.NewGraph(true)
	for _, id := range []string{"A", "B", "C", "X", "Y"} {
		require.NoError(t, g.AddNode(id, 0, 0))
	}
	_, _ = g.AddEdge("A", "B", roadgraph.EdgeAttrs{Length: 1})
	_, _ = g.AddEdge("B", "C", roadgraph.EdgeAttrs{Length: 1})
	_, _ = g.AddEdge("X", "Y", roadgraph.EdgeAttrs{Length: 1})

	largest := g.LargestWeaklyConnectedComponent()
	assert.Equal(t, 3, largest.NumNodes())
	assert.Equal(t, 2, largest.NumEdges())
	assert.True(t, largest.HasNode("A"))
	assert.False(t, largest.HasNode("X"))
}

func TestLargestWeaklyConnectedComponent_AlreadyConnected(t *testing.T) {
	g := roadgraph.NewGraph(true)
	require.NoError(t, g.AddNode("A", 0, 0))
	require.NoError(t, g.AddNode("B", 0, 0))
	_, _ = g.AddEdge("A", "B", roadgraph.EdgeAttrs{Length: 1})

	largest := g.LargestWeaklyConnectedComponent()
	assert.Equal(t, 2, largest.NumNodes())
	assert.Equal(t, 1, largest.NumEdges())
}
