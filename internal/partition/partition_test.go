package partition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flyermap/planner/internal/partition"
	"github.com/flyermap/planner/internal/roadgraph"
)

// gridGraph builds an n x n grid of nodes with bidirectional streets
// between every horizontal and vertical neighbor pair, each edge weighted
// with a uniform EstimatedAddresses, so clustering has an unambiguous
// spatial structure to find.
func gridGraph(t *testing.T, n int) *roadgraph.Graph {
	t.Helper()
	g := roadgraph.NewGraph(true)
	id := func(x, y int) string { return string(rune('A'+x)) + string(rune('a'+y)) }

	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			require.NoError(t, g.AddNode(id(x, y), float64(x), float64(y)))
		}
	}
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			if x+1 < n {
				_, err := g.AddEdge(id(x, y), id(x+1, y), roadgraph.EdgeAttrs{Length: 1, Highway: "residential", EstimatedAddresses: 10})
				require.NoError(t, err)
				_, err = g.AddEdge(id(x+1, y), id(x, y), roadgraph.EdgeAttrs{Length: 1, Highway: "residential", EstimatedAddresses: 10})
				require.NoError(t, err)
			}
			if y+1 < n {
				_, err := g.AddEdge(id(x, y), id(x, y+1), roadgraph.EdgeAttrs{Length: 1, Highway: "residential", EstimatedAddresses: 10})
				require.NoError(t, err)
				_, err = g.AddEdge(id(x, y+1), id(x, y), roadgraph.EdgeAttrs{Length: 1, Highway: "residential", EstimatedAddresses: 10})
				require.NoError(t, err)
			}
		}
	}

	return g
}

func TestPartition_KEqualsOneClonesWholeGraph(t *testing.T) {
	g := gridGraph(t, 3)

	zones, err := partition.Partition(g, 1, partition.PriorityDensity)
	require.NoError(t, err)
	require.Len(t, zones, 1)
	assert.Equal(t, g.NumEdges(), zones[0].NumEdges())
	assert.Equal(t, 0, zones[0].ZoneID)
}

func TestPartition_ZonesAreConnectedAndDisjoint(t *testing.T) {
	g := gridGraph(t, 4)

	zones, err := partition.Partition(g, 4, partition.PriorityDensity)
	require.NoError(t, err)
	require.NotEmpty(t, zones)

	seen := make(map[string]int)
	for _, z := range zones {
		comps := z.Graph.Undirected().WeaklyConnectedComponents()
		assert.Len(t, comps, 1, "zone %d must be a single connected component", z.ZoneID)

		for _, e := range z.Edges() {
			seen[e.ID]++
		}
	}
	for id, count := range seen {
		assert.Equal(t, 1, count, "edge %s must belong to exactly one zone", id)
	}
}

func TestPartition_ZoneIDsAreSequentialFromZero(t *testing.T) {
	g := gridGraph(t, 4)

	zones, err := partition.Partition(g, 3, partition.PriorityDensity)
	require.NoError(t, err)
	for i, z := range zones {
		assert.Equal(t, i, z.ZoneID)
	}
}

func TestPartition_InvalidK(t *testing.T) {
	g := gridGraph(t, 2)

	_, err := partition.Partition(g, 0, partition.PriorityDensity)
	assert.ErrorIs(t, err, partition.ErrInvalidK)
}

func TestPartition_KClampedToEdgeCount(t *testing.T) {
	g := roadgraph.NewGraph(true)
	require.NoError(t, g.AddNode("1", 0, 0))
	require.NoError(t, g.AddNode("2", 1, 0))
	_, err := g.AddEdge("1", "2", roadgraph.EdgeAttrs{Length: 1, Highway: "residential"})
	require.NoError(t, err)

	zones, err := partition.Partition(g, 20, partition.PriorityDensity)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(zones), g.NumEdges())
}

func TestPartition_AreaPriorityUsesLength(t *testing.T) {
	g := gridGraph(t, 3)

	zones, err := partition.Partition(g, 2, partition.PriorityArea)
	require.NoError(t, err)
	assert.NotEmpty(t, zones)
}
