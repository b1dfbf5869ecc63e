package density_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flyermap/planner/internal/density"
	"github.com/flyermap/planner/internal/geoarea"
	"github.com/flyermap/planner/internal/roadgraph"
)

func straightLineGraph(t *testing.T) *roadgraph.Graph {
	t.Helper()
	g := roadgraph.NewGraph(true)
	require.NoError(t, g.AddNode("1", -74.000, 40.700))
	require.NoError(t, g.AddNode("2", -74.000, 40.701))
	_, err := g.AddEdge("1", "2", roadgraph.EdgeAttrs{Length: 111.0, Highway: "residential", Name: "Elm St"})
	require.NoError(t, err)

	return g
}

func TestEstimate_AssignsBuildingToNearestEdge(t *testing.T) {
	g := straightLineGraph(t)

	buildings := []density.Building{
		{Kind: "apartments", Levels: 3, Centroid: geoarea.Point{Lat: 40.7005, Lng: -74.0001}},
		{Kind: "house", Levels: 1, Centroid: geoarea.Point{Lat: 40.7002, Lng: -74.0001}},
	}

	out := density.Estimate(g, geoarea.Polygon{}, buildings, density.DefaultMaxDistanceM)
	require.Equal(t, 1, out.NumEdges())

	e := out.Edges()[0]
	assert.Equal(t, 12+1, e.EstimatedAddresses, "3-level apartment building (4*3=12) plus one house (1)")
}

func TestEstimate_FallsBackToRoadLengthWhenNoBuildingsMatch(t *testing.T) {
	g := straightLineGraph(t)

	out := density.Estimate(g, geoarea.Polygon{}, nil, density.DefaultMaxDistanceM)
	require.Equal(t, 1, out.NumEdges())

	e := out.Edges()[0]
	assert.Equal(t, density.EstimateFromRoadLength(e.Length, e.Highway), e.EstimatedAddresses)
	assert.Greater(t, e.EstimatedAddresses, 0)
}

func TestEstimate_FallsBackWhenEveryBuildingIsOutOfRange(t *testing.T) {
	g := straightLineGraph(t)

	far := []density.Building{
		{Kind: "house", Levels: 1, Centroid: geoarea.Point{Lat: 41.5, Lng: -75.5}},
	}

	out := density.Estimate(g, geoarea.Polygon{}, far, density.DefaultMaxDistanceM)
	e := out.Edges()[0]
	assert.Equal(t, density.EstimateFromRoadLength(e.Length, e.Highway), e.EstimatedAddresses)
}

func TestEstimate_DoesNotMutateInput(t *testing.T) {
	g := straightLineGraph(t)
	before := g.Edges()[0].EstimatedAddresses

	_ = density.Estimate(g, geoarea.Polygon{}, nil, density.DefaultMaxDistanceM)

	assert.Equal(t, before, g.Edges()[0].EstimatedAddresses)
}

func TestUnitsPerBuilding(t *testing.T) {
	cases := []struct {
		name string
		b    density.Building
		want int
	}{
		{"apartments 1 level floors to minimum 4", density.Building{Kind: "apartments", Levels: 1}, 4},
		{"apartments 5 levels", density.Building{Kind: "apartments", Levels: 5}, 20},
		{"house always one unit", density.Building{Kind: "house", Levels: 3}, 1},
		{"unknown kind defaults to one unit", density.Building{Levels: 2}, 1},
		{"missing levels defaults to 1", density.Building{Kind: "apartments", Levels: 0}, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, density.UnitsPerBuilding(tc.b))
		})
	}
}

func TestEstimateFromRoadLength_ClassRates(t *testing.T) {
	assert.Equal(t, 20, density.EstimateFromRoadLength(100, "residential"))
	assert.Equal(t, 30, density.EstimateFromRoadLength(100, "living_street"))
	assert.Equal(t, 10, density.EstimateFromRoadLength(100, "some_unrecognized_class"))
	assert.Equal(t, 0, density.EstimateFromRoadLength(0, "residential"))
}
