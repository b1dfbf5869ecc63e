package partition

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flyermap/planner/internal/roadgraph"
)

func edgeFixture(estimatedAddresses int, length float64) roadgraph.Edge {
	return roadgraph.Edge{EstimatedAddresses: estimatedAddresses, Length: length}
}

func TestWeightedKMeans_Deterministic(t *testing.T) {
	points := []point2{
		{X: 0, Y: 0}, {X: 0.1, Y: 0}, {X: 0, Y: 0.1},
		{X: 10, Y: 10}, {X: 10.1, Y: 10}, {X: 10, Y: 10.1},
	}
	weights := []float64{1, 1, 1, 1, 1, 1}

	labels1, _ := weightedKMeans(points, weights, 2)
	labels2, _ := weightedKMeans(points, weights, 2)

	assert.Equal(t, labels1, labels2, "same input must always produce the same clustering")
	assert.Equal(t, labels1[0], labels1[1])
	assert.Equal(t, labels1[0], labels1[2])
	assert.Equal(t, labels1[3], labels1[4])
	assert.Equal(t, labels1[3], labels1[5])
	assert.NotEqual(t, labels1[0], labels1[3])
}

func TestWeightedKMeans_SingleCluster(t *testing.T) {
	points := []point2{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}
	weights := []float64{1, 2, 3}

	labels, centroids := weightedKMeans(points, weights, 1)
	a := assert.New(t)
	a.Len(centroids, 1)
	for _, l := range labels {
		a.Equal(0, l)
	}
}

func TestEdgeWeight_FlooredAtOne(t *testing.T) {
	assert.Equal(t, 1.0, edgeWeight(edgeFixture(0, 0), PriorityDensity))
	assert.Equal(t, 1.0, edgeWeight(edgeFixture(0, 0), PriorityArea))
	assert.Equal(t, 5.0, edgeWeight(edgeFixture(5, 2), PriorityDensity))
	assert.Equal(t, 2.0, edgeWeight(edgeFixture(5, 2), PriorityArea))
}
