package partition

import (
	"math"
	"math/rand"
)

// kmeansSeed and kmeansRestarts fix the partitioner's search for a good
// clustering: same graph, same k, same priority always produces the same
// zones.
const (
	kmeansSeed     = 42
	kmeansRestarts = 10
	kmeansMaxIters = 100
)

// weightedKMeans assigns each of points[i] (with weight weights[i]) to one
// of k clusters, minimizing total weighted squared distance to cluster
// centroids. It runs kmeansRestarts independent random restarts from a
// fixed seed and keeps the lowest-inertia result, since Lloyd's algorithm
// only finds a local optimum from any single start.
//
// Ties in the winning restart's final assignment are broken by lowest
// cluster index, via the order clusters are iterated in assignToNearest.
func weightedKMeans(points []point2, weights []float64, k int) (labels []int, centroids []point2) {
	rng := rand.New(rand.NewSource(kmeansSeed))

	var bestLabels []int
	var bestCentroids []point2
	bestInertia := math.Inf(1)

	for restart := 0; restart < kmeansRestarts; restart++ {
		labels, centroids := runOnce(rng, points, weights, k)
		inertia := weightedInertia(points, weights, labels, centroids)
		if inertia < bestInertia {
			bestInertia = inertia
			bestLabels = labels
			bestCentroids = centroids
		}
	}

	return bestLabels, bestCentroids
}

func runOnce(rng *rand.Rand, points []point2, weights []float64, k int) ([]int, []point2) {
	centroids := seedCentroids(rng, points, weights, k)
	labels := make([]int, len(points))

	for iter := 0; iter < kmeansMaxIters; iter++ {
		changed := false
		for i, p := range points {
			label := assignToNearest(p, centroids)
			if label != labels[i] {
				labels[i] = label
				changed = true
			}
		}

		next := recomputeCentroids(points, weights, labels, centroids, k)
		if !changed {
			centroids = next

			break
		}
		centroids = next
	}

	return labels, centroids
}

// seedCentroids samples k distinct points with probability proportional to
// weight, a weighted analogue of the classic random-sample k-means init.
func seedCentroids(rng *rand.Rand, points []point2, weights []float64, k int) []point2 {
	total := 0.0
	for _, w := range weights {
		total += w
	}

	chosen := make(map[int]bool, k)
	centroids := make([]point2, 0, k)
	for len(centroids) < k && len(chosen) < len(points) {
		target := rng.Float64() * total
		acc := 0.0
		idx := len(points) - 1
		for i, w := range weights {
			acc += w
			if acc >= target {
				idx = i

				break
			}
		}
		if chosen[idx] {
			continue
		}
		chosen[idx] = true
		centroids = append(centroids, points[idx])
	}

	// Fewer distinct points than k (degenerate input): pad by repeating
	// the last chosen centroid so every cluster index is still valid.
	for len(centroids) < k {
		centroids = append(centroids, centroids[len(centroids)-1])
	}

	return centroids
}

func assignToNearest(p point2, centroids []point2) int {
	best, bestDist := 0, dist2(p, centroids[0])
	for i := 1; i < len(centroids); i++ {
		d := dist2(p, centroids[i])
		if d < bestDist {
			best, bestDist = i, d
		}
	}

	return best
}

func recomputeCentroids(points []point2, weights []float64, labels []int, prev []point2, k int) []point2 {
	sumX := make([]float64, k)
	sumY := make([]float64, k)
	sumW := make([]float64, k)
	for i, p := range points {
		l := labels[i]
		sumX[l] += p.X * weights[i]
		sumY[l] += p.Y * weights[i]
		sumW[l] += weights[i]
	}

	out := make([]point2, k)
	for l := 0; l < k; l++ {
		if sumW[l] == 0 {
			out[l] = prev[l] // empty cluster: keep its previous centroid in place

			continue
		}
		out[l] = point2{X: sumX[l] / sumW[l], Y: sumY[l] / sumW[l]}
	}

	return out
}

func weightedInertia(points []point2, weights []float64, labels []int, centroids []point2) float64 {
	total := 0.0
	for i, p := range points {
		total += weights[i] * dist2(p, centroids[labels[i]])
	}

	return total
}
