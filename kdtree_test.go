package hierclust

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKDTreeValidMetric(t *testing.T) {
	assert.True(t, KDTreeValidMetric(SquaredEuclideanMetric{}))
	assert.True(t, KDTreeValidMetric(EuclideanMetric{}))
	assert.True(t, KDTreeValidMetric(ManhattanMetric{}))
	assert.True(t, KDTreeValidMetric(ChebyshevMetric{}))
	assert.True(t, KDTreeValidMetric(MinkowskiMetric{P: 3}))
	assert.False(t, KDTreeValidMetric(CosineMetric{}))
	assert.False(t, KDTreeValidMetric(HammingMetric{}))
	assert.False(t, KDTreeValidMetric(DistanceFunc(func(a, b []float64) float64 { return 0 })))
}

func TestKDTree_MatchesLinearScan(t *testing.T) {
	items := generateBenchData(500, 3)
	rng := rand.New(rand.NewSource(7))
	metrics := []DistanceMetric{
		SquaredEuclideanMetric{}, EuclideanMetric{}, ManhattanMetric{},
		ChebyshevMetric{}, MinkowskiMetric{P: 3},
	}
	for _, m := range metrics {
		for _, leafSize := range []int{1, 4, defaultLeafSize} {
			tree := newKDTree(items, m, leafSize)
			for q := 0; q < 100; q++ {
				query := []float64{rng.Float64() * 120, rng.Float64() * 120, rng.Float64() * 120}
				gotIdx, gotDist := tree.nearest(query)
				wantIdx, wantDist := nearestLinear(items, m, query)
				require.Equal(t, wantIdx, gotIdx)
				require.InDelta(t, wantDist, gotDist, 1e-9)
			}
		}
	}
}

func TestKDTree_TiesResolveToLowestIndex(t *testing.T) {
	items := [][]float64{
		{5, 5}, {1, 1}, {9, 9}, {1, 1}, {3, 7}, {1, 1}, {8, 2}, {1, 1},
	}
	tree := newKDTree(items, SquaredEuclideanMetric{}, 1)

	idx, dist := tree.nearest([]float64{1, 1})
	assert.Equal(t, 1, idx)
	assert.Zero(t, dist)

	// Equidistant from rows 0 ([5,5]) and 2 ([9,9]) is [7,7]; row 0 wins.
	idx, _ = tree.nearest([]float64{7, 7})
	assert.Equal(t, 0, idx)
}

func TestKDTree_IdenticalPoints(t *testing.T) {
	items := make([][]float64, 40)
	for i := range items {
		items[i] = []float64{2, 2}
	}
	tree := newKDTree(items, EuclideanMetric{}, 4)
	require.Len(t, tree.nodes, 1)

	idx, dist := tree.nearest([]float64{5, 6})
	assert.Equal(t, 0, idx)
	assert.InDelta(t, 5.0, dist, 1e-12)
}

// countingMetric wraps squared Euclidean distance and counts calls.
type countingMetric struct {
	distance, reduced *int
}

func (m countingMetric) Distance(a, b []float64) float64 {
	*m.distance++
	return SquaredEuclideanMetric{}.Distance(a, b)
}

func (m countingMetric) ReducedDistance(a, b []float64) float64 {
	*m.reduced++
	return SquaredEuclideanMetric{}.ReducedDistance(a, b)
}

func TestNearest_ComparesReducedDistances(t *testing.T) {
	items := generateBenchData(200, 2)
	query := []float64{50, 50}
	var distance, reduced int
	m := countingMetric{distance: &distance, reduced: &reduced}

	wantIdx, wantDist := nearestLinear(items, m, query)
	assert.Equal(t, 1, distance)
	assert.Equal(t, len(items), reduced)

	distance, reduced = 0, 0
	idx, dist := newKDTree(items, m, 4).nearest(query)
	assert.Equal(t, wantIdx, idx)
	assert.Equal(t, wantDist, dist)
	assert.Equal(t, 1, distance)
	assert.Positive(t, reduced)
}

func TestNearest_ReturnsFullDistance(t *testing.T) {
	items := [][]float64{{0, 0}, {3, 4}}
	_, dist := newKDTree(items, EuclideanMetric{}, 1).nearest([]float64{6, 8})
	assert.InDelta(t, 5.0, dist, 1e-12)
	_, dist = nearestLinear(items, EuclideanMetric{}, []float64{6, 8})
	assert.InDelta(t, 5.0, dist, 1e-12)
}
