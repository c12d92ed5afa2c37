package hierclust

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimumSpanningTree_Spans(t *testing.T) {
	dm := newDistanceMatrix(fixtureItems(), SquaredEuclideanMetric{})
	edges := MinimumSpanningTree(dm)
	require.Len(t, edges, 11)

	uf := NewUnionFind(12)
	for _, e := range edges {
		a, b := int(e[0]), int(e[1])
		require.NotEqual(t, uf.Find(a), uf.Find(b), "edge %v closes a cycle", e)
		assert.Equal(t, dm.At(a, b), e[2])
		uf.Merge(a, b)
	}
}

func TestMinimumSpanningTree_Trivial(t *testing.T) {
	assert.Nil(t, MinimumSpanningTree(newDistanceMatrix([][]float64{{1}}, SquaredEuclideanMetric{})))

	edges := MinimumSpanningTree(newDistanceMatrix([][]float64{{1}, {4}}, SquaredEuclideanMetric{}))
	assert.Equal(t, [][3]float64{{0, 1, 9}}, edges)
}

func TestMinimumSpanningTree_Disconnected(t *testing.T) {
	metric := DistanceFunc(func(a, b []float64) float64 {
		if math.Abs(a[0]-b[0]) > 5 {
			return math.Inf(1)
		}
		return math.Abs(a[0] - b[0])
	})
	dm := newDistanceMatrix([][]float64{{0}, {1}, {20}}, metric)
	edges := MinimumSpanningTree(dm)
	require.Len(t, edges, 2)
	assert.Equal(t, [3]float64{0, 1, 1}, edges[0])
	assert.True(t, math.IsInf(edges[1][2], 1))
	assert.Equal(t, 2.0, edges[1][1])
}

// Single-linkage merges and the spanning-tree dendrogram reach every level at
// the same height.
func TestSingleLinkageTree_MatchesAgglomerative(t *testing.T) {
	ds := Dataset{Items: generateBenchData(60, 3)}
	for _, m := range []DistanceMetric{SquaredEuclideanMetric{}, ManhattanMetric{}, CosineMetric{}} {
		cfg := DefaultConfig()
		cfg.Metric = m
		r, err := Agglomerative(ds, 1, cfg)
		require.NoError(t, err)

		tree := SingleLinkageTree(newDistanceMatrix(ds.Items, m))
		require.Len(t, tree, len(r.Dendrogram))

		got := make([]float64, len(tree))
		want := make([]float64, len(tree))
		for i := range tree {
			got[i] = tree[i][2]
			want[i] = r.Dendrogram[i][2]
		}
		sort.Float64s(got)
		sort.Float64s(want)
		assert.InDeltaSlice(t, want, got, 1e-9)
		assert.Equal(t, float64(ds.Len()), tree[len(tree)-1][3])
	}
}
