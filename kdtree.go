package hierclust

import (
	"math"
	"sort"
)

// defaultLeafSize is the maximum number of points in a KD-tree leaf.
const defaultLeafSize = 16

// KDTreeValidMetric reports whether the metric supports KD-tree acceleration.
// KD-trees require metrics that grow with every per-axis difference:
// squared Euclidean, Euclidean, Manhattan, Chebyshev, Minkowski.
func KDTreeValidMetric(m DistanceMetric) bool {
	switch m.(type) {
	case SquaredEuclideanMetric, EuclideanMetric, ManhattanMetric, ChebyshevMetric, MinkowskiMetric:
		return true
	default:
		return false
	}
}

// kdTree is a KD-tree over the rows of a dataset, used to find the nearest
// training point of a new row. Rows are referenced, not copied; idx is the
// permutation from tree order to row index.
type kdTree struct {
	items    [][]float64
	idx      []int
	nodes    []kdNode
	metric   DistanceMetric
	leafSize int
}

type kdNode struct {
	start, end  int
	left, right int // -1 for leaves
	lo, hi      []float64
}

// newKDTree builds a KD-tree over items. items must be non-empty and
// rectangular.
func newKDTree(items [][]float64, metric DistanceMetric, leafSize int) *kdTree {
	if leafSize < 1 {
		leafSize = 1
	}
	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	t := &kdTree{
		items:    items,
		idx:      idx,
		metric:   metric,
		leafSize: leafSize,
	}
	t.build(0, len(items))
	return t
}

// build creates the node for idx[start:end] and its subtree, returning the
// node's position.
func (t *kdTree) build(start, end int) int {
	dims := len(t.items[t.idx[start]])
	lo := make([]float64, dims)
	hi := make([]float64, dims)
	for d := 0; d < dims; d++ {
		lo[d] = math.Inf(1)
		hi[d] = math.Inf(-1)
	}
	for _, p := range t.idx[start:end] {
		for d, v := range t.items[p] {
			lo[d] = min(lo[d], v)
			hi[d] = max(hi[d], v)
		}
	}

	id := len(t.nodes)
	t.nodes = append(t.nodes, kdNode{start: start, end: end, left: -1, right: -1, lo: lo, hi: hi})
	if end-start <= t.leafSize {
		return id
	}

	// Split on the dimension with the greatest spread.
	splitDim := 0
	maxSpread := -1.0
	for d := 0; d < dims; d++ {
		if spread := hi[d] - lo[d]; spread > maxSpread {
			maxSpread = spread
			splitDim = d
		}
	}
	if maxSpread <= 0 {
		return id // all points identical
	}

	sub := t.idx[start:end]
	sort.SliceStable(sub, func(i, j int) bool {
		return t.items[sub[i]][splitDim] < t.items[sub[j]][splitDim]
	})
	mid := start + (end-start)/2

	left := t.build(start, mid)
	right := t.build(mid, end)
	t.nodes[id].left = left
	t.nodes[id].right = right
	return id
}

// nearest returns the row closest to query and its distance. Among equally
// close rows the lowest row index wins, matching a linear scan. The search
// compares reduced distances and converts only the winner.
func (t *kdTree) nearest(query []float64) (int, float64) {
	best, bestDist := -1, math.Inf(1)
	t.search(0, query, &best, &bestDist)
	if best < 0 {
		return best, bestDist
	}
	return best, t.metric.Distance(query, t.items[best])
}

func (t *kdTree) search(id int, query []float64, best *int, bestDist *float64) {
	node := &t.nodes[id]
	if node.left < 0 {
		for _, p := range t.idx[node.start:node.end] {
			d := t.metric.ReducedDistance(query, t.items[p])
			if *best < 0 || d < *bestDist || (d == *bestDist && p < *best) {
				*best, *bestDist = p, d
			}
		}
		return
	}

	near, far := node.left, node.right
	nearBound, farBound := t.lowerBound(near, query), t.lowerBound(far, query)
	if farBound < nearBound {
		near, far = far, near
		farBound = nearBound
	}

	t.search(near, query, best, bestDist)
	// Visit the far side on equal bounds too, so ties resolve by row index.
	if *best < 0 || farBound <= *bestDist {
		t.search(far, query, best, bestDist)
	}
}

// lowerBound is the reduced distance from query to the closest point of a
// node's bounding box: the metric applied to query and its projection onto
// the box.
func (t *kdTree) lowerBound(id int, query []float64) float64 {
	node := &t.nodes[id]
	clamped := make([]float64, len(query))
	for d, v := range query {
		clamped[d] = min(max(v, node.lo[d]), node.hi[d])
	}
	return t.metric.ReducedDistance(query, clamped)
}

// nearestLinear is the brute-force counterpart of kdTree.nearest.
func nearestLinear(items [][]float64, metric DistanceMetric, query []float64) (int, float64) {
	best, bestDist := -1, math.Inf(1)
	for p, row := range items {
		d := metric.ReducedDistance(query, row)
		if best < 0 || d < bestDist {
			best, bestDist = p, d
		}
	}
	if best < 0 {
		return best, bestDist
	}
	return best, metric.Distance(query, items[best])
}
