package hierclust

import (
	"fmt"
	"math"
)

// Distances returns the linkage distance from item to every final cluster,
// in the order of Clusters: the minimum member distance for single linkage,
// the maximum for complete and the mean for average. Other linkages and
// divisive results return ErrUnsupportedOperation.
//
// For complete and average linkage Classify returns the argmin of these
// values, ties to the lowest cluster index. For single linkage Classify
// follows the nearest training point instead, ties to the lowest point index,
// so on an exact tie between clusters it may pick a later cluster than the
// argmin of Distances would.
func (r *Result) Distances(item []float64) ([]float64, error) {
	pl, err := r.pointLinkage(item)
	if err != nil {
		return nil, err
	}
	return r.clusterDistances(pl, item), nil
}

// Classify returns the index into Clusters of the cluster item belongs to,
// using the metric the clustering was built with.
//
// Single linkage assigns the cluster of the nearest training point; equally
// near points resolve to the lowest point index. A KD-tree over the training
// rows answers the query when the metric allows it. Complete and average
// linkage pick the cluster with the smallest Distances entry, ties to the
// lowest cluster index.
//
// Ward, centroid, median and weighted-average results, and divisive results,
// return ErrUnsupportedOperation. A row of the wrong width returns
// ErrInvalidInput.
func (r *Result) Classify(item []float64) (int, error) {
	pl, err := r.pointLinkage(item)
	if err != nil {
		return -1, err
	}

	if _, ok := pl.(SingleLinkage); ok {
		r.nnOnce.Do(r.buildNearestIndex)
		var p int
		if r.nn != nil {
			p, _ = r.nn.nearest(item)
		} else {
			p, _ = nearestLinear(r.dataset.Items, r.metric, item)
		}
		return r.pointCluster[p], nil
	}

	best, bestDist := -1, math.Inf(1)
	for ci, d := range r.clusterDistances(pl, item) {
		if best < 0 || d < bestDist {
			best, bestDist = ci, d
		}
	}
	return best, nil
}

// pointLinkage checks that r can relate a new point to its clusters.
func (r *Result) pointLinkage(item []float64) (pointLinkage, error) {
	if r.linkage == nil {
		return nil, fmt.Errorf("%w: divisive results cannot classify new points", ErrUnsupportedOperation)
	}
	pl, ok := r.linkage.(pointLinkage)
	if !ok {
		return nil, fmt.Errorf("%w: %s linkage cannot classify new points", ErrUnsupportedOperation, r.linkage.Name())
	}
	if len(item) != r.dataset.Dims() {
		return nil, fmt.Errorf("%w: item has %d values, want %d", ErrInvalidInput, len(item), r.dataset.Dims())
	}
	return pl, nil
}

func (r *Result) clusterDistances(pl pointLinkage, item []float64) []float64 {
	out := make([]float64, len(r.IndexClusters))
	var dists []float64
	for ci, members := range r.IndexClusters {
		dists = dists[:0]
		for _, p := range members {
			dists = append(dists, r.metric.Distance(item, r.dataset.Items[p]))
		}
		out[ci] = pl.pointDistance(dists)
	}
	return out
}

// buildNearestIndex maps each point to its cluster and, for axis-decomposable
// metrics, indexes the training rows in a KD-tree.
func (r *Result) buildNearestIndex() {
	r.pointCluster = make([]int, r.dataset.Len())
	for ci, members := range r.IndexClusters {
		for _, p := range members {
			r.pointCluster[p] = ci
		}
	}
	if KDTreeValidMetric(r.metric) {
		r.nn = newKDTree(r.dataset.Items, r.metric, defaultLeafSize)
	}
}
