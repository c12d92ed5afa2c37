package hierclust

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Silhouette returns the mean silhouette coefficient of a partition of ds,
// a value in [-1, 1] where higher means tighter, better separated clusters.
// A nil metric means EuclideanMetric.
//
// clusters must partition a subset of ds's rows into at least two non-empty
// clusters; otherwise an error wrapping ErrInvalidInput is returned.
func Silhouette(ds Dataset, clusters [][]int, metric DistanceMetric) (float64, error) {
	samples, err := SilhouetteSamples(ds, clusters, metric)
	if err != nil {
		return 0, err
	}
	return stat.Mean(samples, nil), nil
}

// SilhouetteSamples returns the silhouette coefficient of every clustered
// point, in cluster order then member order. For a point i with mean
// intra-cluster distance a and smallest mean distance b to another cluster,
// s(i) = (b - a) / max(a, b). Points in singleton clusters score 0.
func SilhouetteSamples(ds Dataset, clusters [][]int, metric DistanceMetric) ([]float64, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	if len(clusters) < 2 {
		return nil, fmt.Errorf("%w: silhouette needs at least 2 clusters, got %d", ErrInvalidInput, len(clusters))
	}
	if metric == nil {
		metric = EuclideanMetric{}
	}

	seen := make(map[int]bool)
	total := 0
	for ci, c := range clusters {
		if len(c) == 0 {
			return nil, fmt.Errorf("%w: cluster %d is empty", ErrInvalidInput, ci)
		}
		for _, p := range c {
			if p < 0 || p >= ds.Len() {
				return nil, fmt.Errorf("%w: point %d out of range [0, %d)", ErrInvalidInput, p, ds.Len())
			}
			if seen[p] {
				return nil, fmt.Errorf("%w: point %d appears in more than one cluster", ErrInvalidInput, p)
			}
			seen[p] = true
		}
		total += len(c)
	}

	samples := make([]float64, 0, total)
	for ci, c := range clusters {
		for _, p := range c {
			if len(c) == 1 {
				samples = append(samples, 0)
				continue
			}
			a := meanDistance(ds.Items, metric, p, c)
			var b float64
			first := true
			for cj, other := range clusters {
				if cj == ci {
					continue
				}
				if d := meanDistance(ds.Items, metric, p, other); first || d < b {
					b, first = d, false
				}
			}
			s := 0.0
			if m := max(a, b); m > 0 {
				s = (b - a) / m
			}
			samples = append(samples, s)
		}
	}
	return samples, nil
}

// meanDistance is the mean distance from point p to the members of group
// other than p.
func meanDistance(items [][]float64, metric DistanceMetric, p int, group []int) float64 {
	dists := make([]float64, 0, len(group))
	for _, q := range group {
		if q != p {
			dists = append(dists, metric.Distance(items[p], items[q]))
		}
	}
	if len(dists) == 0 {
		return 0
	}
	return stat.Mean(dists, nil)
}
