package hierclust

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Linkage defines how the distance from a freshly merged cluster p∪q to
// another cluster r is derived from the distances between p, q and r
// (the Lance-Williams recurrence). np, nq and nr are cluster sizes.
type Linkage interface {
	Name() string
	Distance(dpr, dqr, dpq float64, np, nq, nr int) float64
}

// pointLinkage is implemented by linkages whose rule also applies between a
// single new point and an existing cluster. Only those results can classify.
type pointLinkage interface {
	Linkage
	// pointDistance reduces the distances from a point to every member of a
	// cluster into one point-to-cluster distance. dists is never empty.
	pointDistance(dists []float64) float64
}

// SingleLinkage uses the closest pair of members: min(d(p,r), d(q,r)).
type SingleLinkage struct{}

func (SingleLinkage) Name() string { return "single" }

func (SingleLinkage) Distance(dpr, dqr, _ float64, _, _, _ int) float64 {
	return min(dpr, dqr)
}

func (SingleLinkage) pointDistance(dists []float64) float64 { return floats.Min(dists) }

// CompleteLinkage uses the farthest pair of members: max(d(p,r), d(q,r)).
type CompleteLinkage struct{}

func (CompleteLinkage) Name() string { return "complete" }

func (CompleteLinkage) Distance(dpr, dqr, _ float64, _, _, _ int) float64 {
	return max(dpr, dqr)
}

func (CompleteLinkage) pointDistance(dists []float64) float64 { return floats.Max(dists) }

// AverageLinkage (UPGMA) uses the mean distance over all member pairs.
type AverageLinkage struct{}

func (AverageLinkage) Name() string { return "average" }

func (AverageLinkage) Distance(dpr, dqr, _ float64, np, nq, _ int) float64 {
	fp, fq := float64(np), float64(nq)
	return (fp*dpr + fq*dqr) / (fp + fq)
}

func (AverageLinkage) pointDistance(dists []float64) float64 { return stat.Mean(dists, nil) }

// WeightedAverageLinkage (WPGMA) averages the two sub-cluster distances
// without regard to their sizes.
type WeightedAverageLinkage struct{}

func (WeightedAverageLinkage) Name() string { return "weighted_average" }

func (WeightedAverageLinkage) Distance(dpr, dqr, _ float64, _, _, _ int) float64 {
	return (dpr + dqr) / 2
}

// CentroidLinkage (UPGMC) tracks the distance between cluster centroids.
// Exact only for squared Euclidean input distances.
type CentroidLinkage struct{}

func (CentroidLinkage) Name() string { return "centroid" }

func (CentroidLinkage) Distance(dpr, dqr, dpq float64, np, nq, _ int) float64 {
	fp, fq := float64(np), float64(nq)
	sum := fp + fq
	return (fp*dpr+fq*dqr)/sum - (fp*fq*dpq)/(sum*sum)
}

// MedianLinkage (WPGMC) is the centroid rule with both sub-clusters weighted
// equally. Exact only for squared Euclidean input distances.
type MedianLinkage struct{}

func (MedianLinkage) Name() string { return "median" }

func (MedianLinkage) Distance(dpr, dqr, dpq float64, _, _, _ int) float64 {
	return dpr/2 + dqr/2 - dpq/4
}

// WardLinkage merges the pair that least increases total within-cluster
// variance. The variance interpretation needs squared Euclidean distances;
// with any other metric the recurrence still runs and yields a different,
// non-standard hierarchy.
type WardLinkage struct{}

func (WardLinkage) Name() string { return "ward" }

func (WardLinkage) Distance(dpr, dqr, dpq float64, np, nq, nr int) float64 {
	fp, fq, fr := float64(np), float64(nq), float64(nr)
	return ((fp+fr)*dpr + (fq+fr)*dqr - fr*dpq) / (fp + fq + fr)
}

// LinkageByName resolves the linkage names accepted in configuration files.
func LinkageByName(name string) (Linkage, error) {
	switch name {
	case "", "single":
		return SingleLinkage{}, nil
	case "complete":
		return CompleteLinkage{}, nil
	case "average":
		return AverageLinkage{}, nil
	case "weighted_average":
		return WeightedAverageLinkage{}, nil
	case "centroid":
		return CentroidLinkage{}, nil
	case "median":
		return MedianLinkage{}, nil
	case "ward":
		return WardLinkage{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown linkage %q", ErrInvalidInput, name)
	}
}

// SupportsClassify reports whether results built with l can classify new
// points. True for single, complete and average linkage.
func SupportsClassify(l Linkage) bool {
	_, ok := l.(pointLinkage)
	return ok
}

// linkageDistance returns d(p∪q, r) for entities of dm, where sizes is
// indexed by entity.
func linkageDistance(l Linkage, dm *DistanceMatrix, sizes []int, r, p, q int) float64 {
	return l.Distance(dm.At(p, r), dm.At(q, r), dm.At(p, q), sizes[p], sizes[q], sizes[r])
}
