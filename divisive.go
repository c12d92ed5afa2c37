package hierclust

import (
	"fmt"
	"sort"

	"github.com/projectdiscovery/gologger"
)

// divider owns the mutable state of one DIANA run.
type divider struct {
	dm       *DistanceMatrix
	clusters [][]int
	tree     *ClusterTree
	splits   int
}

// Divisive clusters ds top-down with DIANA (DIvisive ANAlysis) into
// numClusters clusters.
//
// All points start in one cluster. Each step picks the cluster with the
// largest diameter among those with at least two points (ties go to the
// first in current order) and splinters it in two: the point with the largest
// average distance to the rest seeds a splinter group, then points that are on
// average closer to the splinter group than to their remaining peers move
// across one at a time, most eager first. The remainder stays in place and
// the splinter group is appended.
//
// numClusters may exceed the number of points. Splitting then stops once every
// cluster is a single point and Result.Exhausted is set, or, with cfg.Strict,
// the run fails with ErrInsufficientData.
//
// Returns an error wrapping ErrInvalidInput for an invalid dataset or when
// numClusters < 1.
func Divisive(ds Dataset, numClusters int, cfg Config) (*Result, error) {
	if err := prepare(ds, &cfg); err != nil {
		return nil, err
	}
	if numClusters < 1 {
		return nil, fmt.Errorf("%w: number of clusters must be >= 1, got %d", ErrInvalidInput, numClusters)
	}

	d, err := divide(newDistanceMatrix(ds.Items, cfg.Metric), numClusters, cfg)
	if err != nil {
		return nil, err
	}

	r := newResult(ds, numClusters, d.clusters, cfg)
	r.Tree = d.tree
	r.Splits = d.splits
	r.Exhausted = len(d.clusters) < numClusters
	return r, nil
}

// divide runs DIANA over the point block of dm. When no cluster with two or
// more points is left before numClusters is reached, the run stops early, or
// fails with ErrInsufficientData if cfg.Strict is set.
func divide(dm *DistanceMatrix, numClusters int, cfg Config) (*divider, error) {
	all := make([]int, dm.Points())
	for i := range all {
		all[i] = i
	}
	d := &divider{dm: dm, clusters: [][]int{all}}
	if cfg.TrackTree {
		d.tree = newClusterTree(cfg.TreeDepth)
		d.tree.record(d.clusters)
	}

	for len(d.clusters) < numClusters {
		idx := d.widestCluster()
		if idx < 0 {
			if cfg.Strict {
				return nil, fmt.Errorf("%w: only %d of %d clusters reachable, every cluster is a singleton",
					ErrInsufficientData, len(d.clusters), numClusters)
			}
			gologger.Warning().Msgf("hierclust: divisive run stopped at %d of %d clusters, every cluster is a singleton",
				len(d.clusters), numClusters)
			break
		}
		d.split(idx)
	}
	return d, nil
}

// widestCluster returns the position of the splittable cluster with the
// largest diameter, or -1 when every cluster is a singleton.
func (d *divider) widestCluster() int {
	best := -1
	var bestDiameter float64
	for i, c := range d.clusters {
		if len(c) < 2 {
			continue
		}
		if diam := diameter(d.dm, c); best < 0 || diam > bestDiameter {
			best, bestDiameter = i, diam
		}
	}
	return best
}

func (d *divider) split(idx int) {
	remaining, splinter := splinterCluster(d.dm, d.clusters[idx])
	d.clusters[idx] = remaining
	d.clusters = append(d.clusters, splinter)
	d.splits++

	gologger.Verbose().Msgf("hierclust: split cluster %d into %d + %d points (%d clusters)",
		idx, len(remaining), len(splinter), len(d.clusters))

	if d.tree != nil {
		d.tree.record(d.clusters)
	}
}

// diameter returns the largest pairwise distance within cluster.
func diameter(dm *DistanceMatrix, cluster []int) float64 {
	var diam float64
	for i, a := range cluster {
		for _, b := range cluster[i+1:] {
			if dist := dm.At(a, b); dist > diam {
				diam = dist
			}
		}
	}
	return diam
}

// initSplinter returns the position in cluster of the point with the largest
// average distance to the other members. Ties go to the first such point.
// cluster must hold at least two points.
func initSplinter(dm *DistanceMatrix, cluster []int) int {
	best := 0
	bestAvg := -1.0
	for i, p := range cluster {
		if avg := averageDistance(dm, p, cluster); avg > bestAvg {
			best, bestAvg = i, avg
		}
	}
	return best
}

// splinterCluster divides cluster into the points that stay and the
// splinter group. Both results are sorted and non-empty.
func splinterCluster(dm *DistanceMatrix, cluster []int) (remaining, splinter []int) {
	seed := initSplinter(dm, cluster)
	splinter = []int{cluster[seed]}
	remaining = make([]int, 0, len(cluster)-1)
	remaining = append(remaining, cluster[:seed]...)
	remaining = append(remaining, cluster[seed+1:]...)

	for len(remaining) > 1 {
		move := -1
		var bestDiff float64
		for i, p := range remaining {
			diff := averageDistance(dm, p, remaining) - averageDistance(dm, p, splinter)
			if diff > bestDiff {
				move, bestDiff = i, diff
			}
		}
		if move < 0 {
			break
		}
		splinter = append(splinter, remaining[move])
		remaining = append(remaining[:move], remaining[move+1:]...)
	}

	sort.Ints(splinter)
	return remaining, splinter
}

// averageDistance returns the mean distance from p to the members of group
// other than p itself, or 0 if there are none.
func averageDistance(dm *DistanceMatrix, p int, group []int) float64 {
	var sum float64
	var n int
	for _, q := range group {
		if q == p {
			continue
		}
		sum += dm.At(p, q)
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
