package hierclust

import (
	"math"
	"sort"

	"github.com/projectdiscovery/gologger"
)

// agglomerator owns the mutable state of one bottom-up run. Entities are
// indexed by their distance-matrix row: points first, then one entity per
// merge. Merged entities are marked inactive rather than removed, so ids stay
// stable for the whole run.
type agglomerator struct {
	dm      *DistanceMatrix
	linkage Linkage

	members   [][]int // point indices per entity; nil once merged away
	sizes     []int   // cluster size per entity
	active    []bool
	numActive int

	tree       *ClusterTree
	dendrogram [][4]float64
}

func newAgglomerator(dm *DistanceMatrix, linkage Linkage) *agglomerator {
	n := dm.Points()
	a := &agglomerator{
		dm:         dm,
		linkage:    linkage,
		members:    make([][]int, n, 2*n),
		sizes:      make([]int, n, 2*n),
		active:     make([]bool, n, 2*n),
		numActive:  n,
		dendrogram: make([][4]float64, 0, max(n-1, 0)),
	}
	for i := 0; i < n; i++ {
		a.members[i] = []int{i}
		a.sizes[i] = 1
		a.active[i] = true
	}
	return a
}

// Agglomerative clusters ds bottom-up into numClusters clusters.
//
// Every point starts as its own cluster. Each step merges the closest pair of
// active clusters and extends the distance matrix with the merged cluster's
// distances to every other active cluster, derived from cfg.Linkage's
// recurrence. Exactly ds.Len()-numClusters merges are performed, and the
// matrix grows to 2*ds.Len()-numClusters rows whatever the target.
//
// Ties between equally close pairs go to the pair found first when scanning
// rows in creation order (the lowest (larger id, smaller id) pair).
//
// Returns an error wrapping ErrInvalidInput for an invalid dataset or when
// numClusters is outside [1, ds.Len()]. numClusters == ds.Len() returns the
// all-singletons clustering with zero merges.
func Agglomerative(ds Dataset, numClusters int, cfg Config) (*Result, error) {
	if err := prepare(ds, &cfg); err != nil {
		return nil, err
	}
	if err := validateClusterCount(numClusters, ds.Len()); err != nil {
		return nil, err
	}

	a := newAgglomerator(newDistanceMatrix(ds.Items, cfg.Metric), cfg.Linkage)
	if cfg.TrackTree {
		a.tree = newClusterTree(cfg.TreeDepth)
		a.tree.record(a.activeClusters())
	}

	for a.numActive > numClusters {
		p, q, d := a.closestPair()
		a.merge(p, q, d)
	}

	r := newResult(ds, numClusters, a.activeClusters(), cfg)
	r.Tree = a.tree
	r.Dendrogram = a.dendrogram
	r.Merges = len(a.dendrogram)
	r.linkage = cfg.Linkage
	return r, nil
}

// closestPair returns the active pair (p, q), p < q, with the smallest
// recorded distance. If every remaining distance is +Inf or NaN, the first
// two active entities are returned so the run still terminates.
func (a *agglomerator) closestPair() (p, q int, dist float64) {
	p, q = -1, -1
	dist = math.Inf(1)
	for i := 1; i < a.dm.Len(); i++ {
		if !a.active[i] {
			continue
		}
		row := a.dm.Row(i)
		for j := 0; j < i; j++ {
			if a.active[j] && row[j] < dist {
				dist = row[j]
				p, q = j, i
			}
		}
	}
	if p >= 0 {
		return p, q, dist
	}

	for i := range a.active {
		if !a.active[i] {
			continue
		}
		if p < 0 {
			p = i
			continue
		}
		q = i
		break
	}
	return p, q, a.dm.At(p, q)
}

// merge replaces entities p and q with a new entity and appends its row of
// linkage distances to the matrix. Inactive slots in the new row hold +Inf
// and are never read.
func (a *agglomerator) merge(p, q int, dist float64) {
	id := a.dm.Len()
	a.active[p] = false
	a.active[q] = false

	row := make([]float64, id)
	for r := 0; r < id; r++ {
		if !a.active[r] {
			row[r] = math.Inf(1)
			continue
		}
		row[r] = linkageDistance(a.linkage, a.dm, a.sizes, r, p, q)
	}
	a.dm.grow(row)

	merged := make([]int, 0, a.sizes[p]+a.sizes[q])
	merged = append(merged, a.members[p]...)
	merged = append(merged, a.members[q]...)
	sort.Ints(merged)

	a.members = append(a.members, merged)
	a.members[p] = nil
	a.members[q] = nil
	a.sizes = append(a.sizes, len(merged))
	a.active = append(a.active, true)
	a.numActive--

	a.dendrogram = append(a.dendrogram, [4]float64{float64(p), float64(q), dist, float64(len(merged))})
	gologger.Verbose().Msgf("hierclust: %s linkage merged %d and %d into %d (distance %g, size %d, %d clusters left)",
		a.linkage.Name(), p, q, id, dist, len(merged), a.numActive)

	if a.tree != nil {
		a.tree.record(a.activeClusters())
	}
}

// activeClusters returns the member lists of active entities in creation
// order. The slices are shared with the agglomerator.
func (a *agglomerator) activeClusters() [][]int {
	out := make([][]int, 0, a.numActive)
	for id, ok := range a.active {
		if ok {
			out = append(out, a.members[id])
		}
	}
	return out
}
