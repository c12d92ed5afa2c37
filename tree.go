package hierclust

import "fmt"

// ClusterTree records the cluster configuration after every merge or split.
// Snapshots are kept in construction order: index 0 is the oldest retained
// snapshot (the initial state unless the depth cap dropped it) and the last
// index is the final state. Consecutive snapshots differ by exactly one merge
// or one split.
type ClusterTree struct {
	depth     int
	snapshots [][][]int
	dropped   int
}

func newClusterTree(depth int) *ClusterTree {
	return &ClusterTree{depth: depth}
}

// record appends a deep copy of clusters, discarding the oldest snapshot
// when the depth cap is exceeded.
func (t *ClusterTree) record(clusters [][]int) {
	t.snapshots = append(t.snapshots, copyClusters(clusters))
	if t.depth > 0 && len(t.snapshots) > t.depth {
		copy(t.snapshots, t.snapshots[1:])
		t.snapshots[len(t.snapshots)-1] = nil
		t.snapshots = t.snapshots[:len(t.snapshots)-1]
		t.dropped++
	}
}

// Len returns the number of retained snapshots.
func (t *ClusterTree) Len() int { return len(t.snapshots) }

// Depth returns the history cap (0 means unlimited).
func (t *ClusterTree) Depth() int { return t.depth }

// Dropped returns how many of the oldest snapshots were discarded by the cap.
func (t *ClusterTree) Dropped() int { return t.dropped }

// Snapshot returns a copy of snapshot i. Panics if i is out of range.
func (t *ClusterTree) Snapshot(i int) [][]int {
	return copyClusters(t.snapshots[i])
}

// Snapshots returns a copy of every retained snapshot, oldest first.
func (t *ClusterTree) Snapshots() [][][]int {
	out := make([][][]int, len(t.snapshots))
	for i, s := range t.snapshots {
		out[i] = copyClusters(s)
	}
	return out
}

// TreeClusters materializes snapshot i of the recorded cluster tree.
func (r *Result) TreeClusters(i int) ([]Cluster, error) {
	if r.Tree == nil {
		return nil, fmt.Errorf("%w: cluster tree was not recorded (set Config.TrackTree)", ErrUnsupportedOperation)
	}
	if i < 0 || i >= r.Tree.Len() {
		return nil, fmt.Errorf("%w: snapshot %d out of range [0, %d)", ErrInvalidInput, i, r.Tree.Len())
	}
	return Materialize(r.dataset, r.Tree.snapshots[i]), nil
}
