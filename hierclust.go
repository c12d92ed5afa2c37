package hierclust

import (
	"fmt"
	"sync"
)

// Config controls a hierarchical clustering run.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Linkage is the merge rule used by Agglomerative. Divisive ignores it.
	// Default: SingleLinkage.
	Linkage Linkage

	// Metric computes the distance between two rows. The same metric builds
	// the distance matrix and classifies new points.
	// Default: SquaredEuclideanMetric.
	Metric DistanceMetric

	// TrackTree records a snapshot of every cluster configuration in
	// Result.Tree. Default: false.
	TrackTree bool

	// TreeDepth keeps only the most recent TreeDepth snapshots when
	// TrackTree is set. 0 means unlimited. Must be >= 0. Default: 0.
	TreeDepth int

	// Strict makes Divisive fail with ErrInsufficientData when asked for more
	// clusters than it can split off, instead of stopping early with
	// Result.Exhausted set. Default: false.
	Strict bool
}

// Result contains the output of a hierarchical clustering run.
type Result struct {
	// Clusters are the final clusters, materialized against the input
	// dataset. Rows are shared with the caller's dataset.
	Clusters []Cluster

	// IndexClusters holds the point indices of each final cluster, in the
	// same order as Clusters.
	IndexClusters [][]int

	// NumClusters is the cluster count that was requested. A divisive result
	// may hold fewer clusters; see Exhausted.
	NumClusters int

	// Tree is the recorded cluster tree, or nil when Config.TrackTree is off.
	Tree *ClusterTree

	// Dendrogram is the agglomerative merge history in scipy linkage format:
	// each row is [left, right, distance, size]. Points are ids 0..n-1 and
	// merge step s creates id n+s. Nil for divisive runs.
	Dendrogram [][4]float64

	// Merges counts agglomerative merge steps; Splits counts divisive splits.
	Merges int
	Splits int

	// Exhausted reports that a divisive run stopped before reaching
	// NumClusters because no cluster had two or more points left.
	Exhausted bool

	dataset Dataset
	metric  DistanceMetric
	linkage Linkage

	nnOnce       sync.Once
	nn           *kdTree
	pointCluster []int
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Linkage: SingleLinkage{},
		Metric:  SquaredEuclideanMetric{},
	}
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Linkage == nil {
		cfg.Linkage = SingleLinkage{}
	}
	if cfg.Metric == nil {
		cfg.Metric = SquaredEuclideanMetric{}
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if cfg.TreeDepth < 0 {
		return fmt.Errorf("%w: TreeDepth must be >= 0, got %d", ErrInvalidInput, cfg.TreeDepth)
	}
	return nil
}

// prepare applies defaults and validates the config and dataset shared by
// both engines. Each engine checks its own cluster-count range.
func prepare(ds Dataset, cfg *Config) error {
	applyDefaults(cfg)
	if err := validateConfig(cfg); err != nil {
		return err
	}
	return ds.Validate()
}

// newResult materializes the final clusters.
func newResult(ds Dataset, numClusters int, clusters [][]int, cfg Config) *Result {
	return &Result{
		Clusters:      Materialize(ds, clusters),
		IndexClusters: copyClusters(clusters),
		NumClusters:   numClusters,
		dataset:       ds,
		metric:        cfg.Metric,
	}
}
