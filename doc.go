// Package hierclust implements hierarchical clustering: bottom-up
// agglomerative clustering driven by the Lance-Williams recurrence, and
// top-down divisive clustering with DIANA.
//
// Agglomerative clustering starts from one cluster per point and repeatedly
// merges the closest pair. The distance from a merged cluster to every other
// cluster is derived from the previous distances by the chosen Linkage:
// single, complete, average, weighted average, centroid, median or Ward.
// Divisive clustering starts from one cluster and repeatedly splinters the
// widest cluster in two.
//
// Basic usage:
//
//	cfg := hierclust.DefaultConfig()
//	cfg.Linkage = hierclust.WardLinkage{}
//	result, err := hierclust.Agglomerative(ds, 3, cfg)
//	// result.Clusters[i].Items are the rows of cluster i
//	// result.IndexClusters[i] are their row indices
//
// Results built with single, complete or average linkage can assign new
// points to a cluster:
//
//	c, err := result.Classify([]float64{4, 2})
//
// # Distances
//
// The default metric is squared Euclidean distance. Ward, centroid and median
// linkage are only exact in that space; with other metrics they still run but
// no longer carry their geometric meaning. Dendrogram heights are reported in
// the metric's units.
//
// # History
//
// Set Config.TrackTree to record every intermediate partition in
// Result.Tree, and Config.TreeDepth to keep only the most recent ones.
// Agglomerative results also carry a scipy-style dendrogram that Result.Cut
// replays to any cluster count between the final one and one per point.
package hierclust
