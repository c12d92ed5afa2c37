package hierclust

import (
	"fmt"
	"sort"
)

// Label converts weighted spanning-tree edges into a single-linkage
// dendrogram in scipy format. edges is [][3]float64 where each edge is
// [from, to, weight]. Returns [][4]float64 rows: [left, right, distance,
// mergedSize], with left < right. New cluster ids start at n and increment.
// Edges of equal weight keep their input order.
func Label(edges [][3]float64, n int) [][4]float64 {
	if len(edges) == 0 {
		return nil
	}

	sorted := make([][3]float64, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i][2] < sorted[j][2]
	})

	uf := NewUnionFind(n)
	result := make([][4]float64, 0, len(sorted))
	for _, edge := range sorted {
		a := uf.Find(int(edge[0]))
		b := uf.Find(int(edge[1]))
		if a == b {
			continue
		}
		if a > b {
			a, b = b, a
		}
		id := uf.Merge(a, b)
		result = append(result, [4]float64{float64(a), float64(b), edge[2], float64(uf.size[id])})
	}
	return result
}

// cutDendrogram replays the first n-k rows of a dendrogram and returns the
// resulting k clusters. Clusters are ordered by their smallest point and
// members are ascending.
func cutDendrogram(dendrogram [][4]float64, n, k int) [][]int {
	uf := NewUnionFind(n)
	for _, row := range dendrogram[:n-k] {
		uf.Merge(int(row[0]), int(row[1]))
	}

	slot := make(map[int]int, k)
	clusters := make([][]int, 0, k)
	for p := 0; p < n; p++ {
		root := uf.Find(p)
		i, ok := slot[root]
		if !ok {
			i = len(clusters)
			slot[root] = i
			clusters = append(clusters, nil)
		}
		clusters[i] = append(clusters[i], p)
	}
	return clusters
}

// Cut returns the partition the agglomerative run passed through when it had
// k clusters. k must lie in [NumClusters, number of points]. Divisive results
// have no dendrogram and return ErrUnsupportedOperation.
func (r *Result) Cut(k int) ([][]int, error) {
	if r.linkage == nil {
		return nil, fmt.Errorf("%w: divisive results have no dendrogram to cut", ErrUnsupportedOperation)
	}
	n := r.dataset.Len()
	if k < r.NumClusters || k > n {
		return nil, fmt.Errorf("%w: cut at %d clusters outside [%d, %d]", ErrInvalidInput, k, r.NumClusters, n)
	}
	return cutDendrogram(r.Dendrogram, n, k), nil
}
