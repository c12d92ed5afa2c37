package hierclust

// UnionFind is a disjoint-set structure over dendrogram ids: original points
// 0..n-1 and merged clusters n..2n-2. Each merge links two roots under the
// next cluster id, so roots are always the dendrogram ids of live clusters.
type UnionFind struct {
	parent []int
	size   []int
	// nextLabel is the ID for the next merged cluster, starting at n.
	nextLabel int
}

// NewUnionFind creates a UnionFind for n initial elements. The internal
// storage supports up to 2*n - 1 elements so merged clusters can take ids
// starting at n.
func NewUnionFind(n int) *UnionFind {
	total := 2*n - 1
	if total < 1 {
		total = 1
	}
	parent := make([]int, total)
	size := make([]int, total)
	for i := range parent {
		parent[i] = -1 // -1 means "is a root"
	}
	for i := 0; i < n; i++ {
		size[i] = 1
	}
	return &UnionFind{
		parent:    parent,
		size:      size,
		nextLabel: n,
	}
}

// Find returns the root of the set containing x, with path compression.
func (uf *UnionFind) Find(x int) int {
	root := x
	for uf.parent[root] != -1 {
		root = uf.parent[root]
	}
	for uf.parent[x] != -1 {
		x, uf.parent[x] = uf.parent[x], root
	}
	return root
}

// Merge joins the sets containing x and y under a fresh cluster id and
// returns that id. Returns the shared root unchanged if x and y are already
// in the same set.
func (uf *UnionFind) Merge(x, y int) int {
	rootX := uf.Find(x)
	rootY := uf.Find(y)
	if rootX == rootY {
		return rootX
	}
	id := uf.nextLabel
	uf.size[id] = uf.size[rootX] + uf.size[rootY]
	uf.parent[rootX] = id
	uf.parent[rootY] = id
	uf.nextLabel++
	return id
}

// Size returns the number of points in the set containing x.
func (uf *UnionFind) Size(x int) int { return uf.size[uf.Find(x)] }
