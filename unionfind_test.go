package hierclust

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUnionFind(t *testing.T) {
	uf := NewUnionFind(5)

	// Each element should be its own root.
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, uf.Find(i))
		assert.Equal(t, 1, uf.Size(i))
	}
}

func TestUnionFind_MergeAssignsNextID(t *testing.T) {
	uf := NewUnionFind(5)

	assert.Equal(t, 5, uf.Merge(1, 3))
	assert.Equal(t, 5, uf.Find(1))
	assert.Equal(t, 5, uf.Find(3))
	assert.Equal(t, 2, uf.Size(3))

	assert.Equal(t, 6, uf.Merge(0, 3))
	assert.Equal(t, 6, uf.Find(1))
	assert.Equal(t, 3, uf.Size(0))
}

func TestUnionFind_MergeSameSet(t *testing.T) {
	uf := NewUnionFind(4)
	id := uf.Merge(0, 1)
	assert.Equal(t, id, uf.Merge(1, 0))
	assert.Equal(t, 5, uf.Merge(2, 3), "a no-op merge must not consume an id")
}

func TestUnionFind_MultipleMerges(t *testing.T) {
	uf := NewUnionFind(6)

	// Merge {0,1,2} and {3,4,5}.
	uf.Merge(0, 1)
	uf.Merge(1, 2)
	uf.Merge(3, 4)
	uf.Merge(4, 5)

	assert.Equal(t, uf.Find(0), uf.Find(2))
	assert.Equal(t, uf.Find(3), uf.Find(5))
	assert.NotEqual(t, uf.Find(0), uf.Find(3))

	root := uf.Merge(2, 5)
	assert.Equal(t, 10, root)
	assert.Equal(t, 6, uf.Size(0))
}

func TestUnionFind_SingleElement(t *testing.T) {
	uf := NewUnionFind(1)
	assert.Equal(t, 0, uf.Find(0))
	assert.Equal(t, 1, uf.Size(0))
}
