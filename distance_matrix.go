package hierclust

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// DistanceMatrix is a strictly-lower-triangular distance table. Row i holds
// i entries, the distances from entity i to entities 0..i-1; the diagonal is
// never stored and reads as zero.
//
// Entities 0..Points()-1 are the original points. The agglomerative engine
// appends one row per merge, so entity Points()+s is the cluster created by
// merge step s. The table never shrinks.
type DistanceMatrix struct {
	rows   [][]float64
	points int
}

// BuildDistanceMatrix validates ds and computes all pairwise distances with
// metric. A nil metric means SquaredEuclideanMetric.
func BuildDistanceMatrix(ds Dataset, metric DistanceMetric) (*DistanceMatrix, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	if metric == nil {
		metric = SquaredEuclideanMetric{}
	}
	return newDistanceMatrix(ds.Items, metric), nil
}

// newDistanceMatrix computes the point block. items must already be validated.
func newDistanceMatrix(items [][]float64, metric DistanceMetric) *DistanceMatrix {
	n := len(items)
	rows := make([][]float64, n, 2*n)
	for i := 0; i < n; i++ {
		row := make([]float64, i)
		for j := 0; j < i; j++ {
			row[j] = metric.Distance(items[i], items[j])
		}
		rows[i] = row
	}
	return &DistanceMatrix{rows: rows, points: n}
}

// At returns the distance between entities i and j. At(i, i) is 0.
// Panics if either index is out of range.
func (m *DistanceMatrix) At(i, j int) float64 {
	if i == j {
		return 0
	}
	if j > i {
		i, j = j, i
	}
	return m.rows[i][j]
}

// Len returns the number of entities indexed so far (points plus merged
// clusters).
func (m *DistanceMatrix) Len() int { return len(m.rows) }

// Points returns the number of original points.
func (m *DistanceMatrix) Points() int { return m.points }

// Row returns the stored distances from entity i to entities 0..i-1.
// The slice is owned by the matrix and must not be modified.
func (m *DistanceMatrix) Row(i int) []float64 { return m.rows[i] }

// grow appends the row for a new entity and returns its index.
// row must hold exactly Len() entries.
func (m *DistanceMatrix) grow(row []float64) int {
	if len(row) != len(m.rows) {
		panic(fmt.Sprintf("hierclust: grow with %d entries, want %d", len(row), len(m.rows)))
	}
	m.rows = append(m.rows, row)
	return len(m.rows) - 1
}

// SymDense returns the point block as a dense symmetric gonum matrix.
// Rows appended by merges are not included.
func (m *DistanceMatrix) SymDense() *mat.SymDense {
	sym := mat.NewSymDense(m.points, nil)
	for i := 1; i < m.points; i++ {
		for j, d := range m.rows[i] {
			sym.SetSym(i, j, d)
		}
	}
	return sym
}
