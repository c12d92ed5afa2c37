package hierclust

import "fmt"

// Dataset is an ordered collection of fixed-width rows with optional column
// labels. Categorical columns are carried as numeric codes.
//
// The clustering entry points never modify Items. Materialized clusters hold
// the same row slices, so callers that edit a row after clustering will see
// the edit through the clusters too.
type Dataset struct {
	Labels []string
	Items  [][]float64
}

// Len returns the number of rows.
func (d Dataset) Len() int { return len(d.Items) }

// Dims returns the row width, or 0 for an empty dataset.
func (d Dataset) Dims() int {
	if len(d.Items) == 0 {
		return 0
	}
	return len(d.Items[0])
}

// Validate checks that the dataset is non-empty, that every row has the same
// non-zero width, and that Labels (when present) matches that width.
func (d Dataset) Validate() error {
	if len(d.Items) == 0 {
		return fmt.Errorf("%w: dataset is empty", ErrInvalidInput)
	}
	dims := len(d.Items[0])
	if dims == 0 {
		return fmt.Errorf("%w: rows have zero width", ErrInvalidInput)
	}
	for i, row := range d.Items {
		if len(row) != dims {
			return fmt.Errorf("%w: row %d has %d values, want %d", ErrInvalidInput, i, len(row), dims)
		}
	}
	if d.Labels != nil && len(d.Labels) != dims {
		return fmt.Errorf("%w: %d labels for rows of width %d", ErrInvalidInput, len(d.Labels), dims)
	}
	return nil
}

// validateClusterCount checks 1 <= k <= n.
func validateClusterCount(k, n int) error {
	if k < 1 {
		return fmt.Errorf("%w: number of clusters must be >= 1, got %d", ErrInvalidInput, k)
	}
	if k > n {
		return fmt.Errorf("%w: number of clusters (%d) cannot exceed number of points (%d)", ErrInvalidInput, k, n)
	}
	return nil
}
