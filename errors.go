package hierclust

import "errors"

// Sentinel errors returned by the clustering entry points. Callers match them
// with errors.Is; returned errors usually wrap one of these with context.
var (
	// ErrInvalidInput reports an empty dataset, ragged rows, a label count
	// that does not match the row width, or an out-of-range cluster count.
	ErrInvalidInput = errors.New("hierclust: invalid input")

	// ErrUnsupportedOperation reports a call the result cannot serve, such as
	// Classify on a Ward, centroid, median or weighted-average clustering.
	ErrUnsupportedOperation = errors.New("hierclust: unsupported operation")

	// ErrInsufficientData reports that a strict divisive run ran out of
	// splittable clusters before reaching the requested count.
	ErrInsufficientData = errors.New("hierclust: insufficient data")
)
