package hierclust

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// DistanceMetric provides distance computation with a reduced distance that
// preserves ordering (e.g., Euclidean skips the sqrt). Nearest-point searches
// compare reduced distances and convert only the result.
// Implementations must be symmetric and return 0 for identical inputs.
type DistanceMetric interface {
	Distance(a, b []float64) float64
	ReducedDistance(a, b []float64) float64
}

// DistanceFunc adapts a plain function into a DistanceMetric.
// ReducedDistance delegates to the same function.
type DistanceFunc func(a, b []float64) float64

func (f DistanceFunc) Distance(a, b []float64) float64        { return f(a, b) }
func (f DistanceFunc) ReducedDistance(a, b []float64) float64 { return f(a, b) }

// SquaredEuclideanMetric is the default metric. It is monotonic with the
// Euclidean distance, so nearest-pair decisions are unchanged, and it is the
// space in which the Ward, centroid and median recurrences are exact.
type SquaredEuclideanMetric struct{}

func (SquaredEuclideanMetric) Distance(a, b []float64) float64 {
	return euclideanSumOfSquares(a, b)
}

func (SquaredEuclideanMetric) ReducedDistance(a, b []float64) float64 {
	return euclideanSumOfSquares(a, b)
}

func euclideanSumOfSquares(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// EuclideanMetric computes the Euclidean (L2) distance.
// ReducedDistance returns squared Euclidean distance (skips sqrt).
type EuclideanMetric struct{}

func (EuclideanMetric) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

func (EuclideanMetric) ReducedDistance(a, b []float64) float64 {
	return euclideanSumOfSquares(a, b)
}

// ManhattanMetric computes the Manhattan (L1 / city-block) distance.
type ManhattanMetric struct{}

func (ManhattanMetric) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, 1)
}

func (m ManhattanMetric) ReducedDistance(a, b []float64) float64 { return m.Distance(a, b) }

// ChebyshevMetric computes the Chebyshev (L-infinity) distance.
type ChebyshevMetric struct{}

func (ChebyshevMetric) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, math.Inf(1))
}

func (m ChebyshevMetric) ReducedDistance(a, b []float64) float64 { return m.Distance(a, b) }

// MinkowskiMetric computes the Minkowski distance parameterized by P.
// P must be >= 1. Panics if P < 1.
// ReducedDistance returns sum(|a[i]-b[i]|^P) without the final root.
type MinkowskiMetric struct {
	P float64
}

func (m MinkowskiMetric) Distance(a, b []float64) float64 {
	if m.P < 1 {
		panic("MinkowskiMetric: P must be >= 1")
	}
	return floats.Distance(a, b, m.P)
}

func (m MinkowskiMetric) ReducedDistance(a, b []float64) float64 {
	if m.P < 1 {
		panic("MinkowskiMetric: P must be >= 1")
	}
	var sum float64
	for i := range a {
		sum += math.Pow(math.Abs(a[i]-b[i]), m.P)
	}
	return sum
}

// CosineMetric computes the cosine distance: 1 - cosine_similarity.
// A zero vector is treated as maximally dissimilar (distance 1) so the
// result never becomes NaN inside a distance matrix.
type CosineMetric struct{}

func (CosineMetric) Distance(a, b []float64) float64 {
	normA := floats.Norm(a, 2)
	normB := floats.Norm(b, 2)
	if normA == 0 || normB == 0 {
		return 1.0
	}
	return 1.0 - floats.Dot(a, b)/(normA*normB)
}

func (m CosineMetric) ReducedDistance(a, b []float64) float64 { return m.Distance(a, b) }

// HammingMetric counts the coordinates at which two rows differ. It is meant
// for rows holding categorical codes.
type HammingMetric struct{}

func (HammingMetric) Distance(a, b []float64) float64 {
	var n float64
	for i := range a {
		if a[i] != b[i] {
			n++
		}
	}
	return n
}

func (m HammingMetric) ReducedDistance(a, b []float64) float64 { return m.Distance(a, b) }

// MetricByName resolves the metric names accepted in configuration files.
func MetricByName(name string) (DistanceMetric, error) {
	switch name {
	case "", "squared_euclidean":
		return SquaredEuclideanMetric{}, nil
	case "euclidean":
		return EuclideanMetric{}, nil
	case "manhattan":
		return ManhattanMetric{}, nil
	case "chebyshev":
		return ChebyshevMetric{}, nil
	case "cosine":
		return CosineMetric{}, nil
	case "hamming":
		return HammingMetric{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown metric %q", ErrInvalidInput, name)
	}
}
