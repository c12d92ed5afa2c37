package hierclust

import (
	"math/rand"
	"testing"
)

func generateBenchData(n, dims int) [][]float64 {
	rng := rand.New(rand.NewSource(42))
	data := make([][]float64, n)
	for i := range data {
		data[i] = make([]float64, dims)
		for j := range data[i] {
			data[i][j] = rng.Float64() * 100
		}
	}
	return data
}

// --- Distance matrix ---

func benchDistanceMatrix(b *testing.B, n int) {
	b.Helper()
	ds := Dataset{Items: generateBenchData(n, 2)}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := BuildDistanceMatrix(ds, SquaredEuclideanMetric{}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDistanceMatrix_100(b *testing.B)  { benchDistanceMatrix(b, 100) }
func BenchmarkDistanceMatrix_500(b *testing.B)  { benchDistanceMatrix(b, 500) }
func BenchmarkDistanceMatrix_1000(b *testing.B) { benchDistanceMatrix(b, 1000) }

// --- Agglomerative ---

func benchAgglomerative(b *testing.B, n int, l Linkage) {
	b.Helper()
	ds := Dataset{Items: generateBenchData(n, 2)}
	cfg := DefaultConfig()
	cfg.Linkage = l
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Agglomerative(ds, 5, cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAgglomerative_Single_100(b *testing.B) { benchAgglomerative(b, 100, SingleLinkage{}) }
func BenchmarkAgglomerative_Single_300(b *testing.B) { benchAgglomerative(b, 300, SingleLinkage{}) }
func BenchmarkAgglomerative_Ward_100(b *testing.B)   { benchAgglomerative(b, 100, WardLinkage{}) }
func BenchmarkAgglomerative_Ward_300(b *testing.B)   { benchAgglomerative(b, 300, WardLinkage{}) }

// --- Divisive ---

func benchDivisive(b *testing.B, n int) {
	b.Helper()
	ds := Dataset{Items: generateBenchData(n, 2)}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Divisive(ds, 5, DefaultConfig()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDivisive_100(b *testing.B) { benchDivisive(b, 100) }
func BenchmarkDivisive_300(b *testing.B) { benchDivisive(b, 300) }

// --- Single-linkage tree ---

func BenchmarkSingleLinkageTree_500(b *testing.B) {
	dm := newDistanceMatrix(generateBenchData(500, 2), SquaredEuclideanMetric{})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SingleLinkageTree(dm)
	}
}

// --- Classify ---

func benchClassify(b *testing.B, metric DistanceMetric) {
	b.Helper()
	ds := Dataset{Items: generateBenchData(1000, 3)}
	cfg := DefaultConfig()
	cfg.Metric = metric
	r, err := Agglomerative(ds, 10, cfg)
	if err != nil {
		b.Fatal(err)
	}
	queries := generateBenchData(256, 3)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Classify(queries[i%len(queries)]); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkClassify_KDTree(b *testing.B) { benchClassify(b, EuclideanMetric{}) }
func BenchmarkClassify_Linear(b *testing.B) { benchClassify(b, CosineMetric{}) }
