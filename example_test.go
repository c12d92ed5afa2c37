package hierclust_test

import (
	"fmt"

	"github.com/TrevorS/hierclust"
)

func ExampleAgglomerative() {
	ds := hierclust.Dataset{
		Labels: []string{"x", "y"},
		Items: [][]float64{
			{0, 0}, {0, 1}, {1, 0},
			{10, 10}, {10, 11}, {11, 10},
		},
	}

	result, err := hierclust.Agglomerative(ds, 2, hierclust.DefaultConfig())
	if err != nil {
		panic(err)
	}
	fmt.Println(result.IndexClusters)
	fmt.Println(result.Merges)

	c, err := result.Classify([]float64{0.5, 0.5})
	if err != nil {
		panic(err)
	}
	fmt.Println(c)
	// Output:
	// [[0 1 2] [3 4 5]]
	// 4
	// 0
}

func ExampleDivisive() {
	ds := hierclust.Dataset{Items: [][]float64{
		{0, 0}, {0, 1}, {1, 0},
		{10, 10}, {10, 11}, {11, 10},
	}}

	result, err := hierclust.Divisive(ds, 2, hierclust.DefaultConfig())
	if err != nil {
		panic(err)
	}
	fmt.Println(result.IndexClusters)
	fmt.Println(result.Splits)
	// Output:
	// [[3 4 5] [0 1 2]]
	// 1
}

func ExampleResult_Cut() {
	ds := hierclust.Dataset{Items: [][]float64{{0}, {1}, {5}, {6}, {20}}}

	result, err := hierclust.Agglomerative(ds, 1, hierclust.DefaultConfig())
	if err != nil {
		panic(err)
	}
	for k := 1; k <= 3; k++ {
		clusters, err := result.Cut(k)
		if err != nil {
			panic(err)
		}
		fmt.Println(k, clusters)
	}
	// Output:
	// 1 [[0 1 2 3 4]]
	// 2 [[0 1 2 3] [4]]
	// 3 [[0 1] [2 3] [4]]
}

func ExampleSilhouette() {
	ds := hierclust.Dataset{Items: [][]float64{{0}, {1}, {10}, {11}}}

	score, err := hierclust.Silhouette(ds, [][]int{{0, 1}, {2, 3}}, hierclust.EuclideanMetric{})
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.3f\n", score)
	// Output:
	// 0.900
}
