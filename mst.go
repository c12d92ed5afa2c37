package hierclust

import (
	"math"

	"github.com/projectdiscovery/gologger"
)

// MinimumSpanningTree computes a minimum spanning tree over the points of dm
// with Prim's algorithm. Returns n-1 edges [from, to, weight], where from is
// the tree point that gave to its final distance. Logs a warning if any edge
// weight is +Inf.
func MinimumSpanningTree(dm *DistanceMatrix) [][3]float64 {
	n := dm.Points()
	if n <= 1 {
		return nil
	}

	inTree := make([]bool, n)
	currentDistances := make([]float64, n)
	nearest := make([]int, n)

	// Start from point 0: seed distances from its column.
	inTree[0] = true
	for j := 1; j < n; j++ {
		currentDistances[j] = dm.At(0, j)
	}

	edges := make([][3]float64, 0, n-1)
	hasInf := false

	for i := 0; i < n-1; i++ {
		minDist := math.Inf(1)
		minNode := -1
		for j := 1; j < n; j++ {
			if !inTree[j] && currentDistances[j] < minDist {
				minDist = currentDistances[j]
				minNode = j
			}
		}

		// No finite-distance point left: take the first one outside the tree.
		if minNode == -1 {
			for j := 1; j < n; j++ {
				if !inTree[j] {
					minNode = j
					minDist = currentDistances[j]
					break
				}
			}
		}

		if math.IsInf(minDist, 1) {
			hasInf = true
		}

		edges = append(edges, [3]float64{float64(nearest[minNode]), float64(minNode), minDist})
		inTree[minNode] = true

		for k := 1; k < n; k++ {
			if inTree[k] {
				continue
			}
			if d := dm.At(minNode, k); d < currentDistances[k] {
				currentDistances[k] = d
				nearest[k] = minNode
			}
		}
	}

	if hasInf {
		gologger.Warning().Msgf("hierclust: spanning tree contains edge(s) with +Inf weight (disconnected points)")
	}

	return edges
}

// SingleLinkageTree returns the single-linkage dendrogram of the points of dm,
// built from its minimum spanning tree. Its merge heights equal those of an
// Agglomerative run with SingleLinkage down to one cluster.
func SingleLinkageTree(dm *DistanceMatrix) [][4]float64 {
	return Label(MinimumSpanningTree(dm), dm.Points())
}
