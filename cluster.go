package hierclust

import "gonum.org/v1/gonum/floats"

// Cluster is a dataset-shaped view of one cluster. Items[k] is the caller's
// row Items[Indices[k]]; rows are shared, not copied.
type Cluster struct {
	Dataset
	Indices []int
}

// Centroid returns the arithmetic mean of the cluster's rows, or nil for an
// empty cluster.
func (c Cluster) Centroid() []float64 {
	if len(c.Items) == 0 {
		return nil
	}
	center := make([]float64, len(c.Items[0]))
	for _, row := range c.Items {
		floats.Add(center, row)
	}
	floats.Scale(1/float64(len(c.Items)), center)
	return center
}

// Materialize builds one Cluster per index cluster, in the given order.
// Calling it twice on the same input yields clusters with identical rows.
func Materialize(ds Dataset, clusters [][]int) []Cluster {
	out := make([]Cluster, len(clusters))
	for i, members := range clusters {
		items := make([][]float64, len(members))
		for k, idx := range members {
			items[k] = ds.Items[idx]
		}
		out[i] = Cluster{
			Dataset: Dataset{Labels: ds.Labels, Items: items},
			Indices: append([]int(nil), members...),
		}
	}
	return out
}

// copyClusters deep-copies a set of index clusters.
func copyClusters(clusters [][]int) [][]int {
	out := make([][]int, len(clusters))
	for i, c := range clusters {
		out[i] = append([]int(nil), c...)
	}
	return out
}
