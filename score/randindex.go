// Package score measures agreement between a clustering and the dataset's
// pre-existing label column.
package score

import (
	"github.com/clusterlab/clusterlab/model"
)

// RandIndex computes the Rand index between an assignment and the label
// column, over the rows present in the assignment. labels is indexed by
// original row; rows the assignment excludes do not participate.
//
// Noise points count as one cluster of their own, matching how the labels
// side treats any repeated label value. The result is in [0, 1]; fewer than
// two assigned rows yield 1, since no pair can disagree.
func RandIndex(a model.Assignment, labels []string) float64 {
	rows := a.Rows()
	n := len(rows)
	if n < 2 {
		return 1
	}

	// Contingency-table form: counting pairs per (cluster, label) cell
	// avoids the quadratic pair scan.
	type cell struct {
		cluster model.ClusterID
		label   string
	}
	joint := make(map[cell]int64)
	byCluster := make(map[model.ClusterID]int64)
	byLabel := make(map[string]int64)
	for _, r := range rows {
		c, l := a[r], labels[r]
		joint[cell{c, l}]++
		byCluster[c]++
		byLabel[l]++
	}

	pairs := func(k int64) int64 { return k * (k - 1) / 2 }

	var sumJoint, sumCluster, sumLabel int64
	for _, k := range joint {
		sumJoint += pairs(k)
	}
	for _, k := range byCluster {
		sumCluster += pairs(k)
	}
	for _, k := range byLabel {
		sumLabel += pairs(k)
	}

	total := pairs(int64(n))
	agreements := total + 2*sumJoint - sumCluster - sumLabel
	return float64(agreements) / float64(total)
}
