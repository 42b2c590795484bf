// Package hardcluster adapts the github.com/mpraski/clusters hard
// clusterers to the algorithm.Capability interface.
//
// The library covers the partition-based (K-Means) and density-based
// (DBSCAN, OPTICS) families; the remaining families report
// algorithm.ErrUnsupported so callers can route them to another capability.
package hardcluster

import (
	"context"
	"fmt"

	"github.com/mpraski/clusters"

	"github.com/clusterlab/clusterlab/algorithm"
)

// Steepness is the cluster-boundary steepness passed to OPTICS.
const Steepness = 0.05

// Capability runs clustering in-process via mpraski/clusters.
type Capability struct {
	workers int
}

var _ algorithm.Capability = (*Capability)(nil)

// New creates a Capability. workers bounds the library's internal
// parallelism for the density-based algorithms; values < 1 mean 1.
func New(workers int) *Capability {
	if workers < 1 {
		workers = 1
	}
	return &Capability{workers: workers}
}

// Cluster implements algorithm.Capability.
//
// mpraski clusterers number clusters from 1 and mark noise with values
// below that, so the raw output carries NoiseBelow=1.
func (c *Capability) Cluster(ctx context.Context, matrix [][]float64, id algorithm.ID, params algorithm.Params) (*algorithm.RawOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	maxIter := params.MaxIterations
	if maxIter == 0 {
		maxIter = algorithm.DefaultMaxIterations
	}

	var (
		hc  clusters.HardClusterer
		err error
	)
	switch id {
	case algorithm.KMeans:
		hc, err = clusters.KMeans(maxIter, params.Clusters, clusters.EuclideanDistance)
	case algorithm.DBSCAN:
		hc, err = clusters.DBSCAN(params.MinSamples, params.Epsilon, c.workers, clusters.EuclideanDistance)
	case algorithm.OPTICS:
		hc, err = clusters.OPTICS(params.MinSamples, params.Epsilon, Steepness, c.workers, clusters.EuclideanDistance)
	default:
		return nil, fmt.Errorf("%w: %s", algorithm.ErrUnsupported, id)
	}
	if err != nil {
		return nil, fmt.Errorf("hardcluster: %s: %w", id, err)
	}

	if err := hc.Learn(matrix); err != nil {
		return nil, fmt.Errorf("hardcluster: %s: %w", id, err)
	}

	return &algorithm.RawOutput{Labels: hc.Guesses(), NoiseBelow: 1}, nil
}
