// Package job runs one validated clustering configuration against an
// external capability and normalizes the raw output into the canonical
// per-row assignment.
//
// A job is a pure function of (resolution, config, capability): it holds no
// state, so jobs can run concurrently without coordination.
package job

import (
	"context"
	"fmt"

	"github.com/clusterlab/clusterlab/algorithm"
	"github.com/clusterlab/clusterlab/model"
	"github.com/clusterlab/clusterlab/resolve"
)

// ClusteringFailedError indicates that the external clustering capability
// failed or returned output violating its contract. Jobs are not retried:
// re-running a deterministic computation with identical inputs cannot
// change the outcome.
type ClusteringFailedError struct {
	Algorithm algorithm.ID
	Diag      string
	cause     error
}

func (e *ClusteringFailedError) Error() string {
	return fmt.Sprintf("job: %s clustering failed: %s", e.Algorithm, e.Diag)
}

func (e *ClusteringFailedError) Unwrap() error { return e.cause }

// Run validates the configuration, dispatches the clustering capability on
// the resolution's matrix, and normalizes the output.
//
// Invalid parameters are rejected before the capability is ever invoked.
// The returned result's Job field is zero; the orchestrator stamps it.
func Run(ctx context.Context, res *resolve.Resolution, cfg model.Config, capability algorithm.Capability) (*model.Result, error) {
	if err := algorithm.Validate(cfg.Algorithm, cfg.Params); err != nil {
		return nil, err
	}

	params := cfg.Params
	// Spectral decomposition needs at least as many rows as clusters; on
	// very small matrices the target count is clamped to the row count.
	if cfg.Algorithm == algorithm.Spectral && len(res.Matrix) < 8 && params.Clusters > len(res.Matrix) {
		params.Clusters = len(res.Matrix)
	}

	raw, err := capability.Cluster(ctx, res.Matrix, cfg.Algorithm, params)
	if err != nil {
		return nil, &ClusteringFailedError{Algorithm: cfg.Algorithm, Diag: err.Error(), cause: err}
	}

	assignment, clusters, err := normalize(cfg.Algorithm, raw, res.RowMap)
	if err != nil {
		return nil, err
	}

	return &model.Result{
		Config:     cfg,
		RowMap:     append([]int(nil), res.RowMap...),
		ColMap:     append([]int(nil), res.ColMap...),
		Assignment: assignment,
		Clusters:   clusters,
	}, nil
}

// normalize converts a capability's raw labels into a dense, 0-based
// assignment keyed by original row index. Cluster numbers are assigned in
// order of first appearance over the matrix row order, so normalization is
// deterministic for a fixed raw output.
func normalize(id algorithm.ID, raw *algorithm.RawOutput, rowMap []int) (model.Assignment, int, error) {
	if raw == nil || len(raw.Labels) != len(rowMap) {
		got := 0
		if raw != nil {
			got = len(raw.Labels)
		}
		return nil, 0, &ClusteringFailedError{
			Algorithm: id,
			Diag:      fmt.Sprintf("capability returned %d labels for %d rows", got, len(rowMap)),
		}
	}
	if raw.Outlier != nil && len(raw.Outlier) != len(rowMap) {
		return nil, 0, &ClusteringFailedError{
			Algorithm: id,
			Diag:      fmt.Sprintf("capability returned %d outlier flags for %d rows", len(raw.Outlier), len(rowMap)),
		}
	}

	assignment := make(model.Assignment, len(rowMap))
	dense := make(map[int]model.ClusterID)
	for i, label := range raw.Labels {
		noise := label < raw.NoiseBelow || (raw.Outlier != nil && raw.Outlier[i])
		if noise {
			if !id.DensityBased() {
				return nil, 0, &ClusteringFailedError{
					Algorithm: id,
					Diag:      fmt.Sprintf("non-density algorithm emitted noise for row %d", rowMap[i]),
				}
			}
			assignment[rowMap[i]] = model.Noise
			continue
		}
		c, ok := dense[label]
		if !ok {
			c = model.ClusterID(len(dense))
			dense[label] = c
		}
		assignment[rowMap[i]] = c
	}

	return assignment, len(dense), nil
}
