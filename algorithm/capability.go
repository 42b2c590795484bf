package algorithm

import (
	"context"
	"errors"
)

// ErrUnsupported is returned by a Capability that does not implement the
// requested algorithm family.
var ErrUnsupported = errors.New("algorithm: unsupported by this capability")

// RawOutput is the heterogeneous result shape of an external clustering
// capability before normalization. Implementations fill whichever encoding
// they natively produce; the job layer converts all of them into the
// canonical per-row assignment.
type RawOutput struct {
	// Labels holds one cluster label per matrix row. Values need not be
	// dense or 0-based; any value < NoiseBelow is treated as noise.
	Labels []int

	// NoiseBelow is the exclusive lower bound for valid cluster labels.
	// A capability emitting -1 for noise and 0-based clusters sets it to 0;
	// one emitting 1-based clusters sets it to 1. Ignored when no label is
	// below it.
	NoiseBelow int

	// Outlier optionally marks rows as noise regardless of their label.
	// Nil when the capability has no separate outlier channel.
	Outlier []bool
}

// Capability computes cluster labels for a numeric matrix. It is the
// external collaborator boundary: implementations may be in-process
// libraries or remote services, are potentially slow, and are expected to be
// deterministic per call for fixed inputs.
//
// Cluster must honor ctx cancellation where practical; the orchestrator
// treats the call as blocking and applies no implicit timeout.
type Capability interface {
	Cluster(ctx context.Context, matrix [][]float64, id ID, params Params) (*RawOutput, error)
}

// CapabilityFunc adapts a function to the Capability interface.
type CapabilityFunc func(ctx context.Context, matrix [][]float64, id ID, params Params) (*RawOutput, error)

// Cluster calls f.
func (f CapabilityFunc) Cluster(ctx context.Context, matrix [][]float64, id ID, params Params) (*RawOutput, error) {
	return f(ctx, matrix, id, params)
}
