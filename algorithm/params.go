package algorithm

import "fmt"

// DefaultMaxIterations bounds iterative algorithms when the caller leaves
// MaxIterations unset.
const DefaultMaxIterations = 1000

// Params carries the union of parameters across algorithm families. Each
// family reads only the fields its schema declares; Validate rejects a
// configuration before it can reach a Capability.
type Params struct {
	// Clusters is the target cluster count for count-based families.
	Clusters int
	// Epsilon is the neighborhood radius for density-based families.
	Epsilon float64
	// MinSamples is the minimum neighborhood size for density-based
	// families.
	MinSamples int
	// MaxIterations bounds iterative refinement. 0 means
	// DefaultMaxIterations.
	MaxIterations int
}

// InvalidParameterError reports a parameter that violates the schema of the
// chosen algorithm. A job failing validation never reaches the external
// clustering capability.
type InvalidParameterError struct {
	Algorithm ID
	Param     string
	Reason    string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("algorithm: %s: parameter %s %s", e.Algorithm, e.Param, e.Reason)
}

// Validate checks params against the schema of the given algorithm.
func Validate(id ID, p Params) error {
	if !id.Valid() {
		return &InvalidParameterError{Algorithm: id, Param: "algorithm", Reason: "is not a defined family"}
	}
	if id.CountBased() && p.Clusters < 1 {
		return &InvalidParameterError{Algorithm: id, Param: "clusters", Reason: fmt.Sprintf("must be a positive integer, got %d", p.Clusters)}
	}
	if id.DensityBased() {
		if p.Epsilon <= 0 {
			return &InvalidParameterError{Algorithm: id, Param: "epsilon", Reason: fmt.Sprintf("must be positive, got %g", p.Epsilon)}
		}
		if p.MinSamples < 1 {
			return &InvalidParameterError{Algorithm: id, Param: "min-samples", Reason: fmt.Sprintf("must be a positive integer, got %d", p.MinSamples)}
		}
	}
	if p.MaxIterations < 0 {
		return &InvalidParameterError{Algorithm: id, Param: "max-iterations", Reason: fmt.Sprintf("must not be negative, got %d", p.MaxIterations)}
	}
	return nil
}
