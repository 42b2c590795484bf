package clusterlab

import (
	"errors"
	"fmt"

	"github.com/clusterlab/clusterlab/algorithm"
	"github.com/clusterlab/clusterlab/dataset"
	"github.com/clusterlab/clusterlab/job"
	"github.com/clusterlab/clusterlab/resolve"
)

var (
	// ErrNoDataset is returned when an operation needs a loaded dataset.
	ErrNoDataset = errors.New("no dataset loaded")

	// ErrNoLabels is returned when an operation needs a label column the
	// dataset was not parsed with.
	ErrNoLabels = errors.New("dataset has no label column")

	// ErrParse categorizes dataset parse failures.
	ErrParse = errors.New("parse failed")

	// ErrEmptyMatrix categorizes resolutions that eliminated all data.
	ErrEmptyMatrix = errors.New("resolution produced no data")

	// ErrInvalidParameter categorizes parameter validation failures.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrClusteringFailed categorizes failures of the external clustering
	// capability.
	ErrClusteringFailed = errors.New("clustering failed")
)

// translateError funnels the packages' typed errors into the facade's
// stable public error categories. The original typed error stays reachable
// via errors.Unwrap / errors.As.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var mr *dataset.MalformedRowError
	if errors.As(err, &mr) || errors.Is(err, dataset.ErrEmptyDataset) || errors.Is(err, dataset.ErrNoFeatures) {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}

	var em *resolve.EmptyMatrixError
	if errors.As(err, &em) {
		return fmt.Errorf("%w: %w", ErrEmptyMatrix, err)
	}

	var ip *algorithm.InvalidParameterError
	if errors.As(err, &ip) {
		return fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}

	var cf *job.ClusteringFailedError
	if errors.As(err, &cf) {
		return fmt.Errorf("%w: %w", ErrClusteringFailed, err)
	}

	return err
}
