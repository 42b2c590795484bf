package algorithm

import "fmt"

// ID identifies one supported clustering algorithm family.
type ID uint8

const (
	// KMeans is partition-based clustering into a fixed number of clusters.
	KMeans ID = iota
	// MeanShift is mode-seeking clustering; the cluster count is discovered.
	MeanShift
	// DBSCAN is density-based clustering with a noise assignment.
	DBSCAN
	// HDBSCAN is hierarchical density-based clustering with noise.
	HDBSCAN
	// GaussianMixture is distribution-based clustering with a fixed count.
	GaussianMixture
	// Agglomerative is bottom-up hierarchical clustering with a fixed count.
	Agglomerative
	// AffinityPropagation is message-passing clustering; count is discovered.
	AffinityPropagation
	// Spectral is graph-spectral clustering with a fixed count.
	Spectral
	// BIRCH is tree-based clustering; count is discovered.
	BIRCH
	// OPTICS is ordering-based density clustering with noise.
	OPTICS

	numAlgorithms = iota
)

// String returns the conventional lower-case name of the algorithm.
func (id ID) String() string {
	switch id {
	case KMeans:
		return "kmeans"
	case MeanShift:
		return "mean-shift"
	case DBSCAN:
		return "dbscan"
	case HDBSCAN:
		return "hdbscan"
	case GaussianMixture:
		return "gaussian-mixture"
	case Agglomerative:
		return "agglomerative"
	case AffinityPropagation:
		return "affinity-propagation"
	case Spectral:
		return "spectral"
	case BIRCH:
		return "birch"
	case OPTICS:
		return "optics"
	default:
		return fmt.Sprintf("algorithm(%d)", uint8(id))
	}
}

// Valid reports whether id is one of the defined algorithm families.
func (id ID) Valid() bool { return id < numAlgorithms }

// CountBased reports whether the algorithm requires a target cluster count.
func (id ID) CountBased() bool {
	switch id {
	case KMeans, GaussianMixture, Agglomerative, Spectral:
		return true
	default:
		return false
	}
}

// DensityBased reports whether the algorithm may assign points to noise.
// Only density-based families are allowed to emit the noise marker.
func (id ID) DensityBased() bool {
	switch id {
	case DBSCAN, HDBSCAN, OPTICS:
		return true
	default:
		return false
	}
}

// IDs returns all defined algorithm families in declaration order.
func IDs() []ID {
	ids := make([]ID, numAlgorithms)
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}
