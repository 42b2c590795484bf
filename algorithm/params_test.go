package algorithm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCountBased(t *testing.T) {
	for _, id := range []ID{KMeans, GaussianMixture, Agglomerative, Spectral} {
		assert.NoError(t, Validate(id, Params{Clusters: 3}), id.String())

		err := Validate(id, Params{Clusters: 0})
		var ip *InvalidParameterError
		require.ErrorAs(t, err, &ip, id.String())
		assert.Equal(t, "clusters", ip.Param)

		err = Validate(id, Params{Clusters: -4})
		require.ErrorAs(t, err, &ip, id.String())
	}
}

func TestValidateDensityBased(t *testing.T) {
	for _, id := range []ID{DBSCAN, HDBSCAN, OPTICS} {
		assert.NoError(t, Validate(id, Params{Epsilon: 0.5, MinSamples: 2}), id.String())

		var ip *InvalidParameterError
		err := Validate(id, Params{Epsilon: 0, MinSamples: 2})
		require.ErrorAs(t, err, &ip, id.String())
		assert.Equal(t, "epsilon", ip.Param)

		err = Validate(id, Params{Epsilon: -1, MinSamples: 2})
		require.ErrorAs(t, err, &ip, id.String())

		err = Validate(id, Params{Epsilon: 0.5, MinSamples: 0})
		require.ErrorAs(t, err, &ip, id.String())
		assert.Equal(t, "min-samples", ip.Param)
	}
}

func TestValidateParameterFree(t *testing.T) {
	for _, id := range []ID{MeanShift, AffinityPropagation, BIRCH} {
		assert.NoError(t, Validate(id, Params{}), id.String())
	}
}

func TestValidateMaxIterations(t *testing.T) {
	assert.NoError(t, Validate(KMeans, Params{Clusters: 2, MaxIterations: 500}))

	var ip *InvalidParameterError
	err := Validate(KMeans, Params{Clusters: 2, MaxIterations: -1})
	require.ErrorAs(t, err, &ip)
	assert.Equal(t, "max-iterations", ip.Param)
}

func TestValidateUnknownAlgorithm(t *testing.T) {
	var ip *InvalidParameterError
	err := Validate(ID(200), Params{Clusters: 2})
	require.ErrorAs(t, err, &ip)
}

func TestIDProperties(t *testing.T) {
	assert.Len(t, IDs(), 10)

	for _, id := range IDs() {
		assert.True(t, id.Valid())
		assert.NotContains(t, id.String(), "algorithm(")

		// Count-based and density-based families are disjoint.
		assert.False(t, id.CountBased() && id.DensityBased(), id.String())
	}

	assert.True(t, KMeans.CountBased())
	assert.True(t, DBSCAN.DensityBased())
	assert.False(t, MeanShift.CountBased())
	assert.False(t, BIRCH.DensityBased())
}
