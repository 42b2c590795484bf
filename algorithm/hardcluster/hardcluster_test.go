package hardcluster

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clusterlab/clusterlab/algorithm"
)

// Two tight groups far apart; any sane clustering separates them.
var blobs = [][]float64{
	{0, 0}, {0.1, 0}, {0, 0.1},
	{10, 10}, {10.1, 10}, {10, 10.1},
}

func TestKMeans(t *testing.T) {
	c := New(1)

	raw, err := c.Cluster(context.Background(), blobs, algorithm.KMeans, algorithm.Params{Clusters: 2})
	require.NoError(t, err)

	require.Len(t, raw.Labels, len(blobs))
	assert.Equal(t, 1, raw.NoiseBelow)

	// Points in the same blob share a label; the blobs differ.
	assert.Equal(t, raw.Labels[0], raw.Labels[1])
	assert.Equal(t, raw.Labels[0], raw.Labels[2])
	assert.Equal(t, raw.Labels[3], raw.Labels[4])
	assert.NotEqual(t, raw.Labels[0], raw.Labels[3])
}

func TestDBSCAN(t *testing.T) {
	c := New(1)

	raw, err := c.Cluster(context.Background(), blobs, algorithm.DBSCAN, algorithm.Params{Epsilon: 0.5, MinSamples: 1})
	require.NoError(t, err)

	require.Len(t, raw.Labels, len(blobs))
	assert.Equal(t, raw.Labels[0], raw.Labels[1])
	assert.NotEqual(t, raw.Labels[0], raw.Labels[3])
}

func TestUnsupportedFamilies(t *testing.T) {
	c := New(1)

	for _, id := range []algorithm.ID{
		algorithm.MeanShift,
		algorithm.HDBSCAN,
		algorithm.GaussianMixture,
		algorithm.Agglomerative,
		algorithm.AffinityPropagation,
		algorithm.Spectral,
		algorithm.BIRCH,
	} {
		_, err := c.Cluster(context.Background(), blobs, id, algorithm.Params{Clusters: 2, Epsilon: 1, MinSamples: 2})
		assert.ErrorIs(t, err, algorithm.ErrUnsupported, id.String())
	}
}

func TestCancelledContext(t *testing.T) {
	c := New(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Cluster(ctx, blobs, algorithm.KMeans, algorithm.Params{Clusters: 2})
	assert.ErrorIs(t, err, context.Canceled)
}
