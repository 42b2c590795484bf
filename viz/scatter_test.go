package viz

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clusterlab/clusterlab/compare"
	"github.com/clusterlab/clusterlab/model"
)

func TestRenderScatter(t *testing.T) {
	points := []compare.PointDisplay{
		{Row: 0, Cluster: 0, Color: "#000080"},
		{Row: 1, Cluster: 1, Color: "#0060ff"},
		{Row: 2, Cluster: model.Noise, Color: compare.NoiseColor, Noise: true},
	}
	coords := [][]float64{{0, 0}, {1, 1}, {2, 2}}

	var buf bytes.Buffer
	require.NoError(t, RenderScatter(&buf, points, coords, "demo"))

	html := buf.String()
	assert.Contains(t, html, "demo")
	assert.Contains(t, html, "Cluster 0")
	assert.Contains(t, html, "Cluster 1")
	assert.Contains(t, html, "Noise")
}

func TestRenderScatterMisaligned(t *testing.T) {
	points := []compare.PointDisplay{{Row: 0}}

	var buf bytes.Buffer
	err := RenderScatter(&buf, points, nil, "demo")
	assert.Error(t, err)

	err = RenderScatter(&buf, points, [][]float64{{1}}, "demo")
	assert.Error(t, err)
}

func TestCoordinates(t *testing.T) {
	matrix := [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}}

	coords, err := Coordinates(matrix, 2)
	require.NoError(t, err)
	require.Len(t, coords, 3)
	assert.Len(t, coords[0], 2)
}
