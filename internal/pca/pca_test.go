package pca

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectShape(t *testing.T) {
	matrix := [][]float64{
		{1, 2, 3, 4},
		{2, 3, 4, 5},
		{0, 1, 0, 1},
		{5, 4, 3, 2},
	}

	for _, dims := range []int{1, 2, 3} {
		coords, err := Project(matrix, dims)
		require.NoError(t, err)
		require.Len(t, coords, len(matrix))
		for _, c := range coords {
			assert.Len(t, c, dims)
		}
	}
}

func TestProjectPreservesSeparation(t *testing.T) {
	// Two well-separated groups stay separated along the first component.
	matrix := [][]float64{
		{0, 0, 0},
		{0.1, 0, 0.1},
		{10, 10, 10},
		{10.1, 10, 9.9},
	}

	coords, err := Project(matrix, 2)
	require.NoError(t, err)

	gap := func(a, b int) float64 {
		d := coords[a][0] - coords[b][0]
		if d < 0 {
			return -d
		}
		return d
	}
	assert.Less(t, gap(0, 1), gap(0, 2))
	assert.Less(t, gap(2, 3), gap(0, 3))
}

func TestProjectInvalidDims(t *testing.T) {
	matrix := [][]float64{{1, 2}, {3, 4}}

	_, err := Project(matrix, 0)
	assert.Error(t, err)

	_, err = Project(matrix, 3)
	assert.Error(t, err)
}

func TestProjectEmpty(t *testing.T) {
	_, err := Project(nil, 2)
	assert.ErrorIs(t, err, ErrDegenerate)
}
