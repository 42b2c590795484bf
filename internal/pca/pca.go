// Package pca projects numeric matrices onto their leading principal
// components for display purposes.
package pca

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ErrDegenerate is returned when the principal components cannot be
// computed, e.g. for a matrix with fewer than two rows.
var ErrDegenerate = errors.New("pca: principal components failed")

// Project returns the matrix projected onto its first dims principal
// components. dims must be between 1 and the column count.
func Project(matrix [][]float64, dims int) ([][]float64, error) {
	rows := len(matrix)
	if rows == 0 {
		return nil, fmt.Errorf("%w: empty matrix", ErrDegenerate)
	}
	cols := len(matrix[0])
	if dims < 1 || dims > cols {
		return nil, fmt.Errorf("pca: %d components requested from %d columns", dims, cols)
	}

	flat := make([]float64, 0, rows*cols)
	for _, row := range matrix {
		flat = append(flat, row...)
	}
	data := mat.NewDense(rows, cols, flat)

	var pc stat.PC
	if ok := pc.PrincipalComponents(data, nil); !ok {
		return nil, ErrDegenerate
	}

	var vec mat.Dense
	pc.VectorsTo(&vec)

	var proj mat.Dense
	proj.Mul(data, vec.Slice(0, cols, 0, dims))

	out := make([][]float64, rows)
	for r := 0; r < rows; r++ {
		coord := make([]float64, dims)
		for d := 0; d < dims; d++ {
			coord[d] = proj.At(r, d)
		}
		out[r] = coord
	}
	return out, nil
}
