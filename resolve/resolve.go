package resolve

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/clusterlab/clusterlab/dataset"
)

// Resolution is the numeric form of a typed table under one policy.
//
// Matrix is rectangular: len(Matrix) == len(RowMap) rows of len(ColMap)
// values each. Row i of the matrix corresponds to original table row
// RowMap[i]; column j corresponds to original feature column ColMap[j].
type Resolution struct {
	Matrix [][]float64
	RowMap []int
	ColMap []int
	Policy Policy
}

// EmptyMatrixError indicates that a policy eliminated every row or every
// column, leaving nothing to cluster.
type EmptyMatrixError struct {
	Policy Policy
}

func (e *EmptyMatrixError) Error() string {
	return fmt.Sprintf("resolve: policy %s eliminated all data", e.Policy)
}

// ErrInvalidPolicy is returned for a policy value outside the defined set.
var ErrInvalidPolicy = fmt.Errorf("resolve: invalid policy")

// Resolve derives a numeric matrix from the table under the given policy.
//
// The table is read-only; the returned matrix is owned by the caller and
// shares no storage with the table or with other resolutions.
func Resolve(t *dataset.Table, p Policy) (*Resolution, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPolicy, uint8(p))
	}

	rows, cols := t.Len(), t.Features()

	// Single scan marking which rows and columns carry non-numeric cells.
	badRows := roaring.New()
	badCols := roaring.New()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if !t.Cell(r, c).Numeric {
				badRows.Add(uint32(r))
				badCols.Add(uint32(c))
			}
		}
	}

	switch p {
	case ZeroFill:
		return zeroFill(t, rows, cols), nil
	case CategoryIndex:
		return categoryIndex(t, rows, cols), nil
	case ExcludePoints:
		return excludePoints(t, rows, cols, badRows)
	default:
		return excludeFeatures(t, rows, cols, badCols)
	}
}

func identity(n int) []int {
	m := make([]int, n)
	for i := range m {
		m[i] = i
	}
	return m
}

func zeroFill(t *dataset.Table, rows, cols int) *Resolution {
	matrix := make([][]float64, rows)
	for r := 0; r < rows; r++ {
		row := make([]float64, cols)
		for c := 0; c < cols; c++ {
			if cell := t.Cell(r, c); cell.Numeric {
				row[c] = cell.Value
			}
		}
		matrix[r] = row
	}
	return &Resolution{Matrix: matrix, RowMap: identity(rows), ColMap: identity(cols), Policy: ZeroFill}
}

func categoryIndex(t *dataset.Table, rows, cols int) *Resolution {
	// Codes are per column and assigned in row order, so the result is
	// independent of map iteration order.
	codes := make([]map[string]float64, cols)
	for c := range codes {
		codes[c] = make(map[string]float64)
	}

	matrix := make([][]float64, rows)
	for r := 0; r < rows; r++ {
		row := make([]float64, cols)
		for c := 0; c < cols; c++ {
			cell := t.Cell(r, c)
			if cell.Numeric {
				row[c] = cell.Value
				continue
			}
			code, ok := codes[c][cell.Token]
			if !ok {
				code = float64(len(codes[c]))
				codes[c][cell.Token] = code
			}
			row[c] = code
		}
		matrix[r] = row
	}
	return &Resolution{Matrix: matrix, RowMap: identity(rows), ColMap: identity(cols), Policy: CategoryIndex}
}

func excludePoints(t *dataset.Table, rows, cols int, badRows *roaring.Bitmap) (*Resolution, error) {
	keep := rows - int(badRows.GetCardinality())
	if keep == 0 {
		return nil, &EmptyMatrixError{Policy: ExcludePoints}
	}

	matrix := make([][]float64, 0, keep)
	rowMap := make([]int, 0, keep)
	for r := 0; r < rows; r++ {
		if badRows.Contains(uint32(r)) {
			continue
		}
		row := make([]float64, cols)
		for c := 0; c < cols; c++ {
			row[c] = t.Cell(r, c).Value
		}
		matrix = append(matrix, row)
		rowMap = append(rowMap, r)
	}
	return &Resolution{Matrix: matrix, RowMap: rowMap, ColMap: identity(cols), Policy: ExcludePoints}, nil
}

func excludeFeatures(t *dataset.Table, rows, cols int, badCols *roaring.Bitmap) (*Resolution, error) {
	keep := cols - int(badCols.GetCardinality())
	if keep == 0 {
		return nil, &EmptyMatrixError{Policy: ExcludeFeatures}
	}

	colMap := make([]int, 0, keep)
	for c := 0; c < cols; c++ {
		if !badCols.Contains(uint32(c)) {
			colMap = append(colMap, c)
		}
	}

	matrix := make([][]float64, rows)
	for r := 0; r < rows; r++ {
		row := make([]float64, keep)
		for i, c := range colMap {
			row[i] = t.Cell(r, c).Value
		}
		matrix[r] = row
	}
	return &Resolution{Matrix: matrix, RowMap: identity(rows), ColMap: colMap, Policy: ExcludeFeatures}, nil
}
