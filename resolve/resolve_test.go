package resolve

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clusterlab/clusterlab/dataset"
)

func mustTable(t *testing.T, s string) *dataset.Table {
	t.Helper()
	table, err := dataset.ParseString(s, dataset.ModePlain)
	require.NoError(t, err)
	return table
}

const mixed = "1,2,a\n3,4,b\n5,6,a"

func TestZeroFill(t *testing.T) {
	res, err := Resolve(mustTable(t, mixed), ZeroFill)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{1, 2, 0}, {3, 4, 0}, {5, 6, 0}}, res.Matrix)
	assert.Equal(t, []int{0, 1, 2}, res.RowMap)
	assert.Equal(t, []int{0, 1, 2}, res.ColMap)
}

func TestCategoryIndex(t *testing.T) {
	res, err := Resolve(mustTable(t, mixed), CategoryIndex)
	require.NoError(t, err)

	// Codes follow first appearance: a -> 0, b -> 1.
	assert.Equal(t, [][]float64{{1, 2, 0}, {3, 4, 1}, {5, 6, 0}}, res.Matrix)
	assert.Equal(t, []int{0, 1, 2}, res.RowMap)
	assert.Equal(t, []int{0, 1, 2}, res.ColMap)
}

func TestCategoryIndexPerColumn(t *testing.T) {
	// The same token gets independent codes in different columns.
	res, err := Resolve(mustTable(t, "x,1,y\ny,2,y\nx,3,x"), CategoryIndex)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{0, 1, 0}, {1, 2, 0}, {0, 3, 1}}, res.Matrix)
}

func TestExcludeFeatures(t *testing.T) {
	res, err := Resolve(mustTable(t, mixed), ExcludeFeatures)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}, res.Matrix)
	assert.Equal(t, []int{0, 1, 2}, res.RowMap)
	assert.Equal(t, []int{0, 1}, res.ColMap)
}

func TestExcludePoints(t *testing.T) {
	// Only row 1 carries a non-numeric cell; the row map records the gap.
	res, err := Resolve(mustTable(t, "1,2,3\nq,4,5\n6,7,8"), ExcludePoints)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{1, 2, 3}, {6, 7, 8}}, res.Matrix)
	assert.Equal(t, []int{0, 2}, res.RowMap)
	assert.Equal(t, []int{0, 1, 2}, res.ColMap)
}

func TestExcludePointsAllEliminated(t *testing.T) {
	_, err := Resolve(mustTable(t, mixed), ExcludePoints)

	var em *EmptyMatrixError
	require.ErrorAs(t, err, &em)
	assert.Equal(t, ExcludePoints, em.Policy)
}

func TestExcludeFeaturesAllEliminated(t *testing.T) {
	_, err := Resolve(mustTable(t, "a,b\nc,1\n2,d"), ExcludeFeatures)

	var em *EmptyMatrixError
	require.ErrorAs(t, err, &em)
	assert.Equal(t, ExcludeFeatures, em.Policy)
}

func TestInvalidPolicy(t *testing.T) {
	_, err := Resolve(mustTable(t, mixed), Policy(42))
	assert.ErrorIs(t, err, ErrInvalidPolicy)
}

func TestDeterminism(t *testing.T) {
	table := mustTable(t, "a,1,x\nb,2,y\na,3,z\nc,4,x")

	for _, policy := range []Policy{ZeroFill, CategoryIndex, ExcludePoints, ExcludeFeatures} {
		first, err1 := Resolve(table, policy)
		second, err2 := Resolve(table, policy)
		require.Equal(t, err1 == nil, err2 == nil, policy.String())
		if err1 != nil {
			continue
		}
		assert.True(t, reflect.DeepEqual(first, second), "policy %s not deterministic", policy)
	}
}

func TestShapeInvariants(t *testing.T) {
	table := mustTable(t, "1,a,3\n4,5,b\n7,8,9")
	rows, cols := table.Len(), table.Features()

	res, err := Resolve(table, ZeroFill)
	require.NoError(t, err)
	assert.Len(t, res.Matrix, rows)
	assert.Len(t, res.Matrix[0], cols)

	res, err = Resolve(table, CategoryIndex)
	require.NoError(t, err)
	assert.Len(t, res.Matrix, rows)
	assert.Len(t, res.Matrix[0], cols)

	res, err = Resolve(table, ExcludePoints)
	require.NoError(t, err)
	assert.Len(t, res.Matrix[0], cols, "ExcludePoints must keep column count")

	res, err = Resolve(table, ExcludeFeatures)
	require.NoError(t, err)
	assert.Len(t, res.Matrix, rows, "ExcludeFeatures must keep row count")
}

func TestMatrixOwnership(t *testing.T) {
	table := mustTable(t, "1,2\n3,4")

	first, err := Resolve(table, ZeroFill)
	require.NoError(t, err)
	second, err := Resolve(table, ZeroFill)
	require.NoError(t, err)

	first.Matrix[0][0] = 99
	assert.Equal(t, 1.0, second.Matrix[0][0], "resolutions must not share storage")
}
