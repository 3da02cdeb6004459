package matrix_test

import (
	"testing"

	"github.com/katalvlaran/foxapsp/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_BadShape verifies that non-positive orders are rejected.
func TestNewDense_BadShape(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := matrix.NewDense(n)
		assert.ErrorIs(t, err, matrix.ErrBadShape, "n=%d", n)
	}
}

// TestDense_AtSetBounds checks safe accessors and their sentinel errors.
func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(3)
	require.NoError(t, err)

	require.NoError(t, m.Set(2, 1, 7))
	v, err := m.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, matrix.Dist(7), v)

	_, err = m.At(3, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
}

// TestNewIdentity verifies 0 on the diagonal and Inf elsewhere.
func TestNewIdentity(t *testing.T) {
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, _ := id.At(i, j)
			if i == j {
				assert.Zero(t, v)
			} else {
				assert.True(t, matrix.IsInf(v))
			}
		}
	}
}

// TestFromRows_NonSquare verifies ragged and empty inputs fail.
func TestFromRows_NonSquare(t *testing.T) {
	_, err := matrix.FromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.FromRows([][]matrix.Dist{{0, 1}, {1}})
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestFromFlat adopts the buffer and checks its length.
func TestFromFlat(t *testing.T) {
	data := []matrix.Dist{0, 7, matrix.Inf, 0}
	m, err := matrix.FromFlat(2, data)
	require.NoError(t, err)
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, matrix.Dist(7), v)
	data[1] = 3
	v, _ = m.At(0, 1)
	assert.Equal(t, matrix.Dist(3), v, "buffer is shared")

	_, err = matrix.FromFlat(0, nil)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.FromFlat(2, data[:3])
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestFromAdjacency_Normalizes checks the zero-means-no-edge convention.
func TestFromAdjacency_Normalizes(t *testing.T) {
	m, err := matrix.FromAdjacency([][]matrix.Dist{
		{5, 0, 3},
		{0, 0, 0},
		{2, 9, 4},
	})
	require.NoError(t, err)

	want := [][]matrix.Dist{
		{0, matrix.Inf, 3},
		{matrix.Inf, 0, matrix.Inf},
		{2, 9, 0},
	}
	for i, row := range want {
		for j, w := range row {
			got, _ := m.At(i, j)
			assert.Equal(t, w, got, "(%d,%d)", i, j)
		}
	}
	require.NoError(t, matrix.ValidateDistances(m))
}

// TestDense_CloneEqualSymmetric covers deep copy, equality and symmetry.
func TestDense_CloneEqualSymmetric(t *testing.T) {
	m, err := matrix.FromRows([][]matrix.Dist{
		{0, 4},
		{4, 0},
	})
	require.NoError(t, err)
	assert.True(t, m.IsSymmetric())

	c := m.Clone()
	assert.True(t, m.Equal(c))
	require.NoError(t, c.Set(0, 1, 1))
	assert.False(t, m.Equal(c), "clone must be independent")
	assert.False(t, c.IsSymmetric())

	v, _ := m.At(0, 1)
	assert.Equal(t, matrix.Dist(4), v)
}

// TestDense_String renders Inf by name.
func TestDense_String(t *testing.T) {
	m, err := matrix.FromAdjacency([][]matrix.Dist{{0, 2}, {0, 0}})
	require.NoError(t, err)
	assert.Equal(t, "[0, 2]\n[Inf, 0]\n", m.String())
}

// TestValidateDistances_Errors walks the validator priority list.
func TestValidateDistances_Errors(t *testing.T) {
	assert.ErrorIs(t, matrix.ValidateDistances(nil), matrix.ErrNilMatrix)

	diag, _ := matrix.FromRows([][]matrix.Dist{{1, 0}, {0, 0}})
	assert.ErrorIs(t, matrix.ValidateDistances(diag), matrix.ErrNonZeroDiagonal)

	neg, _ := matrix.FromRows([][]matrix.Dist{{0, -2}, {1, 0}})
	assert.ErrorIs(t, matrix.ValidateDistances(neg), matrix.ErrNegativeWeight)

	big, _ := matrix.FromRows([][]matrix.Dist{{0, matrix.MaxWeight(2) + 1}, {1, 0}})
	assert.ErrorIs(t, matrix.ValidateDistances(big), matrix.ErrWeightOverflow)

	ok, _ := matrix.FromRows([][]matrix.Dist{{0, matrix.MaxWeight(2)}, {matrix.Inf, 0}})
	assert.NoError(t, matrix.ValidateDistances(ok))
}
