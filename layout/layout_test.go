package layout_test

import (
	"testing"

	"github.com/katalvlaran/foxapsp/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seq returns [0, 1, ..., n-1].
func seq(n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = int64(i)
	}

	return out
}

// TestNew_Errors checks shape validation.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		n, q int
		err  error
	}{
		{"ZeroN", 0, 1, layout.ErrBadShape},
		{"ZeroQ", 4, 0, layout.ErrBadShape},
		{"Indivisible", 5, 2, layout.ErrIndivisible},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := layout.New(tc.n, tc.q)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestOffsetsAndCoords checks the block geometry on a 6×6 matrix, Q=3.
func TestOffsetsAndCoords(t *testing.T) {
	l, err := layout.New(6, 3)
	require.NoError(t, err)

	assert.Equal(t, 2, l.BlockSize())
	assert.Equal(t, 4, l.BlockLen())
	assert.Equal(t, 9, l.Blocks())
	assert.Equal(t, 6, l.Stride())
	assert.Equal(t, 0, l.Offset(0, 0))
	assert.Equal(t, 4, l.Offset(0, 2))
	assert.Equal(t, 12, l.Offset(1, 0))
	assert.Equal(t, 6*2*2+2*2, l.Offset(2, 2))

	for idx := 0; idx < l.Blocks(); idx++ {
		bi, bj := l.Coords(idx)
		assert.Equal(t, idx, l.Index(bi, bj))
	}
}

// TestExtract reads the expected values of one block.
func TestExtract(t *testing.T) {
	l, err := layout.New(4, 2)
	require.NoError(t, err)
	global := seq(16)

	blk := make([]int64, 4)
	require.NoError(t, l.Extract(global, l.Index(1, 0), blk))
	assert.Equal(t, []int64{8, 9, 12, 13}, blk)

	require.NoError(t, l.Extract(global, l.Index(0, 1), blk))
	assert.Equal(t, []int64{2, 3, 6, 7}, blk)
}

// TestSplitJoin_RoundTrip verifies Join(Split(M)) == M for every valid Q.
func TestSplitJoin_RoundTrip(t *testing.T) {
	const n = 12
	global := seq(n * n)
	for _, q := range []int{1, 2, 3, 4, 6, 12} {
		l, err := layout.New(n, q)
		require.NoError(t, err)

		blocks, err := l.Split(global)
		require.NoError(t, err)
		back, err := l.Join(blocks)
		require.NoError(t, err)
		assert.Equal(t, global, back, "q=%d", q)
	}
}

// TestExtractInsert_Errors covers index and length guards.
func TestExtractInsert_Errors(t *testing.T) {
	l, err := layout.New(4, 2)
	require.NoError(t, err)

	assert.ErrorIs(t, l.Extract(seq(16), 4, make([]int64, 4)), layout.ErrBlockIndex)
	assert.ErrorIs(t, l.Extract(seq(15), 0, make([]int64, 4)), layout.ErrBufferSize)
	assert.ErrorIs(t, l.Insert(seq(16), 0, make([]int64, 3)), layout.ErrBufferSize)

	_, err = l.Join(make([][]int64, 3))
	assert.ErrorIs(t, err, layout.ErrBufferSize)
}
