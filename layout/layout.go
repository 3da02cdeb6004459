// Package layout maps an N×N row-major matrix onto a Q×Q grid of b×b blocks
// (b = N/Q) and back.
//
// Block (bi, bj) covers rows [bi·b, bi·b+b) and columns [bj·b, bj·b+b). In
// the flat global buffer it starts at Offset(bi, bj) and its rows are
// Stride() elements apart. Extract and Insert are the only code paths that
// touch that geometry, so a scatter built on Extract and a gather built on
// Insert are exact inverses.
//
// Block indices are linear and row-major over the block grid:
// idx = bi·Q + bj, and Coords(idx) = (idx/Q, idx%Q).
package layout

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape indicates a non-positive matrix order or grid side.
	ErrBadShape = errors.New("layout: order and grid side must be > 0")

	// ErrIndivisible indicates that N is not a multiple of Q.
	ErrIndivisible = errors.New("layout: matrix order not divisible by grid side")

	// ErrBlockIndex indicates a block index outside [0, Q²).
	ErrBlockIndex = errors.New("layout: block index out of range")

	// ErrBufferSize indicates a global or block buffer of the wrong length.
	ErrBufferSize = errors.New("layout: buffer has wrong length")
)

// Layout is an immutable description of the block decomposition.
type Layout struct {
	n, q, b int
}

// New validates (n, q) and returns the layout.
//
// Errors: ErrBadShape, ErrIndivisible.
// Complexity: O(1).
func New(n, q int) (Layout, error) {
	if n <= 0 || q <= 0 {
		return Layout{}, fmt.Errorf("layout.New(%d,%d): %w", n, q, ErrBadShape)
	}
	if n%q != 0 {
		return Layout{}, fmt.Errorf("layout.New(%d,%d): %w", n, q, ErrIndivisible)
	}

	return Layout{n: n, q: q, b: n / q}, nil
}

// N returns the matrix order.
func (l Layout) N() int { return l.n }

// Q returns the block-grid side.
func (l Layout) Q() int { return l.q }

// BlockSize returns b = N/Q.
func (l Layout) BlockSize() int { return l.b }

// BlockLen returns the number of elements in one block (b²).
func (l Layout) BlockLen() int { return l.b * l.b }

// Blocks returns the number of blocks (Q²).
func (l Layout) Blocks() int { return l.q * l.q }

// Stride returns the distance between consecutive block rows in the global buffer.
func (l Layout) Stride() int { return l.n }

// Offset returns the flat index of the first element of block (bi, bj).
func (l Layout) Offset(bi, bj int) int { return bi*l.n*l.b + bj*l.b }

// Index returns the linear block index of (bi, bj).
func (l Layout) Index(bi, bj int) int { return bi*l.q + bj }

// Coords is the inverse of Index.
func (l Layout) Coords(idx int) (bi, bj int) { return idx / l.q, idx % l.q }

// check validates buffer lengths and the block index shared by Extract/Insert.
func (l Layout) check(op string, global, block []int64, idx int) error {
	if idx < 0 || idx >= l.Blocks() {
		return fmt.Errorf("layout.%s(%d): %w", op, idx, ErrBlockIndex)
	}
	if len(global) != l.n*l.n {
		return fmt.Errorf("layout.%s: global len %d, want %d: %w", op, len(global), l.n*l.n, ErrBufferSize)
	}
	if len(block) != l.BlockLen() {
		return fmt.Errorf("layout.%s: block len %d, want %d: %w", op, len(block), l.BlockLen(), ErrBufferSize)
	}

	return nil
}

// Extract copies block idx of global into dst (row-major, b×b).
func (l Layout) Extract(global []int64, idx int, dst []int64) error {
	if err := l.check("Extract", global, dst, idx); err != nil {
		return err
	}
	bi, bj := l.Coords(idx)
	off, stride := l.Offset(bi, bj), l.Stride()
	for r := 0; r < l.b; r++ {
		copy(dst[r*l.b:(r+1)*l.b], global[off+r*stride:off+r*stride+l.b])
	}

	return nil
}

// Insert copies src (row-major, b×b) into block idx of global.
func (l Layout) Insert(global []int64, idx int, src []int64) error {
	if err := l.check("Insert", global, src, idx); err != nil {
		return err
	}
	bi, bj := l.Coords(idx)
	off, stride := l.Offset(bi, bj), l.Stride()
	for r := 0; r < l.b; r++ {
		copy(global[off+r*stride:off+r*stride+l.b], src[r*l.b:(r+1)*l.b])
	}

	return nil
}

// Split returns all Q² blocks of global, indexed by linear block index.
func (l Layout) Split(global []int64) ([][]int64, error) {
	blocks := make([][]int64, l.Blocks())
	for idx := range blocks {
		blocks[idx] = make([]int64, l.BlockLen())
		if err := l.Extract(global, idx, blocks[idx]); err != nil {
			return nil, err
		}
	}

	return blocks, nil
}

// Join assembles a global buffer from Q² blocks indexed by linear block index.
func (l Layout) Join(blocks [][]int64) ([]int64, error) {
	if len(blocks) != l.Blocks() {
		return nil, fmt.Errorf("layout.Join: %d blocks, want %d: %w", len(blocks), l.Blocks(), ErrBufferSize)
	}
	global := make([]int64, l.n*l.n)
	for idx, blk := range blocks {
		if err := l.Insert(global, idx, blk); err != nil {
			return nil, err
		}
	}

	return global, nil
}
