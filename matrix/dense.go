// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Expose the flat buffer (Raw) to block-layout code that copies sub-blocks by offset/stride.
//
// Complexity quicksheet:
//   - NewDense: O(n²); At/Set: O(1); Clone/Equal: O(n²).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"
	ctxSet  = "Set"
	ctxRows = "FromRows"
	ctxFlat = "FromFlat"
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtInf      = "Inf"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a square n×n distance matrix in row-major order (offset = i*n + j).
type Dense struct {
	n    int    // order (rows == cols == n)
	data []Dist // contiguous row-major storage (len == n*n)
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an n×n matrix filled with zeros.
//
// Errors:
//   - ErrBadShape if n <= 0.
//
// Complexity: O(n²) time and memory.
func NewDense(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{n: n, data: make([]Dist, n*n)}, nil
}

// NewIdentity returns the min-plus identity of order n:
// 0 on the diagonal, Inf everywhere else.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j {
				m.data[i*n+j] = Inf
			}
		}
	}

	return m, nil
}

// FromRows deep-copies a square [][]Dist into a new Dense.
// Values are copied verbatim; see FromAdjacency for raw input normalisation.
//
// Errors:
//   - ErrBadShape for an empty input.
//   - ErrNonSquare when any row length differs from len(rows).
func FromRows(rows [][]Dist) (*Dense, error) {
	n := len(rows)
	if n == 0 {
		return nil, matrixErrorf(ctxRows, ErrBadShape)
	}
	m := &Dense{n: n, data: make([]Dist, n*n)}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d: %w", ctxRows, i, len(row), n, ErrNonSquare)
		}
		copy(m.data[i*n:(i+1)*n], row)
	}

	return m, nil
}

// FromFlat wraps an n*n row-major buffer without copying; the matrix owns
// data afterwards.
//
// Errors:
//   - ErrBadShape if n <= 0.
//   - ErrDimensionMismatch if len(data) != n*n.
func FromFlat(n int, data []Dist) (*Dense, error) {
	if n <= 0 {
		return nil, matrixErrorf(ctxFlat, ErrBadShape)
	}
	if len(data) != n*n {
		return nil, fmt.Errorf("%s: %d entries for order %d: %w", ctxFlat, len(data), n, ErrDimensionMismatch)
	}

	return &Dense{n: n, data: data}, nil
}

// FromAdjacency builds a distance matrix from a raw adjacency matrix:
// the diagonal becomes 0, an off-diagonal 0 becomes Inf ("no edge"),
// every other value is kept.
func FromAdjacency(rows [][]Dist) (*Dense, error) {
	m, err := FromRows(rows)
	if err != nil {
		return nil, err
	}
	m.NormalizeAdjacency()

	return m, nil
}

// NormalizeAdjacency rewrites m in place with the adjacency convention of
// FromAdjacency. Complexity: O(n²).
func (m *Dense) NormalizeAdjacency() {
	n := m.n
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch {
			case i == j:
				m.data[i*n+j] = 0
			case m.data[i*n+j] == 0:
				m.data[i*n+j] = Inf
			}
		}
	}
}

// N returns the matrix order.
func (m *Dense) N() int { return m.n }

// Rows returns the row count (equal to N).
func (m *Dense) Rows() int { return m.n }

// Cols returns the column count (equal to N).
func (m *Dense) Cols() int { return m.n }

// Raw exposes the row-major backing slice. Mutations are visible in m.
func (m *Dense) Raw() []Dist { return m.data }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.n {
		return 0, ErrOutOfRange
	}

	return row*m.n + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (Dist, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
func (m *Dense) Set(row, col int, v Dist) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy of m.
func (m *Dense) Clone() *Dense {
	buf := make([]Dist, len(m.data))
	copy(buf, m.data)

	return &Dense{n: m.n, data: buf}
}

// Equal reports whether m and o have the same order and identical entries.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.n != o.n {
		return false
	}
	for i, v := range m.data {
		if o.data[i] != v {
			return false
		}
	}

	return true
}

// IsSymmetric reports whether m[i][j] == m[j][i] for every pair.
// Only the upper triangle is scanned.
func (m *Dense) IsSymmetric() bool {
	n := m.n
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if m.data[i*n+j] != m.data[j*n+i] {
				return false
			}
		}
	}

	return true
}

// String renders rows as "[a, b, Inf]\n" for debugging.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.n; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.n; j++ {
			v := m.data[i*m.n+j]
			if v == Inf {
				sb.WriteString(_fmtInf)
			} else {
				sb.WriteString(strconv.FormatInt(v, 10))
			}
			if j < m.n-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
