// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every public routine returns one of these sentinels (possibly wrapped with
// fmt.Errorf("ctx: %w", ErrX)); tests match them via errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so log lines are greppable.
// Wrap only at the detection site; callers match with errors.Is.

var (
	// ErrBadShape is returned when a requested order is invalid (n <= 0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand orders or buffer lengths.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square input was required but a ragged or
	// rectangular one was given.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNonZeroDiagonal signals that a distance matrix has a non-zero diagonal entry.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrNegativeWeight signals a negative finite distance.
	ErrNegativeWeight = errors.New("matrix: negative weight")

	// ErrWeightOverflow signals weights so large that a path of n-1 edges
	// could reach the Inf sentinel.
	ErrWeightOverflow = errors.New("matrix: weight too large for path sums")

	// ErrNilMatrix indicates that a nil *Dense was passed.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// matrixErrorf wraps err with an operation tag: "<op>: <err>".
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
