// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for the guards used by kernels and the distributed engine.
//  - Return sentinel errors wrapped with the validator tag so call sites can match via errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameOrder ensures a and b are non-nil and of equal order.
func ValidateSameOrder(a, b *Dense) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameOrder", ErrNilMatrix)
	}
	if a.n != b.n {
		return validatorErrorf("ValidateSameOrder", ErrDimensionMismatch)
	}

	return nil
}

// MaxWeight returns the largest finite entry an order-n matrix may hold so
// that the sum of two distances of up to n-1 edges each stays below Inf.
func MaxWeight(n int) Dist {
	span := Dist(n - 1)
	if span < 1 {
		span = 1
	}

	return (Inf - 1) / (2 * span)
}

// ValidateWeights checks that every finite entry lies in [0, MaxWeight(n)].
//
// Errors: ErrNilMatrix, ErrNegativeWeight, ErrWeightOverflow.
func ValidateWeights(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	limit := MaxWeight(m.n)
	for idx, v := range m.data {
		if v == Inf {
			continue
		}
		if v < 0 {
			return fmt.Errorf("ValidateWeights: (%d,%d)=%d: %w", idx/m.n, idx%m.n, v, ErrNegativeWeight)
		}
		if v > limit {
			return fmt.Errorf("ValidateWeights: (%d,%d)=%d > %d: %w", idx/m.n, idx%m.n, v, limit, ErrWeightOverflow)
		}
	}

	return nil
}

// ValidateDistances checks the distance-matrix invariant: every diagonal
// entry is 0 and every other entry is a valid weight or Inf.
//
// Sequence: NotNil -> diagonal -> weights.
func ValidateDistances(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	var i int
	for i = 0; i < m.n; i++ {
		if m.data[i*m.n+i] != 0 {
			return fmt.Errorf("ValidateDistances: (%d,%d): %w", i, i, ErrNonZeroDiagonal)
		}
	}

	return ValidateWeights(m)
}
