// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense storage and the kernels.
package matrix

import "math"

// Dist is a shortest-path distance or an edge weight.
// Finite values are non-negative; Inf marks "no path".
type Dist = int64

// Inf is the "infinite" sentinel. It is the additive identity of the
// min-plus semiring and is never the result of a finite sum.
const Inf Dist = math.MaxInt64

// IsInf reports whether d is the Inf sentinel.
func IsInf(d Dist) bool { return d == Inf }

// Add returns a ⊗ b = a + b, or Inf when either operand is Inf.
// Callers must keep finite sums below Inf (see ValidateDistances).
func Add(a, b Dist) Dist {
	if a == Inf || b == Inf {
		return Inf
	}

	return a + b
}
