// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Sequential dense APSP (Floyd–Warshall) with deterministic loop order.
//   - Reference oracle for the distributed engine and the CLI -verify flag.
//
// Contract:
//   - Inf means "no path"; the diagonal must be 0 before calling.

package matrix

const opFloydWarshall = "FloydWarshall"

// floydWarshallInPlace runs the APSP closure on d in place.
// Loop order is fixed (k → i → j). Time O(n³); extra space O(1).
func floydWarshallInPlace(d *Dense) {
	n := d.n
	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand Dist
	)
	data := d.data

	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if ik == Inf { // i cannot reach k
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if kj == Inf {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] { // strict improvement only
					data[baseI+j] = cand
				}
			}
		}
	}
}

// FloydWarshall returns the all-pairs shortest-path closure of m as a new
// matrix; m is left untouched.
//
// Errors: anything ValidateDistances reports.
// Complexity: Time O(n³), Space O(n²) for the copy.
func FloydWarshall(m *Dense) (*Dense, error) {
	if err := ValidateDistances(m); err != nil {
		return nil, matrixErrorf(opFloydWarshall, err)
	}
	d := m.Clone()
	floydWarshallInPlace(d)

	return d, nil
}
