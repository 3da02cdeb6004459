// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Min-plus semiring kernels on flat row-major blocks and on whole matrices.
//   - The block kernel is the local compute step of every Fox round; the
//     whole-matrix product is the sequential reference it is checked against.
//
// Contract:
//   - Inf operands are skipped, never added (no wrap-around to a bogus finite value).
//   - Loop order is fixed (i → k → j) for deterministic accumulation.

package matrix

const (
	opMinPlusMul = "MinPlusMul"
	opMinInto    = "MinInto"
)

// MinPlusAccumulate folds the min-plus product of two b×b blocks into acc:
//
//	acc[i][j] = min(acc[i][j], a[i][k] + b[k][j])  for all i, k, j
//
// All three slices are row-major of length bs*bs; the caller guarantees it.
// Time: O(bs³); no allocations.
func MinPlusAccumulate(acc, a, b []Dist, bs int) {
	MinPlusAccumulateRows(acc, a, b, bs, 0, bs)
}

// MinPlusAccumulateRows is MinPlusAccumulate restricted to accumulator rows
// [lo, hi). Disjoint row ranges may run concurrently.
func MinPlusAccumulateRows(acc, a, b []Dist, bs, lo, hi int) {
	var (
		i, k, j      int
		baseI, baseK int
		aik, bkj     Dist
		cand         Dist
	)
	for i = lo; i < hi; i++ {
		baseI = i * bs
		for k = 0; k < bs; k++ {
			aik = a[baseI+k]
			if aik == Inf { // no route i→k inside this block pair
				continue
			}
			baseK = k * bs
			for j = 0; j < bs; j++ {
				bkj = b[baseK+j]
				if bkj == Inf {
					continue
				}
				cand = aik + bkj
				if cand < acc[baseI+j] {
					acc[baseI+j] = cand
				}
			}
		}
	}
}

// FillInf sets every entry of buf to Inf (the ⊕ identity).
func FillInf(buf []Dist) {
	for i := range buf {
		buf[i] = Inf
	}
}

// MinSlices stores min(dst[i], src[i]) into dst[i]. Lengths must match.
func MinSlices(dst, src []Dist) {
	for i, v := range src {
		if v < dst[i] {
			dst[i] = v
		}
	}
}

// MinPlusMul returns C = A ⊗ B under the min-plus semiring using the
// straightforward triple loop over the full matrices.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n³) time, O(n²) memory for the result.
func MinPlusMul(a, b *Dense) (*Dense, error) {
	if err := ValidateSameOrder(a, b); err != nil {
		return nil, matrixErrorf(opMinPlusMul, err)
	}
	c := &Dense{n: a.n, data: make([]Dist, a.n*a.n)}
	FillInf(c.data)
	MinPlusAccumulate(c.data, a.data, b.data, a.n)

	return c, nil
}

// MinInto replaces dst with the element-wise minimum of dst and src.
func MinInto(dst, src *Dense) error {
	if err := ValidateSameOrder(dst, src); err != nil {
		return matrixErrorf(opMinInto, err)
	}
	MinSlices(dst.data, src.data)

	return nil
}
