// Package matrix holds the distance-matrix data model and the min-plus
// semiring kernels shared by the distributed APSP engine.
//
// What:
//
//   - Dense: a square, row-major N×N matrix of Dist values with safe
//     accessors (At/Set return ErrOutOfRange instead of panicking).
//   - Inf: the "no path" sentinel. It is never produced by adding two
//     finite distances; every min-plus kernel skips Inf operands.
//   - MinPlusAccumulate / MinPlusMul: the (min, +) product on flat blocks
//     and on whole matrices.
//   - MinInto: element-wise minimum used between squaring rounds.
//   - FloydWarshall: sequential APSP closure, used as a reference oracle.
//
// Semiring:
//
//	a ⊕ b = min(a, b)   identity: Inf
//	a ⊗ b = a + b       identity: 0
//
// Errors:
//
//   - ErrBadShape, ErrOutOfRange, ErrDimensionMismatch, ErrNonSquare,
//     ErrNonZeroDiagonal, ErrNegativeWeight, ErrWeightOverflow, ErrNilMatrix.
//
// Complexity:
//
//   - NewDense O(n²); At/Set O(1); MinPlusMul O(n³); FloydWarshall O(n³).
package matrix
