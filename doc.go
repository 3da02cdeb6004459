// Package foxapsp computes all-pairs shortest paths of weighted directed
// graphs with Fox's block algorithm over the min-plus semiring, run by
// P = Q² cooperating units arranged on a periodic Q×Q grid.
//
// What is inside?
//
//	matrix/   N×N distance matrices (Inf = "no path"), min-plus kernels,
//	           validators and a sequential Floyd–Warshall oracle
//	layout/   the Q×Q block decomposition of an N×N row-major matrix
//	grid/     the periodic mesh topology and an in-process SPMD runtime:
//	           FIFO links, row/column groups, broadcasts, barriers
//	fox/      scatter/gather, the Fox round and the repeated-squaring driver
//	graphio/  text loader and printer for adjacency/distance matrices
//	cmd/foxapsp  command-line front end
//
// Quick example:
//
//	g, _ := matrix.FromAdjacency([][]matrix.Dist{
//		{0, 1, 0, 0},
//		{0, 0, 1, 0},
//		{0, 0, 0, 1},
//		{1, 0, 0, 0},
//	})
//	res, err := fox.Solve(ctx, g, fox.WithProcs(4))
//	// res.Dist.At(0, 3) == 3, res.Dist.At(3, 0) == 1
//
// Guarantees:
//
//   - Unreachable pairs stay Inf; min-plus never adds an Inf operand.
//   - Configuration errors (P not a perfect square, N % Q != 0) are reported
//     before any unit starts; any unit error aborts all units.
//   - Results are identical for every valid P and every kernel worker count.
package foxapsp
