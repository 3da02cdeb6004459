// Package fox computes all-pairs shortest paths on a periodic Q×Q grid of
// cooperating units with Fox's block algorithm over the min-plus semiring.
//
// What:
//
//	Solve     – repeated squaring D ← min(D, D ⊗ D) until paths of N-1 edges
//	            are covered, every product computed by a distributed Fox round.
//	Multiply  – a single distributed min-plus product A ⊗ B.
//	Distribute– scatter followed by gather, with no computation in between.
//
// How (per unit, SPMD, P = Q² units):
//
//  1. The coordinator (rank 0) validates P and N, broadcasts GraphInfo{N, b}
//     and scatters the Q² blocks of the matrix; block (i, j) goes to the unit
//     at grid row i, column j.
//  2. Fox round: for step = 0..Q-1 the unit in column (row+step) mod Q
//     broadcasts its A block along its row; every unit folds
//     acc = min(acc, A_bcast ⊗ B_local) and passes B one step up its column
//     ring (send to row-1, receive from row+1).
//  3. Squaring driver: ⌈log₂(N-1)⌉ rounds of a Fox round with A = B = D,
//     followed by D = min(D, C) and a barrier across all units.
//  4. The coordinator gathers the blocks back into an N×N matrix.
//
// Complexity (per unit, per round): Q block broadcasts, Q column shifts,
// O(Q·b³) = O(N³/P) min-plus work.
//
// Options:
//
//	WithProcs(p)           – number of units (perfect square, N % √p == 0).
//	WithKernelWorkers(w)   – split each block product over w pool workers.
//	WithExtraRounds(e)     – squaring rounds beyond the required count.
//	WithStepBarrier(true)  – barrier after every Fox step as well.
//	WithRoundHook(fn)      – called by the coordinator after every round.
//
// Errors:
//
//	ErrConfig (wraps grid.ErrNotSquare or layout.ErrIndivisible), ErrBadOption,
//	ErrInfoMismatch, and matrix validation sentinels.
package fox
