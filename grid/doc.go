// Package grid arranges P = Q² compute units on a periodic Q×Q mesh and
// provides the message-passing runtime they cooperate through.
//
// What:
//
//   - Topology: the (rank ↔ row, col) bijection of one unit, periodic
//     neighbours, and the member lists of its row and column sub-groups.
//     It is a plain value, computed once from (rank, Q) and passed around.
//   - World: P units joined by one FIFO link per ordered pair of ranks, a
//     reusable barrier and transfer statistics. World.Run starts every unit
//     in its own goroutine and aborts them all on the first error.
//   - Comm: a unit's view of the World: Send, Recv, SendRecvReplace, Barrier, Bcast.
//   - Group: an ordered subset of ranks (a row or a column) with a
//     one-to-all Bcast.
//
// Semantics:
//
//   - Every transmitted buffer is copied on send; the receiver owns its copy.
//   - Recv blocks until the matching message arrives; the tag and length of
//     every message are checked (ErrTagMismatch, ErrLengthMismatch).
//   - All blocking operations honour context cancellation, which is how a
//     failing unit stops the rest of the World.
//
// Errors:
//
//   - ErrNotSquare, ErrBadSize, ErrRank, ErrNotMember, ErrTagMismatch,
//     ErrLengthMismatch, ErrWorldUsed.
package grid
