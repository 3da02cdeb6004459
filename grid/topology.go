package grid

import (
	"github.com/pkg/errors"
)

// Column ring offsets as {dRow, dCol}.
var (
	north = [2]int{-1, 0}
	south = [2]int{1, 0}
)

// Side returns Q such that Q*Q == p.
//
// Errors: ErrNotSquare if p <= 0 or p is not a perfect square.
// Complexity: O(√p).
func Side(p int) (int, error) {
	if p <= 0 {
		return 0, errors.Wrapf(ErrNotSquare, "p=%d", p)
	}
	q := 1
	for (q+1)*(q+1) <= p {
		q++
	}
	if q*q != p {
		return 0, errors.Wrapf(ErrNotSquare, "p=%d", p)
	}

	return q, nil
}

// Topology is one unit's position on the periodic Q×Q mesh.
// Row = Rank / Q and Col = Rank % Q.
type Topology struct {
	Rank, Q  int
	Row, Col int
}

// NewTopology places rank on a mesh of side q.
//
// Errors: ErrBadSize for q <= 0, ErrRank for rank outside [0, q²).
func NewTopology(rank, q int) (Topology, error) {
	if q <= 0 {
		return Topology{}, errors.Wrapf(ErrBadSize, "q=%d", q)
	}
	if rank < 0 || rank >= q*q {
		return Topology{}, errors.Wrapf(ErrRank, "rank=%d q=%d", rank, q)
	}
	row, col := Coordinate(rank, q)

	return Topology{Rank: rank, Q: q, Row: row, Col: col}, nil
}

// Coordinate converts a row-major rank back to (row, col).
// Complexity: O(1).
func Coordinate(rank, q int) (row, col int) {
	return rank / q, rank % q
}

// wrap reduces v into [0, q).
func wrap(v, q int) int {
	v %= q
	if v < 0 {
		v += q
	}

	return v
}

// RankOf maps (row, col) to a rank; both coordinates wrap modulo Q.
func (t Topology) RankOf(row, col int) int {
	return wrap(row, t.Q)*t.Q + wrap(col, t.Q)
}

// Neighbor returns the rank at offset (dRow, dCol) on the periodic mesh.
func (t Topology) Neighbor(dRow, dCol int) int {
	return t.RankOf(t.Row+dRow, t.Col+dCol)
}

// Up is the rank one row above (row-1 mod Q): where column shifts send.
func (t Topology) Up() int { return t.Neighbor(north[0], north[1]) }

// Down is the rank one row below (row+1 mod Q): where column shifts come from.
func (t Topology) Down() int { return t.Neighbor(south[0], south[1]) }

// RowMembers returns the ranks sharing this unit's row, ordered by column.
// A unit's index in the slice is its Col.
func (t Topology) RowMembers() []int {
	out := make([]int, t.Q)
	for c := range out {
		out[c] = t.RankOf(t.Row, c)
	}

	return out
}

// ColMembers returns the ranks sharing this unit's column, ordered by row.
// A unit's index in the slice is its Row.
func (t Topology) ColMembers() []int {
	out := make([]int, t.Q)
	for r := range out {
		out[r] = t.RankOf(r, t.Col)
	}

	return out
}
