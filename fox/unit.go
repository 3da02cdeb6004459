package fox

import (
	"github.com/katalvlaran/foxapsp/grid"
	"github.com/katalvlaran/foxapsp/layout"
)

// Coordinator is the rank that owns the global matrix before scatter and
// after gather.
const Coordinator = 0

// Message tags. Fox rounds draw from tagRound upward so that every
// broadcast and shift of every step carries a distinct tag.
const (
	tagInfo = iota
	tagScatterA
	tagScatterB
	tagGather
	tagRound
)

const (
	kindBcast = iota
	kindShift
	kindCount
)

// stepTag returns the tag of one operation kind in a Fox step.
func stepTag(q, round, step, kind int) int {
	return tagRound + (round*q+step)*kindCount + kind
}

// unit is the per-rank state of one SPMD run: its place on the grid, its
// row and column groups, the block layout learned from GraphInfo and the
// scratch blocks reused by every round.
type unit struct {
	comm *grid.Comm
	topo grid.Topology
	row  *grid.Group
	col  *grid.Group
	up   int // column group index B blocks are sent to
	down int // column group index B blocks arrive from
	lay  layout.Layout
	kern *kernel
	opts *Options

	work []int64 // block received by the row broadcast
	acc  []int64 // product accumulator
	trav []int64 // B block travelling up the column
}

// newUnit places c on a mesh of side q and builds its sub-groups.
func newUnit(c *grid.Comm, q int, kern *kernel, opts *Options) (*unit, error) {
	topo, err := grid.NewTopology(c.Rank(), q)
	if err != nil {
		return nil, err
	}
	row, err := c.RowGroup(topo)
	if err != nil {
		return nil, err
	}
	col, err := c.ColGroup(topo)
	if err != nil {
		return nil, err
	}
	up, err := col.IndexOf(topo.Up())
	if err != nil {
		return nil, err
	}
	down, err := col.IndexOf(topo.Down())
	if err != nil {
		return nil, err
	}

	return &unit{comm: c, topo: topo, row: row, col: col, up: up, down: down, kern: kern, opts: opts}, nil
}

// isCoordinator reports whether this unit owns the global matrix.
func (u *unit) isCoordinator() bool { return u.comm.Rank() == Coordinator }

// allocBlocks sizes the scratch blocks once the layout is known.
func (u *unit) allocBlocks() {
	n := u.lay.BlockLen()
	u.work = make([]int64, n)
	u.acc = make([]int64, n)
	u.trav = make([]int64, n)
}
