package fox

import (
	"context"

	"github.com/katalvlaran/foxapsp/matrix"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// foxRound computes this unit's block of C = A ⊗ B into u.acc.
//
// a is the unit's own A block and is only read. b is the unit's B block; it
// travels up the column ring during the round and, after Q shifts, holds
// the unit's initial B block again.
//
// At step s the unit at (i, j) holds B block ((i+s) mod Q, j) and receives
// A block (i, (i+s) mod Q) from its row, so after Q steps acc holds
// min over k of A(i,k) ⊗ B(k,j).
func (u *unit) foxRound(ctx context.Context, round int, a, b []int64) error {
	q := u.topo.Q
	bs := u.lay.BlockSize()
	matrix.FillInf(u.acc)

	for step := 0; step < q; step++ {
		root := (u.topo.Row + step) % q
		if u.topo.Col == root {
			copy(u.work, a)
		}
		if err := u.row.Bcast(ctx, root, u.work, stepTag(q, round, step, kindBcast)); err != nil {
			return errors.WithMessagef(err, "round %d step %d: row broadcast", round, step)
		}

		if err := u.kern.accumulate(u.acc, u.work, b, bs); err != nil {
			return errors.WithMessagef(err, "round %d step %d", round, step)
		}

		err := u.col.SendRecvReplace(ctx, b, u.up, u.down, stepTag(q, round, step, kindShift))
		if err != nil {
			return errors.WithMessagef(err, "round %d step %d: column shift", round, step)
		}
		if u.opts.StepBarrier {
			if err := u.comm.Barrier(ctx); err != nil {
				return err
			}
		}
		klog.V(2).Infof("fox: unit %d (%d,%d) round %d step %d done (bcast root col %d)",
			u.comm.Rank(), u.topo.Row, u.topo.Col, round, step, root)
	}

	return nil
}
