package fox

import (
	"context"

	"github.com/katalvlaran/foxapsp/matrix"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// SquaringRounds returns how many squaring rounds turn one-edge distances
// of an n-node graph into shortest paths: the count of k = 1, 2, 4, ...
// with k < n-1, i.e. ⌈log₂(n-1)⌉ for n > 2 and 0 otherwise.
func SquaringRounds(n int) int {
	rounds := 0
	for k := 1; k < n-1; k *= 2 {
		rounds++
	}

	return rounds
}

// square runs rounds squaring rounds on the unit's block d in place:
// C = D ⊗ D by a Fox round, D = min(D, C), then a barrier across all units
// so that no unit broadcasts its next-round block before every peer is done
// with the current one.
func (u *unit) square(ctx context.Context, d []int64, rounds int) error {
	pathLen := 1
	for r := 0; r < rounds; r++ {
		copy(u.trav, d)
		if err := u.foxRound(ctx, r, d, u.trav); err != nil {
			return err
		}
		matrix.MinSlices(d, u.acc)

		if err := u.comm.Barrier(ctx); err != nil {
			return errors.WithMessagef(err, "after round %d", r)
		}
		pathLen *= 2
		if u.isCoordinator() {
			klog.V(1).Infof("fox: squaring round %d/%d done, paths up to %d edges", r+1, rounds, pathLen)
			if u.opts.RoundHook != nil {
				u.opts.RoundHook(RoundInfo{Round: r + 1, Rounds: rounds, PathLen: pathLen})
			}
		}
	}

	return nil
}
