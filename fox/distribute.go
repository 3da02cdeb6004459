package fox

import (
	"context"

	"github.com/katalvlaran/foxapsp/layout"
	"github.com/pkg/errors"
)

// GraphInfo is the metadata every unit needs before block exchange.
type GraphInfo struct {
	N         int // matrix order
	BlockSize int // b = N / Q
}

// broadcastInfo sends GraphInfo from the coordinator to all units; every
// unit then derives the block layout from it and checks it against its
// own grid side.
func (u *unit) broadcastInfo(ctx context.Context, info GraphInfo) (GraphInfo, error) {
	buf := make([]int64, 2)
	if u.isCoordinator() {
		buf[0], buf[1] = int64(info.N), int64(info.BlockSize)
	}
	if err := u.comm.Bcast(ctx, Coordinator, buf, tagInfo); err != nil {
		return GraphInfo{}, errors.WithMessage(err, "broadcast graph info")
	}
	got := GraphInfo{N: int(buf[0]), BlockSize: int(buf[1])}

	lay, err := layout.New(got.N, u.topo.Q)
	if err != nil {
		return got, errors.Wrapf(ErrInfoMismatch, "unit %d: %v", u.comm.Rank(), err)
	}
	if lay.BlockSize() != got.BlockSize {
		return got, errors.Wrapf(ErrInfoMismatch, "unit %d: block size %d, grid implies %d",
			u.comm.Rank(), got.BlockSize, lay.BlockSize())
	}
	u.lay = lay
	u.allocBlocks()

	return got, nil
}

// scatter hands block (i, j) of global to the unit at grid (i, j) and
// returns this unit's block. Only the coordinator reads global.
func (u *unit) scatter(ctx context.Context, global []int64, tag int) ([]int64, error) {
	own := make([]int64, u.lay.BlockLen())
	if !u.isCoordinator() {
		if err := u.comm.Recv(ctx, Coordinator, tag, own); err != nil {
			return nil, errors.WithMessage(err, "scatter")
		}

		return own, nil
	}

	blk := make([]int64, u.lay.BlockLen())
	for idx := 0; idx < u.lay.Blocks(); idx++ {
		bi, bj := u.lay.Coords(idx)
		dst := u.topo.RankOf(bi, bj)
		target := blk
		if dst == Coordinator {
			target = own
		}
		if err := u.lay.Extract(global, idx, target); err != nil {
			return nil, errors.WithMessage(err, "scatter")
		}
		if dst == Coordinator {
			continue
		}
		if err := u.comm.Send(ctx, dst, tag, blk); err != nil {
			return nil, errors.WithMessage(err, "scatter")
		}
	}

	return own, nil
}

// gather is the inverse of scatter: every unit sends its block to the
// coordinator, which writes it into global at the same layout position.
func (u *unit) gather(ctx context.Context, own, global []int64) error {
	if !u.isCoordinator() {
		return errors.WithMessage(u.comm.Send(ctx, Coordinator, tagGather, own), "gather")
	}

	blk := make([]int64, u.lay.BlockLen())
	for idx := 0; idx < u.lay.Blocks(); idx++ {
		bi, bj := u.lay.Coords(idx)
		src := u.topo.RankOf(bi, bj)
		data := own
		if src != Coordinator {
			if err := u.comm.Recv(ctx, src, tagGather, blk); err != nil {
				return errors.WithMessage(err, "gather")
			}
			data = blk
		}
		if err := u.lay.Insert(global, idx, data); err != nil {
			return errors.WithMessage(err, "gather")
		}
	}

	return nil
}
