package grid

import (
	"context"
	"slices"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Comm is a single unit's handle on a World. It is owned by the goroutine
// running that unit and must not be shared.
type Comm struct {
	world *World
	rank  int
	all   *Group // every rank, built on first use
}

func newComm(w *World, rank int) *Comm {
	return &Comm{world: w, rank: rank}
}

// Rank returns this unit's rank in [0, Size()).
func (c *Comm) Rank() int { return c.rank }

// Size returns the number of units in the World.
func (c *Comm) Size() int { return c.world.size }

func (c *Comm) checkRank(op string, r int) error {
	if r < 0 || r >= c.world.size {
		return errors.Wrapf(ErrRank, "%s: rank %d of %d", op, r, c.world.size)
	}

	return nil
}

// Send delivers a copy of data to dst with the given tag. It blocks only
// while the link to dst is full.
func (c *Comm) Send(ctx context.Context, dst, tag int, data []int64) error {
	if err := c.checkRank("Send", dst); err != nil {
		return err
	}
	msg := message{tag: tag, data: slices.Clone(data)}
	select {
	case c.world.links[c.rank][dst] <- msg:
		c.world.stats.message(len(data))
		return nil
	case <-ctx.Done():
		return errors.Wrapf(ctx.Err(), "Send %d->%d tag %d", c.rank, dst, tag)
	}
}

// Recv blocks until the next message from src arrives and copies it into dst.
//
// Errors: ErrRank, ErrTagMismatch, ErrLengthMismatch, or the context error.
func (c *Comm) Recv(ctx context.Context, src, tag int, dst []int64) error {
	if err := c.checkRank("Recv", src); err != nil {
		return err
	}
	select {
	case msg := <-c.world.links[src][c.rank]:
		if msg.tag != tag {
			return errors.Wrapf(ErrTagMismatch, "Recv %d<-%d: got tag %d, want %d", c.rank, src, msg.tag, tag)
		}
		if len(msg.data) != len(dst) {
			return errors.Wrapf(ErrLengthMismatch, "Recv %d<-%d tag %d: got %d elements, want %d",
				c.rank, src, tag, len(msg.data), len(dst))
		}
		copy(dst, msg.data)
		return nil
	case <-ctx.Done():
		return errors.Wrapf(ctx.Err(), "Recv %d<-%d tag %d", c.rank, src, tag)
	}
}

// SendRecvReplace sends buf to dst and then overwrites buf with the message
// received from src. Used in a ring (every unit sends one way and receives
// from the other side) it is a cyclic shift that completes for all units.
func (c *Comm) SendRecvReplace(ctx context.Context, buf []int64, dst, src, tag int) error {
	if dst == c.rank && src == c.rank {
		return nil
	}
	klog.V(3).Infof("grid: unit %d shift tag %d: ->%d <-%d", c.rank, tag, dst, src)
	if err := c.Send(ctx, dst, tag, buf); err != nil {
		return err
	}

	return c.Recv(ctx, src, tag, buf)
}

// Barrier blocks until every unit of the World has reached it.
func (c *Comm) Barrier(ctx context.Context) error {
	if err := c.world.bar.wait(ctx); err != nil {
		return errors.Wrapf(err, "Barrier at unit %d", c.rank)
	}

	return nil
}

// Bcast copies buf from root to every unit of the World.
func (c *Comm) Bcast(ctx context.Context, root int, buf []int64, tag int) error {
	if c.all == nil {
		members := make([]int, c.world.size)
		for i := range members {
			members[i] = i
		}
		g, err := c.NewGroup(members)
		if err != nil {
			return err
		}
		c.all = g
	}

	return c.all.Bcast(ctx, root, buf, tag)
}

// RowGroup returns the group of units sharing t's row, indexed by column.
func (c *Comm) RowGroup(t Topology) (*Group, error) {
	return c.NewGroup(t.RowMembers())
}

// ColGroup returns the group of units sharing t's column, indexed by row.
func (c *Comm) ColGroup(t Topology) (*Group, error) {
	return c.NewGroup(t.ColMembers())
}
