package grid

import (
	"context"
	"slices"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Group is an ordered subset of World ranks seen from one member.
// Roots of collective operations are given as indices into Members.
type Group struct {
	comm    *Comm
	members []int
	index   int
}

// NewGroup builds the group made of members (World ranks, distinct); the
// calling unit must be one of them.
//
// Errors: ErrRank for an invalid member, ErrNotMember if c is not included.
func (c *Comm) NewGroup(members []int) (*Group, error) {
	index := -1
	for i, r := range members {
		if err := c.checkRank("NewGroup", r); err != nil {
			return nil, err
		}
		if r == c.rank {
			index = i
		}
	}
	if index < 0 {
		return nil, errors.Wrapf(ErrNotMember, "unit %d in %v", c.rank, members)
	}

	return &Group{comm: c, members: slices.Clone(members), index: index}, nil
}

// Size returns the number of members.
func (g *Group) Size() int { return len(g.members) }

// Index returns the caller's position in the group.
func (g *Group) Index() int { return g.index }

// Members returns a copy of the member ranks in group order.
func (g *Group) Members() []int { return slices.Clone(g.members) }

// IndexOf returns the group index of a World rank.
//
// Errors: ErrNotMember if rank is not in the group.
func (g *Group) IndexOf(rank int) (int, error) {
	if i := slices.Index(g.members, rank); i >= 0 {
		return i, nil
	}

	return -1, errors.Wrapf(ErrNotMember, "rank %d in %v", rank, g.members)
}

// SendRecvReplace sends buf to the member at index dst, then overwrites buf
// with the message from the member at index src. Indices wrap modulo
// Size(), so Index()-1 and Index()+1 address the ring neighbours.
func (g *Group) SendRecvReplace(ctx context.Context, buf []int64, dst, src, tag int) error {
	n := len(g.members)

	return g.comm.SendRecvReplace(ctx, buf, g.members[wrap(dst, n)], g.members[wrap(src, n)], tag)
}

// Bcast copies buf from the member at index root to every other member.
// The root returns once every copy is queued; the others return once their
// copy has been received into buf.
func (g *Group) Bcast(ctx context.Context, root int, buf []int64, tag int) error {
	if root < 0 || root >= len(g.members) {
		return errors.Wrapf(ErrRank, "Bcast root index %d of %d", root, len(g.members))
	}
	if g.index != root {
		return g.comm.Recv(ctx, g.members[root], tag, buf)
	}
	klog.V(3).Infof("grid: unit %d bcast tag %d to %v", g.comm.rank, tag, g.members)
	for i, r := range g.members {
		if i == root {
			continue
		}
		if err := g.comm.Send(ctx, r, tag, buf); err != nil {
			return err
		}
	}

	return nil
}
