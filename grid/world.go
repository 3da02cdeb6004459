package grid

import (
	"context"
	"sync/atomic"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

// DefaultLinkDepth is the number of messages a link buffers before Send
// blocks, unless WithLinkDepth says otherwise.
const DefaultLinkDepth = 4

// message is one payload in flight on a link.
type message struct {
	tag  int
	data []int64
}

// World is a fixed set of units connected by point-to-point FIFO links.
// links[src][dst] carries messages from src to dst in send order.
type World struct {
	size  int
	links [][]chan message
	bar   *barrier
	stats counters
	used  atomic.Bool
}

// WorldOption configures NewWorld.
type WorldOption func(*worldConfig)

type worldConfig struct {
	linkDepth int
}

// WithLinkDepth sets how many messages each link buffers. A protocol whose
// backlog on any link never exceeds d never blocks in Send, which keeps
// send-then-receive exchanges deadlock free. Values < 1 are ignored.
func WithLinkDepth(d int) WorldOption {
	return func(c *worldConfig) {
		if d >= 1 {
			c.linkDepth = d
		}
	}
}

// NewWorld allocates a World of size units.
//
// Errors: ErrBadSize if size <= 0.
// Complexity: O(size²) links.
func NewWorld(size int, opts ...WorldOption) (*World, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrBadSize, "world size %d", size)
	}
	cfg := worldConfig{linkDepth: DefaultLinkDepth}
	for _, opt := range opts {
		opt(&cfg)
	}
	links := make([][]chan message, size)
	for src := range links {
		links[src] = make([]chan message, size)
		for dst := range links[src] {
			links[src][dst] = make(chan message, cfg.linkDepth)
		}
	}
	w := &World{size: size, links: links}
	w.bar = newBarrier(size, &w.stats)

	return w, nil
}

// Size returns the number of units.
func (w *World) Size() int { return w.size }

// Stats returns a snapshot of the transfer counters.
func (w *World) Stats() Stats { return w.stats.snapshot() }

// UnitFunc is the SPMD body executed by every unit.
type UnitFunc func(ctx context.Context, c *Comm) error

// Run executes fn once per unit, each in its own goroutine, and waits for
// all of them. The first error cancels the context shared by the units so
// that every blocked Send, Recv or Barrier returns; Run reports that first
// error. A World runs at most once.
func (w *World) Run(ctx context.Context, fn UnitFunc) error {
	if !w.used.CompareAndSwap(false, true) {
		return ErrWorldUsed
	}
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "grid: run")
	}
	g, gctx := errgroup.WithContext(ctx)
	for rank := 0; rank < w.size; rank++ {
		c := newComm(w, rank)
		g.Go(func() error {
			if err := fn(gctx, c); err != nil {
				klog.V(1).Infof("grid: unit %d failed: %v", c.rank, err)
				return errors.WithMessagef(err, "unit %d", c.rank)
			}

			return nil
		})
	}

	return g.Wait()
}
