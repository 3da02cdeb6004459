package grid

import (
	"context"
	"sync"
)

// barrier is a reusable rendezvous for n participants. Each episode owns a
// release channel that the last arriving participant closes.
type barrier struct {
	mu      sync.Mutex
	n       int
	arrived int
	release chan struct{}
	stats   *counters
}

func newBarrier(n int, stats *counters) *barrier {
	return &barrier{n: n, release: make(chan struct{}), stats: stats}
}

// wait blocks until all n participants of the current episode arrived or
// ctx is done.
func (b *barrier) wait(ctx context.Context) error {
	b.mu.Lock()
	ch := b.release
	b.arrived++
	if b.arrived == b.n {
		b.arrived = 0
		b.release = make(chan struct{})
		b.stats.barriers.Add(1)
		close(ch)
		b.mu.Unlock()

		return nil
	}
	b.mu.Unlock()

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
