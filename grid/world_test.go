package grid_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/katalvlaran/foxapsp/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newWorld builds a World or fails the test.
func newWorld(t *testing.T, size int, opts ...grid.WorldOption) *grid.World {
	t.Helper()
	w, err := grid.NewWorld(size, opts...)
	require.NoError(t, err)

	return w
}

// TestNewWorld_BadSize rejects empty worlds.
func TestNewWorld_BadSize(t *testing.T) {
	_, err := grid.NewWorld(0)
	assert.ErrorIs(t, err, grid.ErrBadSize)
}

// TestSendRecv_CopiesPayload checks delivery and that the receiver owns an
// independent copy.
func TestSendRecv_CopiesPayload(t *testing.T) {
	w := newWorld(t, 2)
	var got []int64
	err := w.Run(context.Background(), func(ctx context.Context, c *grid.Comm) error {
		if c.Rank() == 0 {
			buf := []int64{1, 2, 3}
			if err := c.Send(ctx, 1, 7, buf); err != nil {
				return err
			}
			buf[0] = 99 // must not leak into the message

			return nil
		}
		got = make([]int64, 3)

		return c.Recv(ctx, 0, 7, got)
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, got)

	st := w.Stats()
	assert.Equal(t, int64(1), st.Messages)
	assert.Equal(t, int64(24), st.Bytes)
}

// TestRecv_ProtocolErrors covers tag and length mismatches; the failing unit
// aborts the World.
func TestRecv_ProtocolErrors(t *testing.T) {
	cases := []struct {
		name    string
		sendTag int
		recvLen int
		want    error
	}{
		{"Tag", 1, 2, grid.ErrTagMismatch},
		{"Length", 0, 3, grid.ErrLengthMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := newWorld(t, 2)
			err := w.Run(context.Background(), func(ctx context.Context, c *grid.Comm) error {
				if c.Rank() == 0 {
					return c.Send(ctx, 1, tc.sendTag, []int64{4, 5})
				}

				return c.Recv(ctx, 0, 0, make([]int64, tc.recvLen))
			})
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestSend_BadRank rejects destinations outside the World.
func TestSend_BadRank(t *testing.T) {
	w := newWorld(t, 1)
	err := w.Run(context.Background(), func(ctx context.Context, c *grid.Comm) error {
		return c.Send(ctx, 3, 0, nil)
	})
	assert.ErrorIs(t, err, grid.ErrRank)
}

// TestRun_AbortsBlockedUnits verifies fail-stop: one failing unit releases
// every unit blocked in Recv or Barrier.
func TestRun_AbortsBlockedUnits(t *testing.T) {
	w := newWorld(t, 4)
	boom := errors.New("boom")
	done := make(chan error, 1)
	go func() {
		done <- w.Run(context.Background(), func(ctx context.Context, c *grid.Comm) error {
			switch c.Rank() {
			case 0:
				return boom
			case 1:
				return c.Recv(ctx, 0, 0, make([]int64, 1)) // never sent
			default:
				return c.Barrier(ctx) // rank 0 never arrives
			}
		})
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, boom)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not abort blocked units")
	}
}

// TestRun_Once rejects a second Run.
func TestRun_Once(t *testing.T) {
	w := newWorld(t, 1)
	noop := func(context.Context, *grid.Comm) error { return nil }
	require.NoError(t, w.Run(context.Background(), noop))
	assert.ErrorIs(t, w.Run(context.Background(), noop), grid.ErrWorldUsed)
}

// TestBarrier_Reusable runs several barrier episodes and checks that no unit
// passes episode k before all units reached it.
func TestBarrier_Reusable(t *testing.T) {
	const size, rounds = 5, 10
	w := newWorld(t, size)
	var arrived [rounds]atomic.Int64
	err := w.Run(context.Background(), func(ctx context.Context, c *grid.Comm) error {
		for r := 0; r < rounds; r++ {
			arrived[r].Add(1)
			if err := c.Barrier(ctx); err != nil {
				return err
			}
			if got := arrived[r].Load(); got != size {
				return errors.New("barrier released early")
			}
		}

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(rounds), w.Stats().Barriers)
}

// TestGroupBcast broadcasts along every row of a 3×3 mesh from a different
// root per row.
func TestGroupBcast(t *testing.T) {
	const q = 3
	w := newWorld(t, q*q)
	got := make([][]int64, q*q)
	err := w.Run(context.Background(), func(ctx context.Context, c *grid.Comm) error {
		tp, err := grid.NewTopology(c.Rank(), q)
		if err != nil {
			return err
		}
		row, err := c.RowGroup(tp)
		if err != nil {
			return err
		}
		buf := []int64{int64(c.Rank()), -1}
		root := (tp.Row + 1) % q
		if err := row.Bcast(ctx, root, buf, 0); err != nil {
			return err
		}
		got[c.Rank()] = buf

		return nil
	})
	require.NoError(t, err)
	for rank := 0; rank < q*q; rank++ {
		r := rank / q
		want := int64(r*q + (r+1)%q)
		assert.Equal(t, []int64{want, -1}, got[rank], "rank %d", rank)
	}
}

// TestWorldBcast sends GraphInfo-like metadata from rank 0 to everybody.
func TestWorldBcast(t *testing.T) {
	w := newWorld(t, 4)
	got := make([][]int64, 4)
	err := w.Run(context.Background(), func(ctx context.Context, c *grid.Comm) error {
		buf := make([]int64, 2)
		if c.Rank() == 0 {
			buf[0], buf[1] = 8, 4
		}
		if err := c.Bcast(ctx, 0, buf, 0); err != nil {
			return err
		}
		got[c.Rank()] = buf

		return nil
	})
	require.NoError(t, err)
	for _, g := range got {
		assert.Equal(t, []int64{8, 4}, g)
	}
}

// TestNewGroup_NotMember rejects groups that exclude the caller.
func TestNewGroup_NotMember(t *testing.T) {
	w := newWorld(t, 2)
	err := w.Run(context.Background(), func(ctx context.Context, c *grid.Comm) error {
		_, err := c.NewGroup([]int{1 - c.Rank()})
		return err
	})
	assert.ErrorIs(t, err, grid.ErrNotMember)
}

// TestSendRecvReplace_ColumnRing shifts a value up every column of a 3×3
// mesh Q times; after Q shifts every unit holds its own value again, and
// after one shift it holds the value of the unit below.
func TestSendRecvReplace_ColumnRing(t *testing.T) {
	const q = 3
	w := newWorld(t, q*q, grid.WithLinkDepth(q+1))
	first := make([]int64, q*q)
	last := make([]int64, q*q)
	err := w.Run(context.Background(), func(ctx context.Context, c *grid.Comm) error {
		tp, err := grid.NewTopology(c.Rank(), q)
		if err != nil {
			return err
		}
		buf := []int64{int64(c.Rank())}
		for step := 0; step < q; step++ {
			if err := c.SendRecvReplace(ctx, buf, tp.Up(), tp.Down(), step); err != nil {
				return err
			}
			if step == 0 {
				first[c.Rank()] = buf[0]
			}
		}
		last[c.Rank()] = buf[0]

		return nil
	})
	require.NoError(t, err)
	for rank := 0; rank < q*q; rank++ {
		tp, _ := grid.NewTopology(rank, q)
		assert.Equal(t, int64(tp.Down()), first[rank], "rank %d after one shift", rank)
		assert.Equal(t, int64(rank), last[rank], "rank %d after Q shifts", rank)
	}
}

// TestGroupSendRecvReplace_ColumnShift shifts along every column of a 3×3
// mesh through the column groups: after one shift a unit holds the value of
// the unit below it, after Q shifts its own value again.
func TestGroupSendRecvReplace_ColumnShift(t *testing.T) {
	const q = 3
	w := newWorld(t, q*q, grid.WithLinkDepth(q+1))
	first := make([]int64, q*q)
	last := make([]int64, q*q)
	err := w.Run(context.Background(), func(ctx context.Context, c *grid.Comm) error {
		tp, err := grid.NewTopology(c.Rank(), q)
		if err != nil {
			return err
		}
		col, err := c.ColGroup(tp)
		if err != nil {
			return err
		}
		if col.Index() != tp.Row {
			return errors.New("column group index must equal the row")
		}
		buf := []int64{int64(c.Rank())}
		for step := 0; step < q; step++ {
			if err := col.SendRecvReplace(ctx, buf, col.Index()-1, col.Index()+1, step); err != nil {
				return err
			}
			if step == 0 {
				first[c.Rank()] = buf[0]
			}
		}
		last[c.Rank()] = buf[0]

		return nil
	})
	require.NoError(t, err)
	for rank := 0; rank < q*q; rank++ {
		tp, _ := grid.NewTopology(rank, q)
		assert.Equal(t, int64(tp.Down()), first[rank], "rank %d after one shift", rank)
		assert.Equal(t, int64(rank), last[rank], "rank %d after Q shifts", rank)
	}
	assert.Equal(t, int64(q*q*q), w.Stats().Messages)
}

// TestGroupIndexOf maps World ranks to group positions.
func TestGroupIndexOf(t *testing.T) {
	const q = 3
	w := newWorld(t, q*q)
	err := w.Run(context.Background(), func(ctx context.Context, c *grid.Comm) error {
		tp, err := grid.NewTopology(c.Rank(), q)
		if err != nil {
			return err
		}
		col, err := c.ColGroup(tp)
		if err != nil {
			return err
		}
		up, err := col.IndexOf(tp.Up())
		if err != nil {
			return err
		}
		if up != (tp.Row+q-1)%q {
			return errors.New("Up must sit one row above in the column group")
		}
		_, err = col.IndexOf(tp.RankOf(tp.Row, tp.Col+1))

		return err
	})
	assert.ErrorIs(t, err, grid.ErrNotMember)
}
