package fox

import (
	"context"
	"time"

	"github.com/katalvlaran/foxapsp/grid"
	"github.com/katalvlaran/foxapsp/layout"
	"github.com/katalvlaran/foxapsp/matrix"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Result is the outcome of Solve.
type Result struct {
	Dist      *matrix.Dense // shortest distances; Inf marks unreachable pairs
	Rounds    int           // squaring rounds performed
	Procs     int           // P
	Q         int           // grid side
	BlockSize int           // b = N / Q
	Stats     grid.Stats    // traffic of the run
	Elapsed   time.Duration // wall time of the SPMD section
}

// plan is the validated shape of one run, computed by the caller before
// any unit starts.
type plan struct {
	n, p, q int
	lay     layout.Layout
}

// newPlan checks that p is a perfect square and that n divides evenly.
func newPlan(n, p int) (plan, error) {
	q, err := grid.Side(p)
	if err != nil {
		return plan{}, configErrorf(err)
	}
	lay, err := layout.New(n, q)
	if err != nil {
		return plan{}, configErrorf(err)
	}

	return plan{n: n, p: p, q: q, lay: lay}, nil
}

// info returns the GraphInfo the coordinator broadcasts.
func (pl plan) info() GraphInfo {
	return GraphInfo{N: pl.n, BlockSize: pl.lay.BlockSize()}
}

// run executes body on every unit of a fresh World sized for pl. Each unit
// has received GraphInfo before body is called.
func run(ctx context.Context, pl plan, opts *Options,
	body func(ctx context.Context, u *unit) error) (grid.Stats, error) {
	kern, err := newKernel(opts.KernelWorkers)
	if err != nil {
		return grid.Stats{}, err
	}
	defer kern.release()

	// Per round a link carries at most Q shifts or one broadcast; links out
	// of the coordinator also carry GraphInfo and up to two scatters.
	world, err := grid.NewWorld(pl.p, grid.WithLinkDepth(pl.q+4))
	if err != nil {
		return grid.Stats{}, err
	}
	err = world.Run(ctx, func(ctx context.Context, c *grid.Comm) error {
		u, err := newUnit(c, pl.q, kern, opts)
		if err != nil {
			return err
		}
		var info GraphInfo
		if u.isCoordinator() {
			info = pl.info()
		}
		if _, err := u.broadcastInfo(ctx, info); err != nil {
			return err
		}

		return body(ctx, u)
	})

	return world.Stats(), err
}

// Solve returns the all-pairs shortest-path matrix of m.
//
// m must be a distance matrix (ValidateDistances): 0 diagonal, non-negative
// weights, Inf for missing edges. m is not modified.
//
// Errors:
//   - ErrBadOption for invalid options.
//   - matrix sentinels for an invalid m.
//   - ErrConfig when Procs is not a perfect square Q² or N % Q != 0.
//   - the first unit error of the SPMD section (for example ctx cancellation).
func Solve(ctx context.Context, m *matrix.Dense, opts ...Option) (*Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err := matrix.ValidateDistances(m); err != nil {
		return nil, errors.WithMessage(err, "fox.Solve")
	}
	pl, err := newPlan(m.N(), o.Procs)
	if err != nil {
		return nil, err
	}
	rounds := SquaringRounds(pl.n) + o.ExtraRounds
	klog.V(1).Infof("fox: solving N=%d on %d units (Q=%d, b=%d), %d rounds",
		pl.n, pl.p, pl.q, pl.lay.BlockSize(), rounds)

	out, err := matrix.NewDense(pl.n)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	stats, err := run(ctx, pl, &o, func(ctx context.Context, u *unit) error {
		var global []int64
		if u.isCoordinator() {
			global = m.Raw()
		}
		own, err := u.scatter(ctx, global, tagScatterA)
		if err != nil {
			return err
		}
		if err := u.square(ctx, own, rounds); err != nil {
			return err
		}

		return u.gather(ctx, own, out.Raw())
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		Dist:      out,
		Rounds:    rounds,
		Procs:     pl.p,
		Q:         pl.q,
		BlockSize: pl.lay.BlockSize(),
		Stats:     stats,
		Elapsed:   time.Since(start),
	}, nil
}

// Multiply returns C = A ⊗ B under the min-plus semiring, computed by one
// distributed Fox round. Diagonals are unconstrained; every finite entry
// must be a valid weight (matrix.ValidateWeights).
func Multiply(ctx context.Context, a, b *matrix.Dense, opts ...Option) (*matrix.Dense, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err := matrix.ValidateSameOrder(a, b); err != nil {
		return nil, errors.WithMessage(err, "fox.Multiply")
	}
	for _, m := range []*matrix.Dense{a, b} {
		if err := matrix.ValidateWeights(m); err != nil {
			return nil, errors.WithMessage(err, "fox.Multiply")
		}
	}
	pl, err := newPlan(a.N(), o.Procs)
	if err != nil {
		return nil, err
	}

	out, err := matrix.NewDense(pl.n)
	if err != nil {
		return nil, err
	}
	_, err = run(ctx, pl, &o, func(ctx context.Context, u *unit) error {
		var ga, gb []int64
		if u.isCoordinator() {
			ga, gb = a.Raw(), b.Raw()
		}
		ownA, err := u.scatter(ctx, ga, tagScatterA)
		if err != nil {
			return err
		}
		ownB, err := u.scatter(ctx, gb, tagScatterB)
		if err != nil {
			return err
		}
		if err := u.foxRound(ctx, 0, ownA, ownB); err != nil {
			return err
		}

		return u.gather(ctx, u.acc, out.Raw())
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Distribute scatters m over the grid and gathers it back without any
// computation. The result equals m entry by entry for every valid Procs.
func Distribute(ctx context.Context, m *matrix.Dense, opts ...Option) (*matrix.Dense, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, errors.WithMessage(err, "fox.Distribute")
	}
	pl, err := newPlan(m.N(), o.Procs)
	if err != nil {
		return nil, err
	}

	out, err := matrix.NewDense(pl.n)
	if err != nil {
		return nil, err
	}
	_, err = run(ctx, pl, &o, func(ctx context.Context, u *unit) error {
		var global []int64
		if u.isCoordinator() {
			global = m.Raw()
		}
		own, err := u.scatter(ctx, global, tagScatterA)
		if err != nil {
			return err
		}

		return u.gather(ctx, own, out.Raw())
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
