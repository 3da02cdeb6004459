package fox

import (
	"sync"

	"github.com/katalvlaran/foxapsp/matrix"
	"github.com/panjf2000/ants/v2"
	"github.com/pkg/errors"
)

// minStripeRows is the smallest row stripe worth a pool task.
const minStripeRows = 8

// kernel runs the local block product, optionally split into row stripes
// on a pool shared by every unit of a run.
type kernel struct {
	pool    *ants.Pool
	workers int
}

// newKernel creates the pool for workers > 1; otherwise products run inline.
func newKernel(workers int) (*kernel, error) {
	if workers <= 1 {
		return &kernel{workers: 1}, nil
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, errors.Wrapf(err, "kernel pool of %d workers", workers)
	}

	return &kernel{pool: pool, workers: workers}, nil
}

// release frees the pool, if any.
func (k *kernel) release() {
	if k.pool != nil {
		k.pool.Release()
	}
}

// accumulate folds a ⊗ b into acc (all bs×bs, row-major).
func (k *kernel) accumulate(acc, a, b []int64, bs int) error {
	if k.pool == nil || bs < 2*minStripeRows {
		matrix.MinPlusAccumulate(acc, a, b, bs)
		return nil
	}
	stripes := min(k.workers, bs/minStripeRows)
	per := (bs + stripes - 1) / stripes

	var wg sync.WaitGroup
	for lo := 0; lo < bs; lo += per {
		hi := min(lo+per, bs)
		wg.Add(1)
		err := k.pool.Submit(func() {
			defer wg.Done()
			matrix.MinPlusAccumulateRows(acc, a, b, bs, lo, hi)
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return errors.Wrapf(err, "kernel stripe [%d,%d)", lo, hi)
		}
	}
	wg.Wait()

	return nil
}
