package fox

import (
	"github.com/pkg/errors"
)

// RoundInfo describes a finished squaring round.
type RoundInfo struct {
	Round   int // 1-based round number
	Rounds  int // total rounds of this run
	PathLen int // D now covers paths of up to PathLen edges (2^Round)
}

// Options configures Solve, Multiply and Distribute.
//
// Procs         – number of compute units P. Must be a perfect square Q² with N % Q == 0.
// KernelWorkers – pool workers sharing each local block product; 0 or 1 runs it inline.
// ExtraRounds   – squaring rounds run after the required ⌈log₂(N-1)⌉ (Solve only).
// StepBarrier   – add a barrier after every Fox step, not only between rounds.
// RoundHook     – invoked by the coordinator after every squaring round.
type Options struct {
	Procs         int
	KernelWorkers int
	ExtraRounds   int
	StepBarrier   bool
	RoundHook     func(RoundInfo)
}

// Option is a functional option for Options.
type Option func(*Options)

// DefaultOptions returns a single-unit, inline-kernel configuration.
func DefaultOptions() Options {
	return Options{
		Procs:         1,
		KernelWorkers: 0,
		ExtraRounds:   0,
		StepBarrier:   false,
	}
}

// WithProcs sets the number of compute units.
func WithProcs(p int) Option {
	return func(o *Options) { o.Procs = p }
}

// WithKernelWorkers sets the worker count of the shared kernel pool.
func WithKernelWorkers(w int) Option {
	return func(o *Options) { o.KernelWorkers = w }
}

// WithExtraRounds runs e squaring rounds beyond the required count.
func WithExtraRounds(e int) Option {
	return func(o *Options) { o.ExtraRounds = e }
}

// WithStepBarrier toggles the per-step barrier.
func WithStepBarrier(on bool) Option {
	return func(o *Options) { o.StepBarrier = on }
}

// WithRoundHook registers fn to be called after each squaring round.
func WithRoundHook(fn func(RoundInfo)) Option {
	return func(o *Options) { o.RoundHook = fn }
}

// buildOptions applies opts over the defaults and validates the result.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch {
	case o.Procs < 1:
		return o, errors.Wrapf(ErrBadOption, "Procs=%d", o.Procs)
	case o.KernelWorkers < 0:
		return o, errors.Wrapf(ErrBadOption, "KernelWorkers=%d", o.KernelWorkers)
	case o.ExtraRounds < 0:
		return o, errors.Wrapf(ErrBadOption, "ExtraRounds=%d", o.ExtraRounds)
	}

	return o, nil
}
