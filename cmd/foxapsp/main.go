// Command foxapsp computes all-pairs shortest paths of a weighted directed
// graph with Fox's algorithm on a Q×Q grid of in-process units.
//
// Usage:
//
//	foxapsp [flags] <input>
//
// The input holds N followed by the N*N adjacency matrix (0 off the
// diagonal means no edge); "-" reads standard input. Flags may also come
// from a TOML file given with -config; flags on the command line win.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/katalvlaran/foxapsp/fox"
	"github.com/katalvlaran/foxapsp/graphio"
	"github.com/katalvlaran/foxapsp/matrix"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// errVerify is returned when -verify finds a mismatch.
var errVerify = errors.New("result differs from Floyd-Warshall")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	if err != nil {
		klog.Errorf("foxapsp: %v", err)
		klog.Flush()
		os.Exit(1)
	}
	klog.Flush()
}

// run is main without the process exit, so tests can drive it.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("foxapsp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	klog.InitFlags(fs)
	configPath := fs.String("config", "", "optional TOML configuration file")
	fromFlags := registerFlags(fs)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: foxapsp [flags] <input file | ->\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("exactly one input file is required")
	}
	cfg, err := resolveConfig(fs, fromFlags, *configPath)
	if err != nil {
		return err
	}

	g, err := readInput(fs.Arg(0), stdin)
	if err != nil {
		return err
	}
	if cfg.Procs == 0 {
		cores := physicalCores()
		if cfg.Procs, err = autoProcs(g.N(), cores); err != nil {
			return err
		}
		klog.V(1).Infof("foxapsp: %d cores, using P=%d", cores, cfg.Procs)
	}

	opts := []fox.Option{
		fox.WithProcs(cfg.Procs),
		fox.WithKernelWorkers(cfg.KernelWorkers),
		fox.WithExtraRounds(cfg.ExtraRounds),
		fox.WithStepBarrier(cfg.StepBarrier),
	}
	var bar *roundBar
	if cfg.Progress {
		bar = newRoundBar(stderr, fox.SquaringRounds(g.N())+cfg.ExtraRounds)
		opts = append(opts, bar.hook())
	}
	res, err := fox.Solve(ctx, g, opts...)
	if bar != nil {
		bar.finish()
	}
	if err != nil {
		return err
	}

	if cfg.Verify {
		if err := verify(g, res.Dist); err != nil {
			return err
		}
		klog.V(1).Info("foxapsp: result matches Floyd-Warshall")
	}
	if cfg.Table {
		err = renderTable(stdout, res.Dist, cfg.Inf, cfg.NoColor)
	} else {
		err = renderPlain(stdout, res.Dist, cfg.Inf)
	}
	if err != nil {
		return err
	}
	if cfg.Stats {
		printStats(stderr, g.N(), res)
	}

	return nil
}

func readInput(path string, stdin io.Reader) (*matrix.Dense, error) {
	if path == "-" {
		return graphio.Read(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open input")
	}
	defer f.Close()

	g, err := graphio.Read(f)

	return g, errors.WithMessagef(err, "input %s", path)
}

// verify compares got with the sequential oracle.
func verify(g, got *matrix.Dense) error {
	want, err := matrix.FloydWarshall(g)
	if err != nil {
		return err
	}
	if !want.Equal(got) {
		return errors.WithStack(errVerify)
	}

	return nil
}
