package fox_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/foxapsp/fox"
	"github.com/katalvlaran/foxapsp/matrix"
)

var sinkR *fox.Result

func BenchmarkSolve(b *testing.B) {
	const n = 144
	g := randomGraph(b, n, 0.05, 100, 1337, false)
	for _, cfg := range []struct{ procs, workers int }{{1, 1}, {4, 1}, {9, 1}, {16, 1}, {4, 4}} {
		b.Run(fmt.Sprintf("P=%d/workers=%d", cfg.procs, cfg.workers), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				res, err := fox.Solve(context.Background(), g,
					fox.WithProcs(cfg.procs), fox.WithKernelWorkers(cfg.workers))
				if err != nil {
					b.Fatal(err)
				}
				sinkR = res
			}
		})
	}
}

func BenchmarkFloydWarshall(b *testing.B) {
	g := randomGraph(b, 144, 0.05, 100, 1337, false)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d, err := matrix.FloydWarshall(g)
		if err != nil {
			b.Fatal(err)
		}
		_ = d
	}
}
