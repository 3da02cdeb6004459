package graphio

import (
	"bufio"
	"io"
	"strconv"

	"github.com/katalvlaran/foxapsp/matrix"
	"github.com/pkg/errors"
)

// DefaultInfToken renders unreachable pairs as 0, the historical display
// convention of the solver's text output.
const DefaultInfToken = "0"

// WriteOptions controls Write.
type WriteOptions struct {
	InfToken string // rendering of matrix.Inf; empty means DefaultInfToken
}

// Write prints m row by row, entries separated by one space.
func Write(w io.Writer, m *matrix.Dense, opts WriteOptions) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return errors.WithMessage(err, "graphio.Write")
	}
	inf := opts.InfToken
	if inf == "" {
		inf = DefaultInfToken
	}

	bw := bufio.NewWriter(w)
	n := m.N()
	raw := m.Raw()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j > 0 {
				_ = bw.WriteByte(' ')
			}
			_, _ = bw.WriteString(FormatEntry(raw[i*n+j], inf))
		}
		_ = bw.WriteByte('\n')
	}

	return errors.Wrap(bw.Flush(), "graphio.Write")
}

// FormatEntry renders one entry the way Write does.
func FormatEntry(v matrix.Dist, infToken string) string {
	if matrix.IsInf(v) {
		if infToken == "" {
			return DefaultInfToken
		}

		return infToken
	}

	return strconv.FormatInt(v, 10)
}
