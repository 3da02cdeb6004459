package graphio

import (
	"bufio"
	"io"
	"strconv"

	"github.com/katalvlaran/foxapsp/matrix"
	"github.com/pkg/errors"
)

// MaxOrder bounds N so that a corrupt header cannot trigger a huge
// allocation.
const MaxOrder = 1 << 14

// initialEntries is the starting capacity of the entry buffer.
const initialEntries = 1 << 12

// tokenizer yields whitespace separated integers with their ordinal.
type tokenizer struct {
	sc  *bufio.Scanner
	pos int
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &tokenizer{sc: sc}
}

// next returns the next integer. io.ErrUnexpectedEOF marks the end of input.
func (t *tokenizer) next() (int64, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, errors.Wrap(err, "graphio: read")
		}

		return 0, io.ErrUnexpectedEOF
	}
	t.pos++
	tok := t.sc.Text()
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformed, "token %d %q", t.pos, tok)
	}

	return v, nil
}

// Read parses an adjacency matrix and normalises it into a distance matrix
// (off-diagonal 0 becomes matrix.Inf, diagonal becomes 0). Tokens after the
// N*N entries are ignored.
//
// Errors: ErrBadSize, ErrMalformed, ErrTruncated, ErrNegativeWeight, and
// matrix.ErrWeightOverflow for weights that could overflow a path sum.
func Read(r io.Reader) (*matrix.Dense, error) {
	tok := newTokenizer(r)
	n, err := tok.next()
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, errors.Wrap(ErrTruncated, "missing matrix size")
	}
	if err != nil {
		return nil, err
	}
	if n <= 0 || n > MaxOrder {
		return nil, errors.Wrapf(ErrBadSize, "N=%d", n)
	}

	size := int(n)
	total := size * size
	// Grows with the input; a header alone never allocates N*N entries.
	raw := make([]matrix.Dist, 0, min(total, initialEntries))
	for idx := 0; idx < total; idx++ {
		v, err := tok.next()
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, errors.Wrapf(ErrTruncated, "got %d of %d entries", idx, total)
		}
		if err != nil {
			return nil, err
		}
		if v < 0 {
			return nil, errors.Wrapf(ErrNegativeWeight, "entry (%d,%d)=%d", idx/size, idx%size, v)
		}
		raw = append(raw, v)
	}
	m, err := matrix.FromFlat(size, raw)
	if err != nil {
		return nil, err
	}
	m.NormalizeAdjacency()
	if err := matrix.ValidateWeights(m); err != nil {
		return nil, errors.WithMessage(err, "graphio")
	}

	return m, nil
}
