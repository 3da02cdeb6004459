package fox

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig indicates a grid/matrix combination that cannot run: P is not
	// a perfect square or N is not divisible by √P. It is reported before any
	// unit starts.
	ErrConfig = errors.New("fox: invalid configuration")

	// ErrBadOption indicates an out-of-range option value.
	ErrBadOption = errors.New("fox: invalid option")

	// ErrInfoMismatch indicates that the broadcast GraphInfo disagrees with
	// the grid a unit runs on.
	ErrInfoMismatch = errors.New("fox: graph info inconsistent with grid")
)

// configErrorf tags cause with ErrConfig so that callers can match either.
func configErrorf(cause error) error {
	return fmt.Errorf("%w: %w", ErrConfig, cause)
}
