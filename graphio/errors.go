package graphio

import "errors"

var (
	// ErrMalformed is returned for a token that is not a decimal integer.
	ErrMalformed = errors.New("graphio: malformed integer")

	// ErrTruncated is returned when the input ends before N*N entries.
	ErrTruncated = errors.New("graphio: truncated input")

	// ErrNegativeWeight is returned for an entry below zero.
	ErrNegativeWeight = errors.New("graphio: negative weight")

	// ErrBadSize is returned for N <= 0 or N above MaxOrder.
	ErrBadSize = errors.New("graphio: bad matrix size")
)
