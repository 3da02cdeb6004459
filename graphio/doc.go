// Package graphio reads adjacency matrices from text and writes distance
// matrices back as text.
//
// Input format: an integer N followed by N*N integers, row-major, separated
// by any whitespace. A 0 off the diagonal means "no edge" and becomes
// matrix.Inf; the diagonal is forced to 0.
//
// Output format: one line per row, entries separated by a single space,
// matrix.Inf rendered as WriteOptions.InfToken.
package graphio
