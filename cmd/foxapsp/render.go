package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/foxapsp/fox"
	"github.com/katalvlaran/foxapsp/graphio"
	"github.com/katalvlaran/foxapsp/matrix"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
)

const tableBorderColor = "#705090"

// renderPlain writes the matrix in the loader's text format.
func renderPlain(w io.Writer, d *matrix.Dense, inf string) error {
	return graphio.Write(w, d, graphio.WriteOptions{InfToken: inf})
}

// renderTable writes the matrix as a bordered table with row and column
// indices. noColor forces the ASCII colour profile.
func renderTable(w io.Writer, d *matrix.Dense, inf string, noColor bool) error {
	var opts []termenv.OutputOption
	if noColor {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	r := lipgloss.NewRenderer(w, opts...)
	right := r.NewStyle().Align(lipgloss.Right).Padding(0, 1)
	header := r.NewStyle().Bold(true).Align(lipgloss.Right).Padding(0, 1)
	unreachable := r.NewStyle().Faint(true).Align(lipgloss.Right).Padding(0, 1)

	n := d.N()
	raw := d.Raw()
	headers := make([]string, n+1)
	for j := 0; j < n; j++ {
		headers[j+1] = strconv.Itoa(j)
	}
	rows := make([][]string, n)
	for i := 0; i < n; i++ {
		row := make([]string, n+1)
		row[0] = strconv.Itoa(i)
		for j := 0; j < n; j++ {
			row[j+1] = graphio.FormatEntry(raw[i*n+j], inf)
		}
		rows[i] = row
	}

	t := lgtable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.NewStyle().Foreground(lipgloss.Color(tableBorderColor))).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == lgtable.HeaderRow, col == 0:
				return header
			case matrix.IsInf(raw[row*n+col-1]):
				return unreachable
			}
			return right
		})
	_, err := fmt.Fprintln(w, t.Render())

	return errors.Wrap(err, "render table")
}

// printStats writes a short summary of a run.
func printStats(w io.Writer, n int, res *fox.Result) {
	fmt.Fprintf(w, "N=%s  P=%d (Q=%d, b=%d)  rounds=%d  elapsed=%s\n",
		humanize.Comma(int64(n)), res.Procs, res.Q, res.BlockSize, res.Rounds, res.Elapsed)
	fmt.Fprintf(w, "messages=%s  transferred=%s  barriers=%s\n",
		humanize.Comma(res.Stats.Messages), humanize.Bytes(uint64(res.Stats.Bytes)),
		humanize.Comma(res.Stats.Barriers))
}
