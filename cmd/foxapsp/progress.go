package main

import (
	"io"

	"github.com/katalvlaran/foxapsp/fox"
	"github.com/schollz/progressbar/v3"
)

// roundBar shows squaring progress; it is fed by fox's round hook.
type roundBar struct {
	bar *progressbar.ProgressBar
}

func newRoundBar(w io.Writer, rounds int) *roundBar {
	if rounds <= 0 {
		return &roundBar{}
	}
	bar := progressbar.NewOptions(rounds,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("squaring"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.ThemeASCII),
		progressbar.OptionClearOnFinish(),
	)

	return &roundBar{bar: bar}
}

// hook returns the fox.Option that advances the bar.
func (b *roundBar) hook() fox.Option {
	return fox.WithRoundHook(func(ri fox.RoundInfo) {
		if b.bar != nil {
			_ = b.bar.Set(ri.Round)
		}
	})
}

func (b *roundBar) finish() {
	if b.bar != nil {
		_ = b.bar.Finish()
	}
}
