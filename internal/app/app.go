package app

import (
	"bufio"
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/gahlberg/ChromaTerm/internal/config"
	"github.com/gahlberg/ChromaTerm/internal/highlight"
	"github.com/gahlberg/ChromaTerm/internal/palette"
	"github.com/gahlberg/ChromaTerm/internal/stream"
)

// Options configure the ct application.
type Options struct {
	ConfigPath string        // empty uses default ~/.chromatermrc
	Demo       bool          // print the palette instead of filtering
	HoldWait   time.Duration // zero uses the stream default
}

// Run colorizes stdin onto stdout until the input closes or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	diag := log.New(os.Stderr, "ct: ", 0)

	if opts.Demo {
		return palette.Demo(os.Stdout)
	}

	doc, err := config.Load(opts.ConfigPath)
	if err != nil {
		if !errors.Is(err, config.ErrParse) {
			return err
		}
		// A malformed config degrades to passthrough instead of
		// refusing to start.
		diag.Print(err)
	}

	rules, errs := highlight.CompileAll(doc.Rules, palette.Get, doc.Reset)
	for _, err := range errs {
		diag.Print(err)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	driver := stream.New(stream.Options{
		Source:    stream.NewFile(os.Stdin),
		Output:    out,
		Highlight: highlight.NewHighlighter(rules).Line,
		HoldWait:  opts.HoldWait,
	})

	err = driver.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		// Trouble on the pipe ends the session without making it a
		// failure; ct sits between two processes it does not control.
		diag.Print(err)
	}
	return nil
}
