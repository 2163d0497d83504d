package stream

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// Source is a readable input that can also report readiness: whether at
// least one byte is available or the stream has closed, without consuming
// anything.
type Source interface {
	io.Reader

	// Ready blocks until data is available or the source has closed,
	// returning true, or until timeout elapses, returning false. A
	// negative timeout blocks indefinitely.
	Ready(timeout time.Duration) (bool, error)
}

const (
	// DefaultReadSize caps how much a single read may pull into the
	// pending buffer.
	DefaultReadSize = 64 * 1024

	// DefaultHoldWait is how long the driver waits for the rest of a line
	// before printing a trailing fragment.
	DefaultHoldWait = 500 * time.Microsecond

	// waitSlice bounds each idle readiness wait so cancellation is
	// noticed.
	waitSlice = 100 * time.Millisecond
)

// Options configure a Driver.
type Options struct {
	Source    Source
	Output    io.Writer
	Highlight func(line string) string // nil passes lines through untouched
	ReadSize  int                      // zero uses DefaultReadSize
	HoldWait  time.Duration            // zero uses DefaultHoldWait
}

// Driver owns the read loop: it pulls chunks from the source, splits them
// into lines, and writes every line through the highlight hook in input
// order.
type Driver struct {
	src       Source
	out       io.Writer
	flush     func() error
	highlight func(string) string
	readSize  int
	holdWait  time.Duration
}

// New builds a Driver, filling in defaults for unset options.
func New(opts Options) *Driver {
	d := &Driver{
		src:       opts.Source,
		out:       opts.Output,
		highlight: opts.Highlight,
		readSize:  opts.ReadSize,
		holdWait:  opts.HoldWait,
	}
	if d.readSize <= 0 {
		d.readSize = DefaultReadSize
	}
	if d.holdWait <= 0 {
		d.holdWait = DefaultHoldWait
	}
	if f, ok := d.out.(interface{ Flush() error }); ok {
		d.flush = f.Flush
	}
	return d
}

// Run processes the source until it closes or ctx is cancelled. Every
// input byte reaches the output exactly once: complete lines go out as
// soon as they arrive, and a trailing fragment is held back only while
// its completion looks imminent.
func (d *Driver) Run(ctx context.Context) error {
	buf := make([]byte, 0, d.readSize)
	chunk := make([]byte, d.readSize)

	for {
		if err := d.await(ctx); err != nil {
			return err
		}

		n, err := d.src.Read(chunk)
		buf = append(buf, chunk[:n]...)
		eof := errors.Is(err, io.EOF)
		if err != nil && !eof {
			return fmt.Errorf("read input: %w", err)
		}
		if len(buf) == 0 {
			if eof {
				return nil
			}
			continue
		}

		buf, err = d.process(buf, n > 0)
		if err != nil {
			return err
		}
	}
}

// await blocks until the source is readable or closed. The wait runs in
// bounded slices so a cancelled context interrupts an otherwise
// indefinite idle.
func (d *Driver) await(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		ready, err := d.src.Ready(waitSlice)
		if err != nil {
			return fmt.Errorf("await input: %w", err)
		}
		if ready {
			return nil
		}
	}
}

// process writes out every complete line in buf and decides whether the
// remainder after the last newline is printed now or carried over to the
// next read.
func (d *Driver) process(buf []byte, more bool) ([]byte, error) {
	parts := bytes.SplitAfter(buf, []byte("\n"))
	for _, line := range parts[:len(parts)-1] {
		if err := d.emit(line); err != nil {
			return nil, err
		}
	}

	frag := parts[len(parts)-1]
	if len(frag) == 0 {
		return buf[:0], d.sync()
	}

	if more {
		ready, err := d.src.Ready(d.holdWait)
		if err == nil && ready {
			// The rest of the line is already on its way; hold the
			// fragment so it prints whole.
			n := copy(buf, frag)
			return buf[:n], d.sync()
		}
		// A probe failure falls through to printing: showing a fragment
		// beats wedging the stream, and a broken source surfaces on the
		// next await anyway.
	}

	if err := d.emit(frag); err != nil {
		return nil, err
	}
	return buf[:0], d.sync()
}

func (d *Driver) emit(line []byte) error {
	s := string(line)
	if d.highlight != nil {
		s = d.highlight(s)
	}
	if _, err := io.WriteString(d.out, s); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// sync forces buffered output down to the sink, which is what lets a
// fragment with no newline of its own become visible immediately.
func (d *Driver) sync() error {
	if d.flush == nil {
		return nil
	}
	if err := d.flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}
