// Package stream moves bytes from an unbounded input to the output with
// line-oriented highlighting and minimal added latency.
//
// # Read loop
//
// The Driver alternates between waiting for input and draining it. Each
// pass reads at most one chunk, appends it to the pending buffer, splits
// the buffer at newline boundaries, and writes every complete line out
// immediately. Lines are never reordered and every byte is written
// exactly once.
//
// # Fragment holding
//
// Text after the last newline of a pass is a fragment: it may be an
// incomplete line whose remainder is still in flight, or it may be a
// prompt that will never be terminated. The Driver distinguishes the two
// with a short readiness probe. If the read that produced the fragment
// returned data and more input arrives within the probe window, the
// fragment is carried over so the whole line can be highlighted in one
// piece. Otherwise the fragment is written out as-is, which keeps shell
// prompts and progress output responsive.
//
// # Sources
//
// A Source couples reading with a non-consuming readiness check. File
// adapts a file descriptor using select(2), which is what makes the
// sub-millisecond probe window meaningful. End of stream always flushes
// whatever is pending, fragment included.
package stream
