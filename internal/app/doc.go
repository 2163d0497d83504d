// Package app provides the orchestration layer for ct.
//
// # Overview
//
// This package wires together configuration, rule compilation, and the
// stream driver to create the complete pipe-filter experience. It serves
// as the composition root where all dependencies are initialized and
// connected.
//
// # Startup
//
// The app package follows a simple initialization pattern:
//
//  1. Load the highlight rules from ~/.chromatermrc (or an explicit path)
//  2. Compile each rule against the palette, reporting the ones that fail
//  3. Wrap stdout in a buffered writer the driver can flush per pass
//  4. Run the stream driver over stdin and block until it closes
//
// # Error Handling
//
// The app distinguishes between fatal and recoverable problems:
//
// Fatal (returned from Run):
//   - An explicitly requested config file that cannot be opened
//
// Recoverable (reported to stderr, the session continues):
//   - A config file that does not parse; ct runs as a passthrough
//   - Individual rules that fail to compile; the rest still apply
//   - Read or write errors on the pipe; the session simply ends
//
// A filter in the middle of a pipeline should never turn a neighbour's
// hiccup into a broken pipeline of its own, so only a config the user
// explicitly pointed at is allowed to stop startup.
//
// # Configuration
//
// The Options struct allows callers to customize:
//
//   - ConfigPath: Path to the rules file (default: ~/.chromatermrc)
//   - Demo: Print the palette names in their own colors and exit
//   - HoldWait: How long to wait for the rest of a partial line
package app
