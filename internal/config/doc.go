// Package config handles loading and parsing ChromaTerm rule files.
//
// # Overview
//
// This package reads the YAML rc file that lists colorization rules. Each
// rule record carries an optional description, a regex, and a color, and
// is handed to the highlight package untouched; validating individual
// rules is compilation's job, not the loader's.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it; failure to read it is the
//     only hard error
//  2. Otherwise, use ~/.chromatermrc
//  3. If the default file doesn't exist, write the built-in rules to it
//     (best effort) so first-time users have a file to edit
//  4. If the default location still can't be read, run on the built-in
//     document
//
// # Degradation
//
// A file whose YAML does not parse yields the empty document together
// with an error wrapping ErrParse. Callers report the error and keep
// running uncolored rather than killing the pipeline they sit in.
//
// # File Format
//
//	rules:
//	- description: IPv4
//	  regex: '...'
//	  color: green
//
// A color is either one name for the whole match or a map from capture
// group index to name. Names come from the palette package.
package config
