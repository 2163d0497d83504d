// Package highlight turns declarative colorization rules into compiled
// matchers and applies them to individual lines.
//
// A rule pairs a regular expression with a color action: one color for the
// whole match, or a map from capture group index to color for marking up
// parts of a match. Compilation validates each rule's shape, resolves its
// color names through a caller-supplied lookup, and rejects rules one at a
// time, so one mistake in an rc file never disables the rest.
package highlight
