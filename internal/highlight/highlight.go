package highlight

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Rule is a single colorization entry as written in the rc file. Regex and
// Color stay loosely typed because the format allows a string or integer
// pattern, and either one color for the whole match or a map from capture
// group index to color.
type Rule struct {
	Description string      `yaml:"description"`
	Regex       interface{} `yaml:"regex"`
	Color       interface{} `yaml:"color"`
}

// Lookup resolves a color name to an escape code. An empty result means
// the name is unknown.
type Lookup func(name string) string

// Rule validation failures, in the order Compile checks for them.
var (
	ErrMissingPattern     = errors.New("regex not found")
	ErrInvalidPatternType = errors.New("regex not string or integer")
	ErrMissingColor       = errors.New("color not found")
	ErrInvalidColorType   = errors.New("color not string or dictionary")
	ErrInvalidSubAction   = errors.New("invalid sub-action")
	ErrInvalidColorCode   = errors.New("invalid color code")
)

// groupColor assigns an escape code to one capture group of a pattern.
type groupColor struct {
	group int
	code  string
}

// CompiledRule pairs a compiled pattern with the substitution it performs
// on each match. Immutable once built.
type CompiledRule struct {
	Description string

	re    *regexp.Regexp
	reset string

	// code is set for a whole-match action. groups carries a per-group
	// action and may end up empty once out-of-range entries are pruned,
	// which leaves the rule matching but rewriting nothing.
	code   string
	groups []groupColor
}

// Compile validates a rule and builds its executable form. The returned
// error names the first invalid field.
func Compile(r Rule, lookup Lookup, reset string) (*CompiledRule, error) {
	pattern, err := patternOf(r.Regex)
	if err != nil {
		return nil, err
	}

	simple, groups, err := colorOf(r.Color)
	if err != nil {
		return nil, err
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile regex: %w", err)
	}

	c := &CompiledRule{Description: r.Description, re: re, reset: reset}

	if groups == nil {
		code := lookup(simple)
		if code == "" {
			return nil, fmt.Errorf("%w: %v", ErrInvalidColorCode, simple)
		}
		c.code = code
		return c, nil
	}

	// Entries naming groups the pattern does not have are dropped before
	// their colors are resolved, not treated as errors.
	limit := re.NumSubexp()
	for _, g := range groups {
		if g.group > limit {
			continue
		}
		code := lookup(g.name)
		if code == "" {
			return nil, fmt.Errorf("%w: %v", ErrInvalidColorCode, g.name)
		}
		c.groups = append(c.groups, groupColor{group: g.group, code: code})
	}
	return c, nil
}

// CompileAll compiles every rule, skipping and reporting invalid ones so a
// single bad entry cannot disable the rest. Rules keep their written order.
func CompileAll(rules []Rule, lookup Lookup, reset string) ([]*CompiledRule, []error) {
	var (
		compiled []*CompiledRule
		errs     []error
	)
	for _, r := range rules {
		c, err := Compile(r, lookup, reset)
		if err != nil {
			errs = append(errs, fmt.Errorf("rule error on %s: %w", describeRule(r), err))
			continue
		}
		compiled = append(compiled, c)
	}
	return compiled, errs
}

func describeRule(r Rule) string {
	if r.Description != "" {
		return strconv.Quote(r.Description)
	}
	return fmt.Sprintf("{regex: %v, color: %v}", r.Regex, r.Color)
}

// pendingGroup is a validated but not yet resolved per-group entry.
type pendingGroup struct {
	group int
	name  string
}

func patternOf(v interface{}) (string, error) {
	switch p := v.(type) {
	case nil:
		return "", ErrMissingPattern
	case string:
		if p == "" {
			return "", ErrMissingPattern
		}
		return p, nil
	case int:
		if p == 0 {
			return "", ErrMissingPattern
		}
		return strconv.Itoa(p), nil
	default:
		return "", ErrInvalidPatternType
	}
}

func colorOf(v interface{}) (string, []pendingGroup, error) {
	switch c := v.(type) {
	case nil:
		return "", nil, ErrMissingColor
	case string:
		if c == "" {
			return "", nil, ErrMissingColor
		}
		return c, nil, nil
	case map[interface{}]interface{}:
		if len(c) == 0 {
			return "", nil, ErrMissingColor
		}
		groups := make([]pendingGroup, 0, len(c))
		for key, value := range c {
			idx, ok := key.(int)
			if !ok || idx < 0 {
				return "", nil, fmt.Errorf("%w: key %v", ErrInvalidSubAction, key)
			}
			name, ok := value.(string)
			if !ok {
				return "", nil, fmt.Errorf("%w: value of %v", ErrInvalidSubAction, key)
			}
			groups = append(groups, pendingGroup{group: idx, name: name})
		}
		sort.Slice(groups, func(i, j int) bool { return groups[i].group < groups[j].group })
		return "", groups, nil
	default:
		return "", nil, ErrInvalidColorType
	}
}

// Apply rewrites every match of the rule's pattern in s. Input with no
// match comes back unchanged.
func (c *CompiledRule) Apply(s string) string {
	matches := c.re.FindAllStringSubmatchIndex(s, -1)
	if matches == nil {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 16*len(matches))
	last := 0
	for _, m := range matches {
		b.WriteString(s[last:m[0]])
		c.substitute(&b, s, m)
		last = m[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

// substitute writes the replacement for the match described by m, a pair
// slice as produced by FindAllStringSubmatchIndex.
func (c *CompiledRule) substitute(b *strings.Builder, s string, m []int) {
	match := s[m[0]:m[1]]

	if c.code != "" {
		b.WriteString(c.code)
		b.WriteString(match)
		b.WriteString(c.reset)
		return
	}

	// Insert positions are taken against the original match text so nested
	// groups do not shift one another. The stable sort keeps outer codes
	// ahead of inner ones at a shared start and closes a group before its
	// neighbor opens at a shared offset.
	type insert struct {
		pos  int
		text string
	}
	inserts := make([]insert, 0, 2*len(c.groups))
	for _, g := range c.groups {
		start, end := m[2*g.group], m[2*g.group+1]
		if start < 0 {
			continue
		}
		inserts = append(inserts, insert{pos: start - m[0], text: g.code})
		inserts = append(inserts, insert{pos: end - m[0], text: c.reset})
	}
	sort.SliceStable(inserts, func(i, j int) bool { return inserts[i].pos < inserts[j].pos })

	last := 0
	for _, in := range inserts {
		b.WriteString(match[last:in.pos])
		b.WriteString(in.text)
		last = in.pos
	}
	b.WriteString(match[last:])
}

// Highlighter applies an ordered rule list to lines of text.
type Highlighter struct {
	rules []*CompiledRule
}

// NewHighlighter builds a Highlighter over compiled rules. The slice is
// kept, not copied.
func NewHighlighter(rules []*CompiledRule) *Highlighter {
	return &Highlighter{rules: rules}
}

// Line colorizes one line. Rules run in order, each over the output of the
// one before it, so later rules see earlier escapes as part of the text.
// A trailing newline is kept out of matching, which lets anchored patterns
// behave the same on terminated and unterminated lines.
func (h *Highlighter) Line(line string) string {
	if len(h.rules) == 0 {
		return line
	}

	newline := ""
	if strings.HasSuffix(line, "\n") {
		newline = "\n"
		line = line[:len(line)-1]
	}
	for _, r := range h.rules {
		line = r.Apply(line)
	}
	return line + newline
}
