package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gahlberg/ChromaTerm/internal/highlight"
	"github.com/gahlberg/ChromaTerm/internal/palette"
)

func TestParse_EmptyDocument(t *testing.T) {
	doc, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(doc.Rules) != 0 {
		t.Fatalf("Rules = %d, want 0", len(doc.Rules))
	}
	if doc.Reset != "\033[0m" {
		t.Fatalf("Reset = %q, want %q", doc.Reset, "\033[0m")
	}
}

func TestParse_RuleFields(t *testing.T) {
	doc, err := Parse([]byte(`
rules:
- description: errors
  regex: error
  color: red
- regex: (\w+)=(\w+)
  color:
    1: green
    2: cyan
`))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(doc.Rules) != 2 {
		t.Fatalf("Rules = %d, want 2", len(doc.Rules))
	}
	if doc.Rules[0].Description != "errors" {
		t.Fatalf("Description = %q, want %q", doc.Rules[0].Description, "errors")
	}
	if doc.Rules[0].Regex != "error" {
		t.Fatalf("Regex = %v, want %q", doc.Rules[0].Regex, "error")
	}

	colors, ok := doc.Rules[1].Color.(map[interface{}]interface{})
	if !ok {
		t.Fatalf("Color = %T, want map", doc.Rules[1].Color)
	}
	if colors[1] != "green" || colors[2] != "cyan" {
		t.Fatalf("Color map = %v, want group 1 green and group 2 cyan", colors)
	}
}

func TestParse_InvalidYAMLDegrades(t *testing.T) {
	doc, err := Parse([]byte("rules: ]["))
	if !errors.Is(err, ErrParse) {
		t.Fatalf("Parse error = %v, want %v", err, ErrParse)
	}
	if len(doc.Rules) != 0 {
		t.Fatalf("Rules = %d, want empty document on parse failure", len(doc.Rules))
	}
	if doc.Reset == "" {
		t.Fatalf("Reset empty, want the degraded document to stay usable")
	}
}

func TestParse_RulesNotAListDegrades(t *testing.T) {
	doc, err := Parse([]byte("rules: 7"))
	if !errors.Is(err, ErrParse) {
		t.Fatalf("Parse error = %v, want %v", err, ErrParse)
	}
	if len(doc.Rules) != 0 {
		t.Fatalf("Rules = %d, want 0", len(doc.Rules))
	}
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Fatalf("Load returned nil error, want open failure")
	}
	if !strings.Contains(err.Error(), "open config") {
		t.Fatalf("Load error = %q, want it to mention open config", err.Error())
	}
}

func TestLoad_ExplicitFileParses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rc.yml")
	if err := os.WriteFile(path, []byte("rules:\n- regex: a\n  color: red\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(doc.Rules) != 1 {
		t.Fatalf("Rules = %d, want 1", len(doc.Rules))
	}
}

func TestLoad_ExplicitMalformedReportsAndDegrades(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rc.yml")
	if err := os.WriteFile(path, []byte("rules: ]["), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	doc, err := Load(path)
	if !errors.Is(err, ErrParse) {
		t.Fatalf("Load error = %v, want %v", err, ErrParse)
	}
	if len(doc.Rules) != 0 || doc.Reset == "" {
		t.Fatalf("degraded document = %+v, want empty rules and a reset", doc)
	}
}

func TestLoad_DefaultPathSeedsFirstRun(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	doc, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(doc.Rules) != len(Default().Rules) {
		t.Fatalf("Rules = %d, want the %d built-in rules", len(doc.Rules), len(Default().Rules))
	}
	if _, err := os.Stat(filepath.Join(home, ".chromatermrc")); err != nil {
		t.Fatalf("expected seeded rc file: %v", err)
	}
}

func TestWriteDefault_RefusesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".chromatermrc")
	if err := os.WriteFile(path, []byte("rules: []\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	err := WriteDefault(path)
	if !errors.Is(err, os.ErrExist) {
		t.Fatalf("WriteDefault error = %v, want %v", err, os.ErrExist)
	}
}

func TestDefault_CompilesClean(t *testing.T) {
	doc := Default()
	if len(doc.Rules) != 8 {
		t.Fatalf("Default rules = %d, want 8", len(doc.Rules))
	}

	compiled, errs := highlight.CompileAll(doc.Rules, palette.Get, doc.Reset)
	if len(errs) != 0 {
		t.Fatalf("CompileAll errors = %v, want none", errs)
	}
	if len(compiled) != len(doc.Rules) {
		t.Fatalf("compiled %d of %d rules", len(compiled), len(doc.Rules))
	}
}

// findRule returns the first built-in rule whose description contains
// query, compiled on its own.
func findRule(t *testing.T, query string) *highlight.CompiledRule {
	t.Helper()
	doc := Default()
	for _, r := range doc.Rules {
		if !strings.Contains(r.Description, query) {
			continue
		}
		c, err := highlight.Compile(r, palette.Get, doc.Reset)
		if err != nil {
			t.Fatalf("Compile(%q) returned error: %v", r.Description, err)
		}
		return c
	}
	t.Fatalf("no built-in rule matching %q", query)
	return nil
}

// permutate surrounds every entry with unrelated text so boundary handling
// is exercised at line starts, line ends, and mid-line.
func permutate(entries []string) []string {
	out := make([]string, 0, 4*len(entries))
	for _, e := range entries {
		out = append(out, e, "hello "+e, e+" world", "hello "+e+" world")
	}
	return out
}

func assertHighlights(t *testing.T, rule *highlight.CompiledRule, positives, negatives []string) {
	t.Helper()
	for _, entry := range permutate(positives) {
		if got := rule.Apply(entry); got == entry {
			t.Errorf("Apply(%q) unchanged, want a highlight", entry)
		}
	}
	for _, entry := range permutate(negatives) {
		if got := rule.Apply(entry); got != entry {
			t.Errorf("Apply(%q) = %q, want unchanged", entry, got)
		}
	}
}

func TestDefaultRule_IPv4(t *testing.T) {
	assertHighlights(t, findRule(t, "IPv4"),
		[]string{"192.168.2.1", "255.255.255.255", "=240.3.2.1", "1.2.3.4/32"},
		[]string{"192.168.2.1.", "1.2.3.4.5", "256.255.255.255", "1.2.3"},
	)
}

func TestDefaultRule_IPv6(t *testing.T) {
	assertHighlights(t, findRule(t, "IPv6"),
		[]string{
			"A:b:3:4:5:6:7:8", "A::", "A:b:3:4:5:6:7::", "A::8",
			"::b:3:4:5:6:7:8", "::8", "A:b:3:4:5:6::8", "A:b:3:4:5::7:8",
			"A:b:3:4::6:7:8", "::", "A:b:3::5:6:7:8", "A:b::4:5:6:7:8",
			"A::3:4:5:6:7:8", "A::7:8", "A:b:3:4:5::8", "A::6:7:8",
			"A:b:3:4::8", "A::5:6:7:8", "A:b:3::8", "A::4:5:6:7:8",
			"A:b::8", "A:b:3:4:5:6:7:8/64", "::255.255.255.255",
			"::ffff:255.255.255.255", "fe80::1%tun", "::ffff:0:255.255.255.255",
			"00A:db8:3:4::192.0.2.33", "64:ff9b::192.0.2.33",
		},
		[]string{
			":::", "1:2", "1:2:3", "1:2:3:4", "1:2:3:4:5", "1:2:3:4:5:6:7",
			"1:2:3:4:5:6:7:8:9", "1:2:3:4:5:6:7::8", "abcd:xyz::1", "fe80:1%tun",
		},
	)
}

func TestDefaultRule_MAC(t *testing.T) {
	assertHighlights(t, findRule(t, "MAC"),
		[]string{"0A:23:45:67:89:AB", "0a:23:45:67:89:ab", "0a23.4567.89ab"},
		[]string{
			"0A:23:45:67:89", "0A:23:45:67:89:AB:", "0A23.4567.89.AB",
			"0a23.4567.89ab.", "0a:23:45:67:xy:zx", "0a23.4567.xyzx",
		},
	)
}

func TestDefaultRule_Date(t *testing.T) {
	assertHighlights(t, findRule(t, "Date"),
		[]string{
			"2019-12-31", "jan 2019", "feb 2019", "Mar 2019", "apr 2019",
			"MAY 2019", "Jun 2019", "jul 2019", "AUG 19", "sep 20", "oct 21",
			"nov 22", "dec 23", "24 jan", "25 feb 2019",
		},
		[]string{
			"201-12-31", "2019-13-31", "2019-12-32", "xyz 2019", "Jun 201",
			"xyz 26", "jun 32", "32 jun",
		},
	)
}

func TestDefaultRule_Time(t *testing.T) {
	assertHighlights(t, findRule(t, "Time"),
		[]string{"23:59", "23:01", "23:01:01", "23:01:01.123"},
		[]string{"24:59", "23:60", "23:1", "23:01:1", "23:01:01:"},
	)
}

func TestDefaultRule_BGPDescription(t *testing.T) {
	rule := findRule(t, "BGP")
	if rule.Description != "BGP - Transitional states" {
		t.Fatalf("Description = %q, want %q", rule.Description, "BGP - Transitional states")
	}
}
