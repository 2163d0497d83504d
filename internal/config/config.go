package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v2"

	"github.com/gahlberg/ChromaTerm/internal/highlight"
)

// Document is a parsed rc file: the ordered rules plus the reset sequence
// appended after every colorized span.
type Document struct {
	Rules []highlight.Rule
	Reset string
}

// ErrParse marks an rc file whose YAML could not be understood. Load and
// Parse still return a usable empty document alongside it so the caller
// can report the problem and keep running.
var ErrParse = errors.New("parse config")

const (
	defaultPath  = "~/.chromatermrc"
	defaultReset = "\033[0m"
)

// Load reads the rc file at path. An empty path means the default
// ~/.chromatermrc, which is seeded with the built-in rules on first run
// and stood in for by the built-in document when unreadable. Only an
// explicitly named file that cannot be read is a hard failure.
func Load(path string) (Document, error) {
	if strings.TrimSpace(path) != "" {
		resolved, err := expandPath(path)
		if err != nil {
			return Document{}, fmt.Errorf("resolve config path: %w", err)
		}
		data, err := os.ReadFile(resolved)
		if err != nil {
			return Document{}, fmt.Errorf("open config: %w", err)
		}
		return Parse(data)
	}

	resolved, err := expandPath(defaultPath)
	if err != nil {
		return Default(), nil
	}
	if _, err := os.Stat(resolved); errors.Is(err, os.ErrNotExist) {
		// First run: seed the default rc so there is a file to edit.
		_ = WriteDefault(resolved)
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return Default(), nil
	}
	return Parse(data)
}

// Parse decodes an rc document. Invalid YAML degrades to the empty
// document plus an error wrapping ErrParse rather than failing outright.
func Parse(data []byte) (Document, error) {
	doc := Document{Reset: defaultReset}

	var raw struct {
		Rules []highlight.Rule `yaml:"rules"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return doc, fmt.Errorf("%w: %v", ErrParse, err)
	}

	doc.Rules = raw.Rules
	return doc, nil
}

// Default returns the built-in document that seeds a fresh rc file.
func Default() Document {
	doc, _ := Parse([]byte(defaultDocument))
	return doc
}

// WriteDefault creates path holding the built-in rules. An existing file
// is never overwritten.
func WriteDefault(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("write default config: %w", err)
	}
	if _, err := f.Write([]byte(defaultDocument)); err != nil {
		f.Close()
		return fmt.Errorf("write default config: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write default config: %w", err)
	}
	return nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
