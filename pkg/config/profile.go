package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Common errors for profile loading.
var (
	ErrFileNotFound = errors.New("profile file not found")
	ErrEmptyFile    = errors.New("profile file is empty")
	ErrInvalidJSON  = errors.New("invalid JSON syntax")
	ErrInvalidYAML  = errors.New("invalid YAML syntax")
	ErrUnknownKind  = errors.New("unknown value kind")
	ErrBadFormat    = errors.New("unknown output format")
)

// Value kinds a profile may request. KindAll picks a kind at random per
// sample.
const (
	KindInteger = "integer"
	KindNumber  = "number"
	KindLength  = "length"
	KindOpacity = "opacity"
	KindColor   = "color"
	KindAll     = "all"
)

// Kinds lists the concrete value kinds, excluding the "all" pseudo-kind.
func Kinds() []string {
	return []string{KindInteger, KindNumber, KindLength, KindOpacity, KindColor}
}

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Profile describes one generation run.
type Profile struct {
	// Kind is the value kind to generate. Defaults to "all".
	Kind string `json:"kind" yaml:"kind"`

	// Count is the number of samples to generate. Defaults to 10.
	Count int `json:"count" yaml:"count"`

	// Seed, when set, makes the run deterministic. When nil the generators
	// draw from the process-global random source.
	Seed *uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`

	// Format selects the CLI output format, "text" or "json".
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// Default returns the profile used when no file and no flags are given.
func Default() Profile {
	return Profile{Kind: KindAll, Count: 10, Format: FormatText}
}

// Validate checks the profile and fills unset fields with defaults.
func (p *Profile) Validate() error {
	if p.Kind == "" {
		p.Kind = KindAll
	}
	switch p.Kind {
	case KindInteger, KindNumber, KindLength, KindOpacity, KindColor, KindAll:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, p.Kind)
	}

	if p.Count <= 0 {
		p.Count = 10
	}

	if p.Format == "" {
		p.Format = FormatText
	}
	if p.Format != FormatText && p.Format != FormatJSON {
		return fmt.Errorf("%w: %q", ErrBadFormat, p.Format)
	}
	return nil
}

// Load reads a Profile from a JSON or YAML file. The format is detected by
// file extension (.yaml/.yml for YAML, otherwise JSON). The loaded profile
// is validated before being returned.
func Load(path string) (Profile, error) {
	var p Profile

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return p, fmt.Errorf("failed to stat profile: %w", err)
	}
	if info.IsDir() {
		return p, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("failed to read profile: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return p, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		if err := yaml.Unmarshal(data, &p); err != nil {
			return p, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
		}
	} else {
		if !json.Valid(data) {
			return p, fmt.Errorf("%w in file: %s", ErrInvalidJSON, path)
		}
		if err := json.Unmarshal(data, &p); err != nil {
			return p, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
	}

	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}
