// Package config loads converter defaults from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/maxgiraldo/cornell-notes/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrFieldTooLong   = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxTitleLength       = 200 // HTML document title
	MaxPageSizeLength    = 10  // "letter", "a4"
	MaxOrientationLength = 10  // "portrait", "landscape"
)

// Config holds defaults shared by both converters. CLI flags win on conflict.
type Config struct {
	Output   OutputConfig   `yaml:"output"`
	Document DocumentConfig `yaml:"document"`
	Page     PageConfig     `yaml:"page"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = current directory)
}

// DocumentConfig defines document metadata options.
type DocumentConfig struct {
	Title string `yaml:"title"` // HTML <title> (empty = "Cornell Notes")
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "letter", "a4" (default: "letter")
	Orientation string  `yaml:"orientation"` // "portrait", "landscape" (default: "portrait")
	Margin      float64 `yaml:"margin"`      // inches, left/right (default: 0.75)
}

// DefaultConfig returns a Config with zero-value defaults; empty fields mean
// "use the library default".
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if len(data) > 0 {
		// Strict: a misspelled key is a user error, not a silent default.
		if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate bounds free-form fields.
func (c *Config) Validate() error {
	checks := []struct {
		name  string
		value string
		max   int
	}{
		{"document.title", c.Document.Title, MaxTitleLength},
		{"page.size", c.Page.Size, MaxPageSizeLength},
		{"page.orientation", c.Page.Orientation, MaxOrientationLength},
	}
	for _, check := range checks {
		if len(check.value) > check.max {
			return fmt.Errorf("%w: %s (%d > %d)", ErrFieldTooLong, check.name, len(check.value), check.max)
		}
	}
	return nil
}
