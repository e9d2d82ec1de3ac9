package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, `
output:
  defaultDir: out
document:
  title: My Course
page:
  size: a4
  orientation: landscape
  margin: 0.5
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Output.DefaultDir != "out" {
		t.Errorf("Output.DefaultDir = %q, want %q", cfg.Output.DefaultDir, "out")
	}
	if cfg.Document.Title != "My Course" {
		t.Errorf("Document.Title = %q, want %q", cfg.Document.Title, "My Course")
	}
	if cfg.Page.Size != "a4" || cfg.Page.Orientation != "landscape" || cfg.Page.Margin != 0.5 {
		t.Errorf("Page = %+v, want a4/landscape/0.5", cfg.Page)
	}
}

func TestLoadConfigNotFound(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("LoadConfig() error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadConfigParseError(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, "output: [unclosed")
	_, err := LoadConfig(path)
	if !errors.Is(err, ErrConfigParse) {
		t.Errorf("LoadConfig() error = %v, want ErrConfigParse", err)
	}
}

func TestLoadConfigRejectsUnknownKey(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, "document:\n  titel: Mistyped\n")
	_, err := LoadConfig(path)
	if !errors.Is(err, ErrConfigParse) {
		t.Errorf("LoadConfig() error = %v, want ErrConfigParse for unknown key", err)
	}
}

func TestLoadConfigFieldTooLong(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, "document:\n  title: "+strings.Repeat("x", MaxTitleLength+1)+"\n")
	_, err := LoadConfig(path)
	if !errors.Is(err, ErrFieldTooLong) {
		t.Errorf("LoadConfig() error = %v, want ErrFieldTooLong", err)
	}
}

func TestLoadConfigEmptyFileUsesDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, "")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if *cfg != (Config{}) {
		t.Errorf("LoadConfig() = %+v, want zero-value defaults", cfg)
	}
}
