package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[match]
case_sensitive = true
strip_accents = true

[render]
highlight_class = "match"
active_class = "match-active"

[ui]
accent = "#7aa2f7"
code_theme = "dracula"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if !cfg.Match.CaseSensitive {
		t.Fatalf("expected case_sensitive to be true")
	}
	if cfg.Match.Regex {
		t.Fatalf("expected regex to default to false")
	}
	if !cfg.Match.StripAccents {
		t.Fatalf("expected strip_accents to be true")
	}
	if cfg.Render.HighlightClass != "match" {
		t.Fatalf("expected highlight_class 'match', got %q", cfg.Render.HighlightClass)
	}
	if cfg.Render.ActiveClass != "match-active" {
		t.Fatalf("expected active_class 'match-active', got %q", cfg.Render.ActiveClass)
	}
	if cfg.UI.Accent != "#7aa2f7" {
		t.Fatalf("expected accent '#7aa2f7', got %q", cfg.UI.Accent)
	}
	if cfg.UI.CodeTheme != "dracula" {
		t.Fatalf("expected code_theme 'dracula', got %q", cfg.UI.CodeTheme)
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("expected defaults for missing file, got error: %v", err)
	}
	if cfg.Match.CaseSensitive || cfg.Match.Regex || cfg.Match.StripAccents {
		t.Fatalf("expected zero-value match config, got %+v", cfg.Match)
	}
}

func TestLoadFromInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("not = [valid"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Fatalf("expected error for invalid config")
	}
}
