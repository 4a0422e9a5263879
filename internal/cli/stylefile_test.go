package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	highlighter "github.com/kirklin/headless-highlighter"
)

func TestLoadStyleSheet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "style.yaml")
	content := `
highlight_class: hl
highlight_style:
  background: yellow
active_class: hl-active
active_style:
  background: orange
active: 2
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write style sheet: %v", err)
	}

	sheet, err := loadStyleSheet(path)
	if err != nil {
		t.Fatalf("failed to load style sheet: %v", err)
	}

	if sheet.HighlightClass != "hl" {
		t.Fatalf("expected highlight_class 'hl', got %q", sheet.HighlightClass)
	}
	if sheet.Active == nil || *sheet.Active != 2 {
		t.Fatalf("expected active 2, got %v", sheet.Active)
	}
}

func TestStyleSheetApply(t *testing.T) {
	active := 1
	sheet := &styleSheet{
		HighlightClass: "match",
		ActiveStyle:    map[string]string{"background": "orange"},
		Active:         &active,
	}

	opts := highlighter.RenderOptions{
		HighlightClass: "from-config",
		ActiveClass:    "from-config-active",
	}
	sheet.apply(&opts)

	if opts.HighlightClass != "match" {
		t.Fatalf("expected sheet to override highlight class, got %q", opts.HighlightClass)
	}
	if opts.ActiveClass != "from-config-active" {
		t.Fatalf("expected unset sheet field to keep config value, got %q", opts.ActiveClass)
	}
	if !reflect.DeepEqual(opts.ActiveStyle, map[string]string{"background": "orange"}) {
		t.Fatalf("expected active style applied, got %v", opts.ActiveStyle)
	}
	if opts.ActiveIndex == nil || *opts.ActiveIndex != 1 {
		t.Fatalf("expected active index 1, got %v", opts.ActiveIndex)
	}
}

func TestLoadStyleSheetErrors(t *testing.T) {
	if _, err := loadStyleSheet(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing style sheet")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("highlight_class: [nope"), 0o644); err != nil {
		t.Fatalf("failed to write style sheet: %v", err)
	}
	if _, err := loadStyleSheet(path); err == nil {
		t.Fatalf("expected error for invalid style sheet")
	}
}
