// Package config handles global hlw configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the global hlw configuration.
type Config struct {
	// Match sets default matching behavior for all commands.
	Match MatchConfig `toml:"match"`

	// Render sets default presentation attributes for HTML output.
	Render RenderConfig `toml:"render"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// MatchConfig holds default matching options.
type MatchConfig struct {
	// CaseSensitive makes matching respect letter case.
	CaseSensitive bool `toml:"case_sensitive"`

	// Regex treats terms as raw patterns instead of literal text.
	Regex bool `toml:"regex"`

	// StripAccents removes diacritics from terms and text before matching.
	StripAccents bool `toml:"strip_accents"`
}

// RenderConfig holds default presentation attributes.
type RenderConfig struct {
	// HighlightClass is the CSS class applied to highlighted chunks in HTML
	// output.
	HighlightClass string `toml:"highlight_class"`

	// ActiveClass is the additional CSS class for the active highlight.
	ActiveClass string `toml:"active_class"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for highlighted terminal output.
	// Supported values are ANSI color codes ("0" to "255") or hex colors
	// ("#RRGGBB"); "none" disables the accent.
	Accent string `toml:"accent"`

	// CodeTheme sets the Glamour/Chroma theme used for rendered markdown
	// code blocks. Example values: "monokai", "dracula", "github", "nord".
	CodeTheme string `toml:"code_theme"`
}

// Load loads the configuration from the default location.
// Returns a default config if the file doesn't exist.
func Load() (*Config, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom loads the configuration from a specific path. A missing file is
// not an error; defaults are returned.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}

	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &config, nil
}

// DefaultPath returns the default config file path,
// honoring XDG_CONFIG_HOME.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "hlw", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".hlw.toml")
	}
	return filepath.Join(home, ".config", "hlw", "config.toml")
}
