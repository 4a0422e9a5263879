package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	highlighter "github.com/kirklin/headless-highlighter"
)

// styleSheet is the YAML format accepted by --style. All fields are
// optional; set fields layer over config defaults.
type styleSheet struct {
	HighlightClass string            `yaml:"highlight_class"`
	HighlightStyle map[string]string `yaml:"highlight_style"`
	ActiveClass    string            `yaml:"active_class"`
	ActiveStyle    map[string]string `yaml:"active_style"`
	Active         *int              `yaml:"active"`
}

// loadStyleSheet parses a YAML style sheet from path.
func loadStyleSheet(path string) (*styleSheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read style sheet %s: %w", path, err)
	}

	var sheet styleSheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("failed to parse style sheet %s: %w", path, err)
	}
	return &sheet, nil
}

// apply overlays the sheet's set fields onto opts.
func (s *styleSheet) apply(opts *highlighter.RenderOptions) {
	if s == nil {
		return
	}
	if s.HighlightClass != "" {
		opts.HighlightClass = s.HighlightClass
	}
	if len(s.HighlightStyle) > 0 {
		opts.HighlightStyle = s.HighlightStyle
	}
	if s.ActiveClass != "" {
		opts.ActiveClass = s.ActiveClass
	}
	if len(s.ActiveStyle) > 0 {
		opts.ActiveStyle = s.ActiveStyle
	}
	if s.Active != nil {
		opts.ActiveIndex = s.Active
	}
}
