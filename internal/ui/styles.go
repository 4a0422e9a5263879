package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
// - Default (white/black): Primary text
// - Accent (soft amber #F59E0B): Highlighted matches
// - Muted (gray): Secondary info, file names, line numbers
// - No colored success/error/warning - use unicode symbols only

const defaultAccent = "#F59E0B"

var (
	// Accent style for highlighted matches
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))

	// AccentBold marks the active highlight
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent)).Bold(true).Reverse(true)

	// Muted style for secondary info, hints, file names
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().Bold(true)
)

// accentColor holds the configured accent, empty when styling is disabled or
// left at the default.
var accentColor string

// ConfigureTheme applies the user-configured accent color to the shared
// styles. Accepts ANSI codes ("0" to "255") or hex colors ("#RRGGBB");
// "none", "off", "default", and invalid values leave the default palette.
func ConfigureTheme(accent string) {
	color, ok := normalizeAccentColor(accent)
	if !ok {
		accentColor = ""
		Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))
		AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent)).Bold(true).Reverse(true)
		return
	}

	accentColor = color
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true).Reverse(true)
}

// AccentColor returns the configured accent color, if any.
func AccentColor() (string, bool) {
	if accentColor == "" {
		return "", false
	}
	return accentColor, true
}

// normalizeAccentColor validates an accent color value. Returns the
// normalized color and whether it is usable.
func normalizeAccentColor(value string) (string, bool) {
	value = strings.TrimSpace(value)
	switch value {
	case "", "none", "off", "default":
		return "", false
	}

	if strings.HasPrefix(value, "#") {
		hex := value[1:]
		if len(hex) == 3 {
			// Expand #abc to #aabbcc
			var b strings.Builder
			b.WriteByte('#')
			for i := 0; i < 3; i++ {
				b.WriteByte(hex[i])
				b.WriteByte(hex[i])
			}
			value = b.String()
			hex = value[1:]
		}
		if len(hex) != 6 {
			return "", false
		}
		if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
			return "", false
		}
		return strings.ToLower(value), true
	}

	if n, err := strconv.Atoi(value); err == nil {
		if n < 0 || n > 255 {
			return "", false
		}
		return strconv.Itoa(n), true
	}

	return "", false
}
