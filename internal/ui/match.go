package ui

import (
	"strings"

	highlighter "github.com/kirklin/headless-highlighter"
)

// RenderMatches renders a TextChunk sequence for the terminal: highlighted
// chunks get the accent style, the active highlight gets the bold/reverse
// accent, everything else passes through unstyled.
func RenderMatches(chunks []highlighter.TextChunk, activeIndex *int) string {
	var b strings.Builder
	for _, tc := range chunks {
		if tc.Attrs == nil {
			b.WriteString(tc.Text)
			continue
		}
		if activeIndex != nil && tc.Attrs.HighlightIndex == *activeIndex {
			b.WriteString(AccentBold.Render(tc.Text))
		} else {
			b.WriteString(Accent.Render(tc.Text))
		}
	}
	return b.String()
}
