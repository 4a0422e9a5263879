package highlighter

import (
	"html"
	"sort"
	"strconv"
	"strings"
)

// HTML serializes the span tree as a single container element: unhighlighted
// spans become escaped text nodes, highlighted spans become <mark> elements
// carrying the computed class, inline style, key, and highlight ordinal.
func (o *Output) HTML() string {
	var b strings.Builder
	b.WriteString("<span>")
	for _, span := range o.Spans {
		if span.Attrs == nil {
			b.WriteString(html.EscapeString(span.Text))
			continue
		}
		b.WriteString("<mark")
		if class := strings.TrimSpace(span.Attrs.Class); class != "" {
			writeAttr(&b, "class", class)
		}
		if style := inlineStyle(span.Attrs.Style); style != "" {
			writeAttr(&b, "style", style)
		}
		writeAttr(&b, "data-key", span.Attrs.Key)
		writeAttr(&b, "data-highlight-index", strconv.Itoa(span.Attrs.HighlightIndex))
		b.WriteString(">")
		b.WriteString(html.EscapeString(span.Text))
		b.WriteString("</mark>")
	}
	b.WriteString("</span>")
	return b.String()
}

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteString(" ")
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(value))
	b.WriteString(`"`)
}

// inlineStyle renders a style map as "k: v; ..." with sorted keys so output
// is deterministic.
func inlineStyle(style map[string]string) string {
	if len(style) == 0 {
		return ""
	}
	keys := make([]string, 0, len(style))
	for k := range style {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+style[k])
	}
	return strings.Join(parts, "; ")
}
