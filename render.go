package highlighter

import (
	"fmt"
	"strings"
)

// TextChunk pairs a chunk with its slice of the original text. Attrs is
// non-nil only for highlighted chunks.
type TextChunk struct {
	Chunk Chunk  `json:"chunk"`
	Text  string `json:"text"`
	Attrs *Attrs `json:"attrs,omitempty"`
}

// Attrs carries the presentation metadata for one highlighted chunk.
type Attrs struct {
	// Class is the space-joined class string. When the chunk is not the
	// active highlight the active segment is empty, leaving a trailing
	// separator; callers should trim before use.
	Class string `json:"class"`

	// Key is a stable per-invocation identifier, the chunk's ordinal
	// position in the full sequence.
	Key string `json:"key"`

	// Style is the merged inline style; active keys override highlight keys.
	Style map[string]string `json:"style,omitempty"`

	// HighlightIndex is the zero-based ordinal of this chunk among all
	// highlighted chunks, used to identify the active highlight.
	HighlightIndex int `json:"highlight_index"`
}

// RenderOptions configures the rendering adapter.
type RenderOptions struct {
	// HighlightClass is applied to every highlighted chunk.
	HighlightClass string

	// HighlightStyle is the inline style for highlighted chunks.
	HighlightStyle map[string]string

	// ActiveIndex selects the active highlight by HighlightIndex.
	// Nil means no highlight is active.
	ActiveIndex *int

	// ActiveClass and ActiveStyle are layered onto the active highlight.
	ActiveClass string
	ActiveStyle map[string]string

	// OnClick and OnHover are bound to each highlighted span in default
	// mode. They run only when the host invokes Span.Click or Span.Hover,
	// never during rendering.
	OnClick func(TextChunk)
	OnHover func(TextChunk)

	// Renderer switches the adapter to custom mode: it is invoked once with
	// the full TextChunk slice and its result is returned verbatim, with no
	// further wrapping.
	Renderer func([]TextChunk) string
}

// Rendered is the adapter's output: either the verbatim result of a custom
// Renderer, or the default-mode span tree.
type Rendered struct {
	Custom bool
	Markup string  // custom mode result
	Output *Output // default mode tree
}

// HTML serializes the rendered result. Custom-mode markup is returned as-is.
func (r Rendered) HTML() string {
	if r.Custom {
		return r.Markup
	}
	if r.Output == nil {
		return ""
	}
	return r.Output.HTML()
}

// Output is the default-mode container wrapping one span per chunk.
type Output struct {
	Spans []Span
}

// Span is one rendered chunk with its interaction handlers bound.
type Span struct {
	TextChunk

	onClick func(TextChunk)
	onHover func(TextChunk)
}

// Click invokes the bound click callback, if any. Hosts call this when the
// user activates the span.
func (s *Span) Click() {
	if s.onClick != nil {
		s.onClick(s.TextChunk)
	}
}

// Hover invokes the bound hover callback, if any.
func (s *Span) Hover() {
	if s.onHover != nil {
		s.onHover(s.TextChunk)
	}
}

// TextChunks derives the presentation-layer chunk slice from a chunk
// partition of text. Text is sliced from the original (pre-sanitize) string;
// the highlight ordinal is an explicit fold over the sequence.
func TextChunks(text string, chunks []Chunk, opts RenderOptions) []TextChunk {
	out := make([]TextChunk, 0, len(chunks))
	highlightIndex := 0
	for i, c := range chunks {
		tc := TextChunk{Chunk: c, Text: text[c.Start:c.End]}
		if c.Highlight {
			tc.Attrs = &Attrs{
				Class:          chunkClass(opts, highlightIndex),
				Key:            fmt.Sprintf("chunk-%d", i),
				Style:          chunkStyle(opts, highlightIndex),
				HighlightIndex: highlightIndex,
			}
			highlightIndex++
		}
		out = append(out, tc)
	}
	return out
}

// Render turns a chunk partition into renderable output. With a custom
// Renderer it dispatches the full TextChunk slice and returns the result
// verbatim; otherwise it builds the default span tree with handlers bound to
// each highlighted span.
func Render(text string, chunks []Chunk, opts RenderOptions) Rendered {
	tcs := TextChunks(text, chunks, opts)

	if opts.Renderer != nil {
		return Rendered{Custom: true, Markup: opts.Renderer(tcs)}
	}

	output := &Output{Spans: make([]Span, 0, len(tcs))}
	for _, tc := range tcs {
		span := Span{TextChunk: tc}
		if tc.Attrs != nil {
			span.onClick = opts.OnClick
			span.onHover = opts.OnHover
		}
		output.Spans = append(output.Spans, span)
	}
	return Rendered{Output: output}
}

func (o RenderOptions) isActive(highlightIndex int) bool {
	return o.ActiveIndex != nil && *o.ActiveIndex == highlightIndex
}

func chunkClass(opts RenderOptions, highlightIndex int) string {
	active := ""
	if opts.isActive(highlightIndex) {
		active = opts.ActiveClass
	}
	return strings.Join([]string{opts.HighlightClass, active}, " ")
}

func chunkStyle(opts RenderOptions, highlightIndex int) map[string]string {
	if len(opts.HighlightStyle) == 0 && (!opts.isActive(highlightIndex) || len(opts.ActiveStyle) == 0) {
		return nil
	}

	style := make(map[string]string, len(opts.HighlightStyle)+len(opts.ActiveStyle))
	for k, v := range opts.HighlightStyle {
		style[k] = v
	}
	if opts.isActive(highlightIndex) {
		for k, v := range opts.ActiveStyle {
			style[k] = v
		}
	}
	return style
}
