// Package mdtext extracts the prose byte ranges of a markdown document so
// matching can be restricted to text the reader actually sees, skipping code
// spans, code blocks, and raw HTML.
package mdtext

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	highlighter "github.com/kirklin/headless-highlighter"
)

// Segment is a half-open byte range [Start, End) into the markdown source.
type Segment struct {
	Start int
	End   int
}

// ProseSegments parses source as markdown and returns the byte ranges of its
// prose text nodes, in document order. Code spans, code blocks, and raw HTML
// are excluded.
func ProseSegments(source []byte) []Segment {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	var segments []Segment
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindCodeSpan, ast.KindRawHTML, ast.KindHTMLBlock:
			return ast.WalkSkipChildren, nil
		case ast.KindText:
			seg := n.(*ast.Text).Segment
			if seg.Len() > 0 {
				segments = append(segments, Segment{Start: seg.Start, End: seg.Stop})
			}
		}
		return ast.WalkContinue, nil
	})
	return segments
}

// FindMatches returns a matching strategy that runs the default matcher
// inside each prose segment only, reporting offsets against the full source.
// Matches can never land inside code or markup.
func FindMatches(segments []Segment) highlighter.FindMatchesFunc {
	return func(text string, terms []string, opts highlighter.Options) []highlighter.Chunk {
		opts.FindMatches = nil

		var matches []highlighter.Chunk
		for _, seg := range segments {
			if seg.Start < 0 || seg.End > len(text) || seg.End <= seg.Start {
				continue
			}
			for _, m := range highlighter.DefaultFindMatches(text[seg.Start:seg.End], terms, opts) {
				matches = append(matches, highlighter.Chunk{
					Start:     seg.Start + m.Start,
					End:       seg.Start + m.End,
					Highlight: true,
				})
			}
		}
		return matches
	}
}
