package highlighter

import (
	"regexp"
	"sort"
	"strings"
)

// FindChunks partitions text into an ordered, contiguous sequence of chunks
// covering every byte exactly once, with match intervals merged into maximal
// highlighted runs. An empty text yields nil; when no term produces a match
// the whole text is returned as a single unhighlighted chunk.
func FindChunks(text string, terms []string, opts Options) []Chunk {
	if text == "" {
		return nil
	}

	find := opts.FindMatches
	if find == nil {
		find = DefaultFindMatches
	}

	matches := combineChunks(find(text, terms, opts), len(text))
	return fillInChunks(matches, len(text))
}

// DefaultFindMatches scans the (sanitized) haystack once per term and returns
// the raw match intervals, unsorted and unmerged. It is exported so custom
// FindMatches strategies can delegate to it, e.g. to match within selected
// sub-ranges of a document.
func DefaultFindMatches(text string, terms []string, opts Options) []Chunk {
	haystack := text
	if opts.Sanitize != nil {
		haystack = opts.Sanitize(text)
	}

	var matches []Chunk
	for _, term := range terms {
		if strings.TrimSpace(term) == "" {
			continue
		}
		if opts.Sanitize != nil {
			term = opts.Sanitize(term)
		}

		pattern := term
		if opts.AutoEscape {
			pattern = regexp.QuoteMeta(pattern)
		}
		if !opts.CaseSensitive {
			pattern = "(?i)" + pattern
		}

		re, err := regexp.Compile(pattern)
		if err != nil {
			// Raw pattern from the caller that doesn't compile; skip the
			// term rather than failing the whole partition.
			continue
		}

		for _, loc := range re.FindAllStringIndex(haystack, -1) {
			if loc[0] == loc[1] {
				continue // zero-width match
			}
			matches = append(matches, Chunk{Start: loc[0], End: loc[1], Highlight: true})
		}
	}
	return matches
}

// combineChunks normalizes raw match intervals: clamps them to [0, textLen],
// drops empty or inverted ones, sorts by start ascending with longer matches
// first on ties, and merges overlapping or touching intervals into maximal
// highlighted runs.
func combineChunks(matches []Chunk, textLen int) []Chunk {
	normalized := make([]Chunk, 0, len(matches))
	for _, m := range matches {
		if m.Start < 0 {
			m.Start = 0
		}
		if m.End > textLen {
			m.End = textLen
		}
		if m.End <= m.Start {
			continue
		}
		m.Highlight = true
		normalized = append(normalized, m)
	}
	if len(normalized) == 0 {
		return nil
	}

	sort.Slice(normalized, func(i, j int) bool {
		if normalized[i].Start != normalized[j].Start {
			return normalized[i].Start < normalized[j].Start
		}
		return normalized[i].End > normalized[j].End
	})

	merged := []Chunk{normalized[0]}
	for _, m := range normalized[1:] {
		last := &merged[len(merged)-1]
		if m.Start <= last.End {
			if m.End > last.End {
				last.End = m.End
			}
		} else {
			merged = append(merged, m)
		}
	}
	return merged
}

// fillInChunks interleaves merged highlighted runs with the unhighlighted
// gaps between, before, and after them, producing full coverage of
// [0, textLen). Zero-length chunks are never emitted.
func fillInChunks(matches []Chunk, textLen int) []Chunk {
	if textLen == 0 {
		return nil
	}
	if len(matches) == 0 {
		return []Chunk{{Start: 0, End: textLen}}
	}

	chunks := make([]Chunk, 0, len(matches)*2+1)
	pos := 0
	for _, m := range matches {
		if m.Start > pos {
			chunks = append(chunks, Chunk{Start: pos, End: m.Start})
		}
		chunks = append(chunks, m)
		pos = m.End
	}
	if pos < textLen {
		chunks = append(chunks, Chunk{Start: pos, End: textLen})
	}
	return chunks
}
