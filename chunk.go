// Package highlighter partitions text into matched and unmatched chunks for
// a given set of search terms, so callers can render matches with distinct
// styling. The finder is pure and headless: it knows nothing about
// presentation, and the rendering adapter knows nothing about matching.
package highlighter

// Chunk is a half-open byte interval [Start, End) over the original text,
// flagged as a match or a gap.
type Chunk struct {
	Start     int  `json:"start"`
	End       int  `json:"end"`
	Highlight bool `json:"highlight"`
}

// Len returns the byte length of the chunk.
func (c Chunk) Len() int { return c.End - c.Start }

// FindMatchesFunc replaces the default matching strategy. It returns match
// intervals only (Highlight is implied); FindChunks normalizes the result —
// clamping, sorting, merging, and filling gaps — so the output sequence
// always satisfies the chunk invariants even if the override misbehaves.
type FindMatchesFunc func(text string, terms []string, opts Options) []Chunk

// Options configures matching.
type Options struct {
	// CaseSensitive makes term comparison respect letter case.
	CaseSensitive bool

	// AutoEscape treats each term as literal text, escaping regexp
	// metacharacters before matching. When false, terms are used as raw
	// patterns; terms that fail to compile are skipped.
	AutoEscape bool

	// Sanitize is applied to the haystack and to each term before matching.
	// Reported offsets are positions in the sanitized haystack, so they are
	// only valid against the original text when the sanitizer preserves byte
	// offsets. A length-changing sanitizer (see StripDiacritics) silently
	// misaligns highlights; this is a documented limitation.
	Sanitize func(string) string

	// FindMatches overrides the default matching strategy entirely.
	FindMatches FindMatchesFunc
}
