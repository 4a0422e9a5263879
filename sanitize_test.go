package highlighter

import (
	"reflect"
	"testing"
)

func TestStripDiacritics(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain ascii", input: "hello", expected: "hello"},
		{name: "acute accent", input: "café", expected: "cafe"},
		{name: "umlaut", input: "über", expected: "uber"},
		{name: "mixed", input: "naïve résumé", expected: "naive resume"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := StripDiacritics(tt.input); got != tt.expected {
				t.Fatalf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFindChunksStripDiacriticsTerms(t *testing.T) {
	// ASCII haystack with accented terms: sanitize keeps offsets exact.
	got := FindChunks("cafe con leche", []string{"café"}, Options{
		AutoEscape: true,
		Sanitize:   StripDiacritics,
	})
	expected := []Chunk{
		{Start: 0, End: 4, Highlight: true},
		{Start: 4, End: 14},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected %+v, got %+v", expected, got)
	}
}
