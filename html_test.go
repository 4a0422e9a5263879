package highlighter

import (
	"strings"
	"testing"
)

func TestOutputHTML(t *testing.T) {
	text := "say hello"
	chunks := FindChunks(text, []string{"hello"}, Options{})

	rendered := Render(text, chunks, RenderOptions{
		HighlightClass: "hl",
		HighlightStyle: map[string]string{"color": "black", "background": "yellow"},
	})

	expected := `<span>say <mark class="hl" style="background: yellow; color: black" data-key="chunk-1" data-highlight-index="0">hello</mark></span>`
	if got := rendered.HTML(); got != expected {
		t.Fatalf("expected %q, got %q", expected, got)
	}
}

func TestOutputHTMLEscaping(t *testing.T) {
	text := "a <b> & c"
	chunks := FindChunks(text, []string{"<b>"}, Options{AutoEscape: true})

	got := Render(text, chunks, RenderOptions{}).HTML()
	if strings.Contains(got, "<b>") {
		t.Fatalf("unescaped markup in output: %q", got)
	}
	if !strings.Contains(got, "&lt;b&gt;") {
		t.Fatalf("expected escaped match text, got %q", got)
	}
	if !strings.Contains(got, "&amp; c") {
		t.Fatalf("expected escaped plain text, got %q", got)
	}
}

func TestOutputHTMLNoAttrsWhenUnstyled(t *testing.T) {
	text := "say hello"
	chunks := FindChunks(text, []string{"hello"}, Options{})

	got := Render(text, chunks, RenderOptions{}).HTML()
	expected := `<span>say <mark data-key="chunk-1" data-highlight-index="0">hello</mark></span>`
	if got != expected {
		t.Fatalf("expected %q, got %q", expected, got)
	}
}
