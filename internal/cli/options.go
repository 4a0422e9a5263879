package cli

import (
	"github.com/spf13/cobra"

	highlighter "github.com/kirklin/headless-highlighter"
	"github.com/kirklin/headless-highlighter/internal/mdtext"
)

// matchFlags holds the matching flags shared by mark and chunks.
type matchFlags struct {
	files         []string
	regex         bool
	caseSensitive bool
	stripAccents  bool
	markdown      bool
}

// register adds the shared matching flags to cmd.
func (f *matchFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.files, "file", "f", nil, "Input file (repeatable; stdin if omitted)")
	cmd.Flags().BoolVar(&f.regex, "regex", false, "Treat terms as regular expressions")
	cmd.Flags().BoolVar(&f.caseSensitive, "case-sensitive", false, "Match letter case exactly")
	cmd.Flags().BoolVar(&f.stripAccents, "strip-accents", false, "Ignore diacritics when matching")
	cmd.Flags().BoolVar(&f.markdown, "markdown", false, "Match only in markdown prose, skipping code")
}

// options builds the matcher options for one input, layering config defaults
// under the flags actually set on cmd.
func (f *matchFlags) options(cmd *cobra.Command, text string) highlighter.Options {
	match := getConfig().Match

	regex := match.Regex
	if cmd.Flags().Changed("regex") {
		regex = f.regex
	}
	caseSensitive := match.CaseSensitive
	if cmd.Flags().Changed("case-sensitive") {
		caseSensitive = f.caseSensitive
	}
	stripAccents := match.StripAccents
	if cmd.Flags().Changed("strip-accents") {
		stripAccents = f.stripAccents
	}

	opts := highlighter.Options{
		CaseSensitive: caseSensitive,
		AutoEscape:    !regex,
	}
	if stripAccents {
		opts.Sanitize = highlighter.StripDiacritics
	}
	if f.markdown {
		opts.FindMatches = mdtext.FindMatches(mdtext.ProseSegments([]byte(text)))
	}
	return opts
}
