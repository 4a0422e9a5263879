// Package commands provides a central registry of hlw CLI commands.
// This registry is the single source of truth for command metadata,
// used to keep Cobra help text consistent.
package commands

// Meta defines metadata for a CLI command.
type Meta struct {
	Name        string     // Command name (e.g., "mark", "chunks")
	Description string     // Short description
	LongDesc    string     // Long description (for --help)
	Args        []ArgMeta  // Positional arguments
	Flags       []FlagMeta // Command flags
	Examples    []string   // Usage examples
}

// ArgMeta defines a positional argument.
type ArgMeta struct {
	Name        string // Argument name
	Description string // Description
	Required    bool   // Is this argument required?
}

// FlagMeta defines a command flag.
type FlagMeta struct {
	Name        string // Flag name (e.g., "file", "active")
	Short       string // Short flag (e.g., "f" for -f)
	Description string // Description
	Default     string // Default value
}

// Registry holds all registered commands.
var Registry = map[string]Meta{
	"mark": {
		Name:        "mark",
		Description: "Highlight search terms in text",
		LongDesc: `Reads text from files or stdin, finds every occurrence of the given
search terms, and prints the text with matches highlighted.

Terms are matched case-insensitively as literal text by default. Use
--regex to treat terms as regular expression patterns, --case-sensitive
to respect letter case, and --strip-accents to match across diacritics.

Output is ANSI-styled for terminals. Use --html for a single <span>
container with <mark> elements carrying class, style, and match-ordinal
attributes, or --json for the chunk data itself.`,
		Args: []ArgMeta{
			{Name: "term", Description: "Search term (repeatable)", Required: true},
		},
		Flags: []FlagMeta{
			{Name: "file", Short: "f", Description: "Input file (repeatable; stdin if omitted)"},
			{Name: "regex", Description: "Treat terms as regular expressions"},
			{Name: "case-sensitive", Description: "Match letter case exactly"},
			{Name: "strip-accents", Description: "Ignore diacritics when matching"},
			{Name: "markdown", Description: "Match only in markdown prose, skipping code"},
			{Name: "html", Description: "Emit HTML instead of ANSI output"},
			{Name: "active", Description: "Ordinal of the active highlight", Default: "-1"},
			{Name: "style", Description: "YAML style sheet for HTML output"},
		},
		Examples: []string{
			`hlw mark fox -f fable.txt`,
			`cat notes.md | hlw mark todo fixme --markdown`,
			`hlw mark "f.x" --regex --html -f fable.txt`,
		},
	},
	"chunks": {
		Name:        "chunks",
		Description: "Show the chunk partition for search terms",
		LongDesc: `Prints the ordered chunk partition computed for the given terms as
JSON: every byte of the input is covered exactly once, matched spans are
flagged, and overlapping or touching matches are merged. Useful for
debugging matching behavior and for piping into other tools.`,
		Args: []ArgMeta{
			{Name: "term", Description: "Search term (repeatable)", Required: true},
		},
		Flags: []FlagMeta{
			{Name: "file", Short: "f", Description: "Input file (repeatable; stdin if omitted)"},
			{Name: "regex", Description: "Treat terms as regular expressions"},
			{Name: "case-sensitive", Description: "Match letter case exactly"},
			{Name: "strip-accents", Description: "Ignore diacritics when matching"},
			{Name: "markdown", Description: "Match only in markdown prose, skipping code"},
		},
		Examples: []string{
			`hlw chunks fox -f fable.txt`,
		},
	},
	"docs": {
		Name:        "docs",
		Description: "Show the built-in guide",
		LongDesc: `Renders the bundled guide. Output is formatted for the terminal when
stdout is a TTY, raw markdown otherwise.`,
	},
	"version": {
		Name:        "version",
		Description: "Show version information",
	},
}

// GetCommandMeta returns the metadata for a command.
func GetCommandMeta(name string) (Meta, bool) {
	meta, ok := Registry[name]
	return meta, ok
}

// AllCommandNames returns all registered command names.
func AllCommandNames() []string {
	var names []string
	for name := range Registry {
		names = append(names, name)
	}
	return names
}
