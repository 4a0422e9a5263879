package docs

import "embed"

// FS contains long-form Markdown docs bundled with the hlw binary.
//
//go:embed guide.md
var FS embed.FS
