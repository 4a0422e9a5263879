package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/kirklin/headless-highlighter/internal/commands"
)

// syncRegistryMetadata overlays registry metadata onto the generated Cobra
// commands so help text has a single source of truth.
func syncRegistryMetadata(root *cobra.Command) {
	for _, cmd := range root.Commands() {
		meta, ok := commands.GetCommandMeta(cmd.Name())
		if !ok {
			continue
		}

		cmd.Short = meta.Description
		long := meta.LongDesc
		if long == "" {
			long = meta.Description
		}
		if len(meta.Examples) > 0 {
			var b strings.Builder
			b.WriteString(long)
			b.WriteString("\n\nExamples:\n")
			for _, ex := range meta.Examples {
				b.WriteString("  " + ex + "\n")
			}
			long = strings.TrimRight(b.String(), "\n")
		}
		cmd.Long = long
	}
}
