package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	builtindocs "github.com/kirklin/headless-highlighter/docs"
	"github.com/kirklin/headless-highlighter/internal/commands"
	"github.com/kirklin/headless-highlighter/internal/ui"
)

var (
	docsStdoutIsTerminal = func() bool { return isatty.IsTerminal(os.Stdout.Fd()) }
	docsMarkdownRender   = ui.RenderMarkdown
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: commands.Registry["docs"].Description,
	Long:  commands.Registry["docs"].LongDesc,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := builtindocs.FS.ReadFile("guide.md")
		if err != nil {
			return fmt.Errorf("failed to read bundled guide: %w", err)
		}

		if jsonOutput {
			outputSuccess(map[string]interface{}{"markdown": string(content)}, nil)
			return nil
		}

		if !docsStdoutIsTerminal() {
			fmt.Print(string(content))
			return nil
		}

		display := ui.NewDisplayContext()
		rendered, err := docsMarkdownRender(string(content), display.TermWidth)
		if err != nil {
			// Fall back to raw markdown rather than failing.
			fmt.Print(string(content))
			return nil
		}
		fmt.Print(rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
