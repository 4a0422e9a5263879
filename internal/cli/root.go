// Package cli implements the command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kirklin/headless-highlighter/internal/config"
	"github.com/kirklin/headless-highlighter/internal/ui"
)

var (
	// Global flags
	configPath string

	// Resolved values
	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "hlw",
	Short: "hlw - highlight search terms in text",
	Long: `hlw finds occurrences of search terms in text and prints the text with
matches highlighted, for terminals (ANSI) or web pages (HTML).

The underlying engine partitions the input into matched and unmatched
chunks with overlapping matches merged, so every byte is covered exactly
once. The same partition backs the ANSI, HTML, and JSON output modes.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Help and completion don't need config.
		switch cmd.Name() {
		case "completion", "help":
			return nil
		}
		if cmd.Parent() != nil && cmd.Parent().Name() == "completion" {
			return nil
		}

		var err error
		if configPath != "" {
			cfg, err = config.LoadFrom(configPath)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ui.ConfigureTheme(cfg.UI.Accent)
		ui.ConfigureMarkdownCodeTheme(cfg.UI.CodeTheme)
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	syncRegistryMetadata(rootCmd)
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for agent/script use)")
}

// getConfig returns the loaded config.
func getConfig() *config.Config {
	if cfg == nil {
		return &config.Config{}
	}
	return cfg
}
