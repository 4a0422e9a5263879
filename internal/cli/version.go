package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kirklin/headless-highlighter/internal/buildinfo"
	"github.com/kirklin/headless-highlighter/internal/commands"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: commands.Registry["version"].Description,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		version := buildinfo.Version
		if version == "" {
			version = "dev"
		}

		if jsonOutput {
			outputSuccess(map[string]string{
				"version": version,
				"commit":  buildinfo.Commit,
				"date":    buildinfo.Date,
			}, nil)
			return
		}

		fmt.Printf("hlw %s\n", version)
		if buildinfo.Commit != "" {
			fmt.Printf("commit: %s\n", buildinfo.Commit)
		}
		if buildinfo.Date != "" {
			fmt.Printf("built:  %s\n", buildinfo.Date)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
