package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	highlighter "github.com/kirklin/headless-highlighter"
	"github.com/kirklin/headless-highlighter/internal/commands"
)

var chunksFlags matchFlags

// chunksResult pairs an input with its partition.
type chunksResult struct {
	File   string              `json:"file"`
	Chunks []highlighter.Chunk `json:"chunks"`
}

var chunksCmd = &cobra.Command{
	Use:   "chunks <term>...",
	Short: commands.Registry["chunks"].Description,
	Long:  commands.Registry["chunks"].LongDesc,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputs, err := gatherInputs(chunksFlags.files)
		if err != nil {
			return handleError(ErrFileReadError, err, "Check that the input files exist and are readable")
		}

		results := make([]chunksResult, len(inputs))
		for i, in := range inputs {
			opts := chunksFlags.options(cmd, in.Text)
			results[i] = chunksResult{
				File:   in.Name,
				Chunks: highlighter.FindChunks(in.Text, args, opts),
			}
		}

		if jsonOutput {
			outputSuccess(results, &Meta{Count: len(results)})
			return nil
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if len(results) == 1 {
			return enc.Encode(results[0].Chunks)
		}
		return enc.Encode(results)
	},
}

func init() {
	chunksFlags.register(chunksCmd)
	rootCmd.AddCommand(chunksCmd)
}
