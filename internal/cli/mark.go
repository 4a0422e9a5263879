package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	highlighter "github.com/kirklin/headless-highlighter"
	"github.com/kirklin/headless-highlighter/internal/commands"
	"github.com/kirklin/headless-highlighter/internal/ui"
)

// markWorkers caps concurrent file processing.
const markWorkers = 4

var (
	markFlags     matchFlags
	markHTML      bool
	markActive    int
	markStylePath string
)

// markResult is the per-input outcome, in input order.
type markResult struct {
	File    string              `json:"file"`
	Matches int                 `json:"matches"`
	Output  string              `json:"output,omitempty"`
	Chunks  []highlighter.Chunk `json:"chunks,omitempty"`
}

var markCmd = &cobra.Command{
	Use:   "mark <term>...",
	Short: commands.Registry["mark"].Description,
	Long:  commands.Registry["mark"].LongDesc,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputs, err := gatherInputs(markFlags.files)
		if err != nil {
			return handleError(ErrFileReadError, err, "Check that the input files exist and are readable")
		}

		ropts, err := markRenderOptions()
		if err != nil {
			return handleError(ErrStyleInvalid, err, "Check the --style YAML file")
		}

		results := make([]markResult, len(inputs))
		g := new(errgroup.Group)
		g.SetLimit(markWorkers)
		for i, in := range inputs {
			g.Go(func() error {
				results[i] = markOne(cmd, in, args, ropts)
				return nil
			})
		}
		// Workers are pure; Wait only synchronizes.
		_ = g.Wait()

		total := 0
		for _, r := range results {
			total += r.Matches
		}

		if jsonOutput {
			outputSuccess(results, &Meta{Count: total})
			return nil
		}

		multi := len(results) > 1
		for i, r := range results {
			if multi {
				if i > 0 {
					fmt.Println()
				}
				fmt.Printf("%s %s\n", ui.FileName(r.File), ui.Count(r.Matches, "match", "matches"))
			}
			fmt.Print(r.Output)
			if r.Output == "" || r.Output[len(r.Output)-1] != '\n' {
				fmt.Println()
			}
		}
		return nil
	},
}

// markOne computes the chunk partition for one input and renders it in the
// selected output mode.
func markOne(cmd *cobra.Command, in input, terms []string, ropts highlighter.RenderOptions) markResult {
	opts := markFlags.options(cmd, in.Text)
	chunks := highlighter.FindChunks(in.Text, terms, opts)

	matches := 0
	for _, c := range chunks {
		if c.Highlight {
			matches++
		}
	}

	result := markResult{File: in.Name, Matches: matches}
	switch {
	case jsonOutput:
		result.Chunks = chunks
	case markHTML:
		result.Output = highlighter.Render(in.Text, chunks, ropts).HTML()
	default:
		tcs := highlighter.TextChunks(in.Text, chunks, ropts)
		result.Output = ui.RenderMatches(tcs, ropts.ActiveIndex)
	}
	return result
}

// markRenderOptions layers config defaults, the optional style sheet, and
// the --active flag into the adapter options.
func markRenderOptions() (highlighter.RenderOptions, error) {
	render := getConfig().Render
	ropts := highlighter.RenderOptions{
		HighlightClass: render.HighlightClass,
		ActiveClass:    render.ActiveClass,
	}

	if markStylePath != "" {
		sheet, err := loadStyleSheet(markStylePath)
		if err != nil {
			return ropts, err
		}
		sheet.apply(&ropts)
	}

	if markActive >= 0 {
		active := markActive
		ropts.ActiveIndex = &active
	}
	return ropts, nil
}

func init() {
	markFlags.register(markCmd)
	markCmd.Flags().BoolVar(&markHTML, "html", false, "Emit HTML instead of ANSI output")
	markCmd.Flags().IntVar(&markActive, "active", -1, "Ordinal of the active highlight")
	markCmd.Flags().StringVar(&markStylePath, "style", "", "YAML style sheet for HTML output")
	rootCmd.AddCommand(markCmd)
}
