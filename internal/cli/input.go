package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// input is one body of text to match against.
type input struct {
	Name string // file path, or "stdin"
	Text string
}

// inputStdinIsTerminal is swapped in tests.
var inputStdinIsTerminal = func() bool {
	return isatty.IsTerminal(os.Stdin.Fd())
}

// gatherInputs reads the given files, or stdin when no files are named.
func gatherInputs(files []string) ([]input, error) {
	if len(files) == 0 {
		if inputStdinIsTerminal() {
			return nil, fmt.Errorf("no input: pass --file or pipe text on stdin")
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return []input{{Name: "stdin", Text: string(data)}}, nil
	}

	inputs := make([]input, 0, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		inputs = append(inputs, input{Name: path, Text: string(data)})
	}
	return inputs, nil
}
