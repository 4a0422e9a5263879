package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGatherInputsFiles(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.txt")
	second := filepath.Join(dir, "b.txt")
	if err := os.WriteFile(first, []byte("alpha"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if err := os.WriteFile(second, []byte("beta"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	inputs, err := gatherInputs([]string{first, second})
	if err != nil {
		t.Fatalf("failed to gather inputs: %v", err)
	}
	if len(inputs) != 2 {
		t.Fatalf("expected 2 inputs, got %d", len(inputs))
	}
	if inputs[0].Name != first || inputs[0].Text != "alpha" {
		t.Fatalf("unexpected first input: %+v", inputs[0])
	}
	if inputs[1].Name != second || inputs[1].Text != "beta" {
		t.Fatalf("unexpected second input: %+v", inputs[1])
	}
}

func TestGatherInputsMissingFile(t *testing.T) {
	if _, err := gatherInputs([]string{filepath.Join(t.TempDir(), "missing.txt")}); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestGatherInputsNoStdinTTY(t *testing.T) {
	orig := inputStdinIsTerminal
	t.Cleanup(func() { inputStdinIsTerminal = orig })
	inputStdinIsTerminal = func() bool { return true }

	if _, err := gatherInputs(nil); err == nil {
		t.Fatalf("expected error when stdin is a terminal and no files given")
	}
}
