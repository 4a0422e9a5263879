package cli

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/kirklin/headless-highlighter/internal/config"
)

func newMatchCmd(t *testing.T) (*cobra.Command, *matchFlags) {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	var flags matchFlags
	flags.register(cmd)
	return cmd, &flags
}

func TestMatchFlagsDefaults(t *testing.T) {
	cmd, flags := newMatchCmd(t)

	opts := flags.options(cmd, "some text")
	if opts.CaseSensitive {
		t.Fatalf("expected case-insensitive default")
	}
	if !opts.AutoEscape {
		t.Fatalf("expected literal matching by default")
	}
	if opts.Sanitize != nil {
		t.Fatalf("expected no sanitizer by default")
	}
	if opts.FindMatches != nil {
		t.Fatalf("expected default matching strategy")
	}
}

func TestMatchFlagsOverrides(t *testing.T) {
	cmd, flags := newMatchCmd(t)
	for _, name := range []string{"regex", "case-sensitive", "strip-accents", "markdown"} {
		if err := cmd.Flags().Set(name, "true"); err != nil {
			t.Fatalf("failed to set %s: %v", name, err)
		}
	}

	opts := flags.options(cmd, "some `code` text")
	if !opts.CaseSensitive {
		t.Fatalf("expected case-sensitive matching")
	}
	if opts.AutoEscape {
		t.Fatalf("expected raw pattern matching with --regex")
	}
	if opts.Sanitize == nil {
		t.Fatalf("expected accent-stripping sanitizer")
	}
	if opts.FindMatches == nil {
		t.Fatalf("expected markdown prose matching strategy")
	}
}

func TestMatchFlagsConfigDefaults(t *testing.T) {
	origCfg := cfg
	t.Cleanup(func() { cfg = origCfg })
	cfg = &config.Config{
		Match: config.MatchConfig{CaseSensitive: true, Regex: true},
	}

	cmd, flags := newMatchCmd(t)

	opts := flags.options(cmd, "text")
	if !opts.CaseSensitive {
		t.Fatalf("expected case sensitivity from config")
	}
	if opts.AutoEscape {
		t.Fatalf("expected regex mode from config")
	}

	// An explicit flag beats the config.
	if err := cmd.Flags().Set("regex", "false"); err != nil {
		t.Fatalf("failed to set regex: %v", err)
	}
	opts = flags.options(cmd, "text")
	if !opts.AutoEscape {
		t.Fatalf("expected --regex=false to override config")
	}
}
