// Package main is the entry point for the hlw CLI tool.
package main

import (
	"os"

	"github.com/kirklin/headless-highlighter/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
