// Copyright 2024-2026 Aiku AI

// Command flatmark converts Markdown-style chat messages into the flat tag
// markup used by transports that forbid nested formatting.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// These are filled at build time with -ldflags.
var (
	Tag       = "unknown"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var flagVerbose bool

var rootCmd = &cobra.Command{
	Use:   "flatmark",
	Short: "Convert chat markdown into flat, non-nesting tag markup",
	Long: `flatmark converts Markdown-style chat messages into the flat markup
accepted by transports that understand only <b>, <i>, <code> and <pre>
and reject nested formatting tags.

Usage:
  flatmark convert [text] [flags]`,
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", Tag, Commit, BuildTime)
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
