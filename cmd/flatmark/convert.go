// Copyright 2024-2026 Aiku AI

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aiku/flatmark/pkg/flatfmt"
)

var (
	flagConfig string
	flagInput  string
)

var convertCmd = &cobra.Command{
	Use:   "convert [text]",
	Short: "Convert markdown text to flat tag markup",
	Long: `Convert parses the given markdown text and prints the flat tag markup
on stdout. Text is taken from the arguments, from --input, or from stdin.

Examples:
  flatmark convert "**hello** world"
  flatmark convert --input message.md
  echo "*emphasis*" | flatmark convert
  flatmark convert --config tags.yaml "**hello**"`,
	Args: cobra.ArbitraryArgs,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "YAML file with tag pair overrides")
	convertCmd.Flags().StringVarP(&flagInput, "input", "i", "", "Read markdown from a file instead of arguments")
}

func runConvert(cmd *cobra.Command, args []string) error {
	log := newLogger()

	conv := flatfmt.New()
	if flagConfig != "" {
		data, err := os.ReadFile(flagConfig)
		if err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
		var cfg flatfmt.Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
		conv, err = cfg.Converter()
		if err != nil {
			return fmt.Errorf("building converter: %w", err)
		}
		log.Debug().Str("path", flagConfig).Int("overrides", len(cfg.Tags)).Msg("Loaded tag overrides")
	}

	text, err := readInput(args)
	if err != nil {
		return err
	}
	log.Debug().Int("bytes", len(text)).Msg("Converting message")

	fmt.Println(conv.Convert(strings.TrimSuffix(text, "\n")))
	return nil
}

// readInput resolves the message text: --input file first, then arguments,
// then stdin.
func readInput(args []string) (string, error) {
	if flagInput != "" {
		data, err := os.ReadFile(flagInput)
		if err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return string(data), nil
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}
