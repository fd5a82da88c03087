package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/speedtype/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration a round would use, after the search order
(--config, ~/.speedtype/config.yaml, ./configs/speedtype.yaml, embedded
defaults) and the difficulty preset are applied.

The output is a complete config file and can be used as a starting point:

  speedtype config > ~/.speedtype/config.yaml
  speedtype config --format toml > speedtype.toml`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		fail("%v", err)
	}

	var format config.Format
	switch flagFormat {
	case "yaml", "yml":
		format = config.FormatYAML
	case "toml":
		format = config.FormatTOML
	default:
		fail("unknown format %q (expected yaml or toml)", flagFormat)
	}

	data, err := config.Encode(cfg, format)
	if err != nil {
		fail("%v", err)
	}
	fmt.Fprintf(os.Stderr, "# source: %s\n", source)
	os.Stdout.Write(data)
}
