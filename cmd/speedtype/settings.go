package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/speedtype/internal/config"
	"github.com/vovakirdan/speedtype/internal/core"
	"github.com/vovakirdan/speedtype/internal/words"
)

var (
	flagConfig     string
	flagWords      string
	flagDifficulty string
)

// addSettingsFlags registers the flags every game-running command shares.
func addSettingsFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
	cmd.Flags().StringVar(&flagWords, "words", "", "Path to a word list (.yaml leveled corpus or plain text)")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// settings is everything a game is built from.
type settings struct {
	cfg      config.Config
	source   string
	corpus   *words.Corpus
	tickRate int
}

// loadSettings resolves configuration, difficulty preset and corpus from flags.
func loadSettings(cmd *cobra.Command) (settings, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return settings{}, err
	}
	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return settings{}, err
	}
	if err := cfg.Validate(); err != nil {
		return settings{}, err
	}

	corpus, err := words.Load(flagWords)
	if err != nil {
		return settings{}, err
	}

	// --fps wins over the configured rate only when given explicitly
	tickRate := cfg.Game.TickRate
	if cmd.Flags().Changed("fps") || tickRate <= 0 {
		tickRate = flagFPS
	}

	return settings{cfg: cfg, source: source, corpus: corpus, tickRate: tickRate}, nil
}

// newRand returns the word RNG for --seed.
func newRand() *rand.Rand {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// defaultPlayer names local results after the OS user.
func defaultPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return core.DefaultConfig().Player
}
