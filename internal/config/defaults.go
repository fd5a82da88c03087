package config

import (
	_ "embed"

	"github.com/vovakirdan/speedtype/internal/core"
)

//go:embed defaults/speedtype.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration.
// It matches defaults/speedtype.yaml.
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			MaxDelta:   0.1,
			TickRate:   60,
			Background: core.ColorBackground,
			Foreground: core.ColorWhite,
			Panel:      core.ColorWhite,
			PanelAlpha: 0.05,
		},
		Round: RoundConfig{
			MaxWords:        10,
			TransitionDelay: 0.25,
			StartLevel:      0,
			Levels: []LevelStep{
				{AtWord: 2, Level: 1},
				{AtWord: 5, Level: 2},
				{AtWord: 8, Level: 3},
			},
		},
		Score: ScoreConfig{
			MaxPoints:   1200,
			TimeLimitMs: 60000,
		},
		Countdown: CountdownConfig{
			From: 3,
			To:   1,
			Tint: core.ColorWhite,
		},
		Marquee: MarqueeConfig{
			NextCharacterDelay: 0.02,
			NextBounceDelay:    2,
			BounceHeight:       1,
			BounceSpeed:        0.25,
			FillSpeed:          1.5,
			Fill:               core.ColorGray,
			Highlight:          core.ColorHighlight,
		},
		Word: WordConfig{
			CharacterSpacing: 1,
			BounceHeight:     0.5,
			BounceSpeed:      1,
			ShakeHeight:      1,
			IncorrectDecay:   0.25,
			Fill:             core.ColorWhite,
			IncorrectFill:    core.ColorHighlight,
			Caret:            "^",
			CaretOffset:      1,
			CaretAmplitude:   0.5,
		},
		Welcome: WelcomeConfig{
			Title:  "SPEED TYPING",
			Word:   "start",
			Footer: "How fast can you type?\nStart by typing \"start\"",
			Hint:   "(esc to quit)",
			Reveal: 1.618,
		},
		GameOver: GameOverConfig{
			Title:  "WELL DONE!",
			Word:   "restart",
			Reveal: 0.809,
		},
		Layout: LayoutConfig{
			TitleOffset:  -4,
			FooterOffset: 3,
			HintOffset:   6,
			StatsOffset:  2,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
