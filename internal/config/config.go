// Package config provides YAML/TOML game configuration loading, validation and
// difficulty presets for speedtype.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/speedtype/internal/core"
)

// Config contains every tunable of the game. Lengths are in terminal cells,
// durations in seconds unless the key says otherwise.
type Config struct {
	Game      GameConfig      `yaml:"game" toml:"game"`
	Round     RoundConfig     `yaml:"round" toml:"round"`
	Score     ScoreConfig     `yaml:"score" toml:"score"`
	Countdown CountdownConfig `yaml:"countdown" toml:"countdown"`
	Marquee   MarqueeConfig   `yaml:"marquee" toml:"marquee"`
	Word      WordConfig      `yaml:"word" toml:"word"`
	Welcome   WelcomeConfig   `yaml:"welcome" toml:"welcome"`
	GameOver  GameOverConfig  `yaml:"game_over" toml:"game_over"`
	Layout    LayoutConfig    `yaml:"layout" toml:"layout"`
}

// GameConfig holds frame loop settings.
type GameConfig struct {
	MaxDelta   float64    `yaml:"max_delta" toml:"max_delta"` // Upper bound for a frame delta
	TickRate   int        `yaml:"tick_rate" toml:"tick_rate"` // Frames per second
	Background core.Color `yaml:"background" toml:"background"`
	Foreground core.Color `yaml:"foreground" toml:"foreground"`
	Panel      core.Color `yaml:"panel" toml:"panel"`             // Progress bar and score backdrop
	PanelAlpha float64    `yaml:"panel_alpha" toml:"panel_alpha"` // Opacity of the panel over the background
}

// RoundConfig defines the length of a round and its level schedule.
type RoundConfig struct {
	MaxWords        int         `yaml:"max_words" toml:"max_words"`
	TransitionDelay float64     `yaml:"transition_delay" toml:"transition_delay"`
	StartLevel      int         `yaml:"start_level" toml:"start_level"`
	Levels          []LevelStep `yaml:"levels" toml:"levels"`
}

// LevelStep switches the corpus level once the word counter reaches AtWord.
type LevelStep struct {
	AtWord int `yaml:"at_word" toml:"at_word"`
	Level  int `yaml:"level" toml:"level"`
}

// ScoreConfig defines the score formula constants.
type ScoreConfig struct {
	MaxPoints   float64 `yaml:"max_points" toml:"max_points"`
	TimeLimitMs float64 `yaml:"time_limit_ms" toml:"time_limit_ms"`
}

// CountdownConfig defines the pre-round countdown.
type CountdownConfig struct {
	From int        `yaml:"from" toml:"from"`
	To   int        `yaml:"to" toml:"to"` // Last value shown
	Tint core.Color `yaml:"tint" toml:"tint"`
}

// MarqueeConfig defines the animated title text.
type MarqueeConfig struct {
	NextCharacterDelay float64    `yaml:"next_character_delay" toml:"next_character_delay"`
	NextBounceDelay    float64    `yaml:"next_bounce_delay" toml:"next_bounce_delay"`
	BounceHeight       float64    `yaml:"bounce_height" toml:"bounce_height"`
	BounceSpeed        float64    `yaml:"bounce_speed" toml:"bounce_speed"`
	FillSpeed          float64    `yaml:"fill_speed" toml:"fill_speed"`
	Fill               core.Color `yaml:"fill" toml:"fill"`
	Highlight          core.Color `yaml:"highlight" toml:"highlight"`
}

// WordConfig defines the typed word widget.
type WordConfig struct {
	CharacterSpacing float64    `yaml:"character_spacing" toml:"character_spacing"`
	BounceHeight     float64    `yaml:"bounce_height" toml:"bounce_height"`
	BounceSpeed      float64    `yaml:"bounce_speed" toml:"bounce_speed"`
	ShakeHeight      float64    `yaml:"shake_height" toml:"shake_height"`
	IncorrectDecay   float64    `yaml:"incorrect_decay" toml:"incorrect_decay"`
	Fill             core.Color `yaml:"fill" toml:"fill"`
	IncorrectFill    core.Color `yaml:"incorrect_fill" toml:"incorrect_fill"`
	Caret            string     `yaml:"caret" toml:"caret"`
	CaretOffset      float64    `yaml:"caret_offset" toml:"caret_offset"`
	CaretAmplitude   float64    `yaml:"caret_amplitude" toml:"caret_amplitude"`
}

// WelcomeConfig defines the welcome screen texts and timing.
type WelcomeConfig struct {
	Title  string  `yaml:"title" toml:"title"`
	Word   string  `yaml:"word" toml:"word"`
	Footer string  `yaml:"footer" toml:"footer"`
	Hint   string  `yaml:"hint" toml:"hint"`
	Reveal float64 `yaml:"reveal" toml:"reveal"`
}

// GameOverConfig defines the score screen texts and timing.
type GameOverConfig struct {
	Title  string  `yaml:"title" toml:"title"`
	Word   string  `yaml:"word" toml:"word"`
	Reveal float64 `yaml:"reveal" toml:"reveal"`
}

// LayoutConfig holds vertical offsets from the viewport center, in rows.
type LayoutConfig struct {
	TitleOffset  float64 `yaml:"title_offset" toml:"title_offset"`
	FooterOffset float64 `yaml:"footer_offset" toml:"footer_offset"`
	HintOffset   float64 `yaml:"hint_offset" toml:"hint_offset"`
	StatsOffset  float64 `yaml:"stats_offset" toml:"stats_offset"`
}

// Validate rejects configurations the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Game.MaxDelta > 0, "game.max_delta must be positive, got %v", c.Game.MaxDelta)
	check(c.Game.TickRate > 0, "game.tick_rate must be positive, got %d", c.Game.TickRate)
	check(c.Game.PanelAlpha >= 0 && c.Game.PanelAlpha <= 1, "game.panel_alpha must be within [0, 1], got %v", c.Game.PanelAlpha)

	check(c.Round.MaxWords >= 1, "round.max_words must be at least 1, got %d", c.Round.MaxWords)
	check(c.Round.TransitionDelay >= 0, "round.transition_delay must not be negative, got %v", c.Round.TransitionDelay)
	check(c.Round.StartLevel >= 0, "round.start_level must not be negative, got %d", c.Round.StartLevel)
	for i, step := range c.Round.Levels {
		check(step.AtWord >= 1, "round.levels[%d].at_word must be at least 1, got %d", i, step.AtWord)
		check(step.Level >= 0, "round.levels[%d].level must not be negative, got %d", i, step.Level)
	}

	check(c.Score.MaxPoints >= 0, "score.max_points must not be negative, got %v", c.Score.MaxPoints)
	check(c.Score.TimeLimitMs > 0, "score.time_limit_ms must be positive, got %v", c.Score.TimeLimitMs)

	check(c.Countdown.From >= c.Countdown.To, "countdown.from (%d) must not be below countdown.to (%d)", c.Countdown.From, c.Countdown.To)

	check(c.Marquee.NextCharacterDelay >= 0, "marquee.next_character_delay must not be negative")
	check(c.Marquee.NextBounceDelay > 0, "marquee.next_bounce_delay must be positive")
	check(c.Marquee.BounceSpeed >= 0, "marquee.bounce_speed must not be negative")
	check(c.Marquee.FillSpeed >= 0, "marquee.fill_speed must not be negative")

	check(c.Word.BounceSpeed >= 0, "word.bounce_speed must not be negative")
	check(c.Word.IncorrectDecay > 0, "word.incorrect_decay must be positive")
	check(c.Word.CharacterSpacing >= 0, "word.character_spacing must not be negative")

	check(c.Welcome.Word != "", "welcome.word must not be empty")
	check(c.GameOver.Word != "", "game_over.word must not be empty")

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
