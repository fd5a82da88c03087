package config

import (
	"fmt"
	"sort"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the known presets in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ApplyPreset adjusts round length and level schedule for a preset.
// An empty preset leaves the configuration untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) error {
	switch preset {
	case "":
		return nil
	case DifficultyEasy:
		cfg.Round.MaxWords = 6
		cfg.Round.StartLevel = 0
		cfg.Round.Levels = []LevelStep{
			{AtWord: 3, Level: 1},
		}
	case DifficultyNormal:
		def := DefaultConfig()
		cfg.Round.MaxWords = def.Round.MaxWords
		cfg.Round.StartLevel = def.Round.StartLevel
		cfg.Round.Levels = def.Round.Levels
	case DifficultyHard:
		cfg.Round.MaxWords = 15
		cfg.Round.StartLevel = 1
		cfg.Round.Levels = []LevelStep{
			{AtWord: 2, Level: 2},
			{AtWord: 6, Level: 3},
		}
	default:
		return fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", preset)
	}
	return nil
}

// LevelSchedule maps the running word counter to a corpus level.
type LevelSchedule struct {
	start int
	steps []LevelStep
}

// NewLevelSchedule builds a schedule from the round configuration.
func NewLevelSchedule(round RoundConfig) LevelSchedule {
	steps := append([]LevelStep(nil), round.Levels...)
	sort.SliceStable(steps, func(i, j int) bool {
		return steps[i].AtWord < steps[j].AtWord
	})
	return LevelSchedule{start: round.StartLevel, steps: steps}
}

// LevelAt returns the level in effect once wordCount words have been drawn.
func (s LevelSchedule) LevelAt(wordCount int) int {
	level := s.start
	for _, step := range s.steps {
		if step.AtWord > wordCount {
			break
		}
		level = step.Level
	}
	return level
}
