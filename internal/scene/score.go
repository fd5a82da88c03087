package scene

import (
	"fmt"
	"math"

	"github.com/vovakirdan/speedtype/internal/config"
	"github.com/vovakirdan/speedtype/internal/core"
)

// Accuracy is the factor the score is built on:
// 1 - min(1, incorrect / (correct - incorrect)), and 0 when correct does not
// exceed incorrect.
func Accuracy(correct, incorrect int) float64 {
	net := correct - incorrect
	if net <= 0 {
		return 0
	}
	return 1 - math.Min(1, float64(incorrect)/float64(net))
}

// ComputeScore rates a round: faster and more accurate is better, and rounds
// longer than the time limit score 0.
func ComputeScore(cfg config.ScoreConfig, stats core.RoundStats) int {
	acc := Accuracy(stats.Correct, stats.Incorrect)
	timeFactor := math.Max(0, 1-float64(stats.TimeMs)/cfg.TimeLimitMs)
	return int(math.Floor(cfg.MaxPoints*timeFactor*acc*acc*acc + 0.5))
}

// DisplayAccuracy is the accuracy shown to the player, in percent:
// (1 - incorrect/correct) * 100 clamped to [0, 100].
func DisplayAccuracy(correct, incorrect int) float64 {
	if correct <= 0 {
		return 0
	}
	return core.ClampF((1-float64(incorrect)/float64(correct))*100, 0, 100)
}

// Result scores a round.
func Result(cfg config.ScoreConfig, stats core.RoundStats) core.RoundResult {
	return core.RoundResult{
		RoundStats: stats,
		Score:      ComputeScore(cfg, stats),
		Accuracy:   DisplayAccuracy(stats.Correct, stats.Incorrect),
	}
}

// FormatStats renders the score block shown after a round.
func FormatStats(r core.RoundResult) string {
	return fmt.Sprintf("Score\n%d\n\nTime: %.2f sec\nAccuracy: %.2f %%",
		r.Score, float64(r.TimeMs)/1000, r.Accuracy)
}
