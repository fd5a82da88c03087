package core

import "github.com/mattn/go-runewidth"

// MeasureFunc returns the rendered width of text in viewport units.
// It is supplied by the rendering side and must be pure.
type MeasureFunc func(text string) float64

// TextWidth measures text in terminal cells.
func TextWidth(text string) float64 {
	return float64(runewidth.StringWidth(text))
}
