package core

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit RGB color used for glyph tints and cell backgrounds.
// The terminal renderer emits it as a truecolor escape.
type Color struct {
	R, G, B uint8
}

// Predefined colors used by the default theme.
var (
	ColorBlack      = Color{0x00, 0x00, 0x00}
	ColorWhite      = Color{0xff, 0xff, 0xff}
	ColorGray       = Color{0xaa, 0xaa, 0xaa}
	ColorBackground = Color{0x11, 0x11, 0x11}
	ColorHighlight  = Color{0xff, 0x14, 0x5b}
)

// RGB builds a color from a 0xRRGGBB value.
func RGB(hex uint32) Color {
	return Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
	}
}

// ParseColor parses "#rrggbb" or "#rgb"; the leading "#" is optional.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return Color{}, fmt.Errorf("core: invalid color %q: want #rrggbb or #rgb", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("core: invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// MarshalText lets colors appear as "#rrggbb" in YAML and TOML.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText parses "#rrggbb".
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// LerpColor interpolates each channel from -> to by t.
// t is clamped to [0, 1].
func LerpColor(from, to Color, t float64) Color {
	t = ClampF(t, 0, 1)
	return Color{
		R: lerpChannel(from.R, to.R, t),
		G: lerpChannel(from.G, to.G, t),
		B: lerpChannel(from.B, to.B, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := float64(a) + (float64(b)-float64(a))*t
	return uint8(ClampF(v+0.5, 0, 255))
}
