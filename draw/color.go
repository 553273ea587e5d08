package draw

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Color stores explicit 8-bit color channels, decoupled from the
// backend's color space.
type Color struct {
	R, G, B uint8
}

// Predefined colors
var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// FromHex parses "#RRGGBB" or "RRGGBB".
func FromHex(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return Color{}, fmt.Errorf("draw: invalid hex color %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return Color{}, fmt.Errorf("draw: invalid hex color %q", s)
	}
	return Color{r, g, b}, nil
}

// Hex formats the color as "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// FromNative converts a backend color. The default color maps to
// black; palette colors resolve to their RGB values.
func FromNative(tc tcell.Color) Color {
	if tc == tcell.ColorDefault {
		return Black
	}
	r, g, b := tc.RGB()
	return Color{uint8(r), uint8(g), uint8(b)}
}

// Native converts to a backend true-color value.
func (c Color) Native() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// colorful returns the float representation for perceptual math.
func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func fromColorful(cc colorful.Color) Color {
	cc = cc.Clamped()
	return Color{
		R: uint8(cc.R*255.0 + 0.5),
		G: uint8(cc.G*255.0 + 0.5),
		B: uint8(cc.B*255.0 + 0.5),
	}
}

// Blend mixes c toward other in Lab space; t=0 returns c, t=1
// returns other. Lab keeps midpoints perceptually even, unlike
// channel-wise interpolation.
func (c Color) Blend(other Color, t float64) Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return other
	}
	return fromColorful(c.colorful().BlendLab(other.colorful(), t))
}

// Lighten raises lightness by amount (0..1) in HSL space.
func (c Color) Lighten(amount float64) Color {
	h, s, l := c.colorful().Hsl()
	l += amount
	if l > 1 {
		l = 1
	}
	return fromColorful(colorful.Hsl(h, s, l))
}

// Darken lowers lightness by amount (0..1) in HSL space.
func (c Color) Darken(amount float64) Color {
	h, s, l := c.colorful().Hsl()
	l -= amount
	if l < 0 {
		l = 0
	}
	return fromColorful(colorful.Hsl(h, s, l))
}

// Add performs additive blend with clamping (light accumulation)
func (c Color) Add(src Color) Color {
	return Color{
		R: uint8(min(int(c.R)+int(src.R), 255)),
		G: uint8(min(int(c.G)+int(src.G), 255)),
		B: uint8(min(int(c.B)+int(src.B), 255)),
	}
}

// Scale multiplies each channel by factor (for fading effects)
func (c Color) Scale(factor float64) Color {
	if factor <= 0 {
		return Black
	}
	if factor >= 1 {
		return c
	}
	return Color{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}
