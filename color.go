package heartbloom

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorMode selects how Generate assigns base colors.
type ColorMode uint8

const (
	// ColorPosition maps each particle's heart-space x coordinate onto a hue range.
	ColorPosition ColorMode = iota
	// ColorPalette draws each channel independently from a configured band.
	ColorPalette
)

// String returns the config name of the mode.
func (m ColorMode) String() string {
	switch m {
	case ColorPosition:
		return "position"
	case ColorPalette:
		return "palette"
	default:
		return fmt.Sprintf("ColorMode(%d)", m)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler so modes can be written
// by name in YAML.
func (m *ColorMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "position":
		*m = ColorPosition
	case "palette":
		*m = ColorPalette
	default:
		return fmt.Errorf("%w: color mode %q", ErrInvalidConfig, text)
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (m ColorMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// HSL holds a hue in degrees with saturation and lightness in [0, 1].
type HSL struct {
	H float64 `yaml:"hue"`
	S float64 `yaml:"saturation"`
	L float64 `yaml:"lightness"`
}

// hslToRGB converts hue (degrees, any range) plus saturation and lightness
// to clamped RGB components.
func hslToRGB(h, s, l float64) (r, g, b float64) {
	c := colorful.Hsl(wrapHue(h), s, l).Clamped()
	return c.R, c.G, c.B
}

// rgbHue returns the HSL hue of an RGB triple in degrees.
func rgbHue(r, g, b float64) float64 {
	h, _, _ := colorful.Color{R: r, G: g, B: b}.Hsl()
	if math.IsNaN(h) {
		return 0
	}
	return h
}

// wrapHue folds h into [0, 360).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// hueForX linearly maps x from [-span, span] onto [hueMin, hueMax], clamping
// at the ends.
func hueForX(x, span, hueMin, hueMax float64) float64 {
	if span <= 0 {
		return hueMin
	}
	t := clamp01((x + span) / (2 * span))
	return lerp(hueMin, hueMax, t)
}
