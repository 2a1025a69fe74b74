package heartbloom

import (
	"errors"
	"image/color"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// ErrInvalidCount is returned when a particle count is not positive.
	ErrInvalidCount = errors.New("heartbloom: particle count must be positive")
	// ErrInvalidCycle is returned when the cycle duration is not positive.
	ErrInvalidCycle = errors.New("heartbloom: cycle duration must be positive")
	// ErrNotGenerated is returned when an Engine is built without a generated field.
	ErrNotGenerated = errors.New("heartbloom: particle field was not generated")
	// ErrNilRand is returned when Generate is called without a random source.
	ErrNilRand = errors.New("heartbloom: nil random source")
	// ErrUnknownEasing is returned for an easing name with no registered function.
	ErrUnknownEasing = errors.New("heartbloom: unknown easing")
	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("heartbloom: invalid config")
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// RGBA converts c to a color.RGBA suitable for ebiten.Image.Fill.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: clampByte(c.R * c.A),
		G: clampByte(c.G * c.A),
		B: clampByte(c.B * c.A),
		A: clampByte(c.A),
	}
}

func clampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Range is a general-purpose min/max range.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Random returns a value in [Min, Max) drawn from rng.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// BlendMode selects a compositing operation for the point renderer.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                     // additive / lighter
	BlendScreen                  // screen (1 - (1-src)*(1-dst); only brightens)
)

// ParseBlendMode maps a config name to a BlendMode. Unknown names fall back
// to BlendNormal and report false.
func ParseBlendMode(name string) (BlendMode, bool) {
	switch name {
	case "", "normal":
		return BlendNormal, true
	case "add":
		return BlendAdd, true
	case "screen":
		return BlendScreen, true
	default:
		return BlendNormal, false
	}
}

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendAdd:
		return ebiten.BlendLighter
	case BlendScreen:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceColor,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	default:
		return ebiten.BlendSourceOver
	}
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// clamp01 restricts v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
