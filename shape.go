package heartbloom

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// ShapeConfig controls particle generation. Every field is used as given:
// a zero Thickness or HalfExtent means none, not a default. Start from
// DefaultShapeConfig when building one by hand.
type ShapeConfig struct {
	// Count is the number of heart particles. Must be positive.
	Count int `yaml:"count"`
	// FlowCount is the number of trailing flow particles appended after the
	// heart particles. Zero disables the flow trail.
	FlowCount int `yaml:"flow_count"`

	// Depth is the radial scale k in r = k * (1 - |cos(phi)|).
	Depth float64 `yaml:"depth"`
	// DepthFactor stretches the random z offset of each heart point.
	DepthFactor float64 `yaml:"depth_factor"`
	// Thickness is the full width of the uniform per-axis jitter that turns
	// the heart curve into a solid volume.
	Thickness float64 `yaml:"thickness"`
	// HalfExtent bounds the scattered origin cloud on every axis.
	HalfExtent float64 `yaml:"half_extent"`

	// FlowDrop is how far below its sampled heart point a flow particle lands.
	FlowDrop Range `yaml:"flow_drop"`
	// FlowSpread is the full width of the horizontal scatter of flow targets.
	FlowSpread float64 `yaml:"flow_spread"`
	// FlowDim scales the sampled particle's color for flow particles.
	FlowDim float64 `yaml:"flow_dim"`

	// ColorMode selects palette or position-derived coloring.
	ColorMode ColorMode `yaml:"color_mode"`
	// HueMin and HueMax bound the position-derived hue, in degrees.
	HueMin float64 `yaml:"hue_min"`
	HueMax float64 `yaml:"hue_max"`
	// Saturation and Lightness are used for position-derived colors.
	Saturation float64 `yaml:"saturation"`
	Lightness  float64 `yaml:"lightness"`
	// PaletteR, PaletteG and PaletteB are the per-channel bands for ColorPalette.
	PaletteR Range `yaml:"palette_r"`
	PaletteG Range `yaml:"palette_g"`
	PaletteB Range `yaml:"palette_b"`
}

// DefaultShapeConfig returns generation settings tuned for a 40k particle
// heart viewed from roughly 500 units away.
func DefaultShapeConfig() ShapeConfig {
	return ShapeConfig{
		Count:       40000,
		Depth:       10,
		DepthFactor: 8,
		Thickness:   4,
		HalfExtent:  1000,
		FlowDrop:    Range{Min: 40, Max: 220},
		FlowSpread:  12,
		FlowDim:     0.6,
		ColorMode:   ColorPosition,
		HueMin:      280,
		HueMax:      350,
		Saturation:  0.85,
		Lightness:   0.6,
		PaletteR:    Range{Min: 0.3, Max: 0.7},
		PaletteG:    Range{Min: 0, Max: 0.3},
		PaletteB:    Range{Min: 0.3, Max: 0.8},
	}
}

// Field holds the immutable per-particle data produced by Generate. All
// per-axis buffers are flat x,y,z triples indexed by particle.
type Field struct {
	// Origin is the scattered "exploded" position of each particle.
	Origin []float64
	// Target is the heart-volume position of each particle.
	Target []float64
	// Color is the base RGB of each particle in [0, 1].
	Color []float64
	// Hue is the base hue of each particle in degrees.
	Hue []float64
	// HeartCount is the number of heart particles, stored first.
	HeartCount int
	// FlowCount is the number of flow particles, stored after the heart.
	FlowCount int
	// FlowDim is the brightness factor applied to flow particle colors.
	FlowDim float64
}

// Len returns the total number of particles in the field.
func (f *Field) Len() int {
	if f == nil {
		return 0
	}
	return f.HeartCount + f.FlowCount
}

// Bounds returns the axis-aligned box enclosing every origin and target
// point.
func (f *Field) Bounds() (min, max [3]float64) {
	min = [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	max = [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, buf := range [2][]float64{f.Origin, f.Target} {
		for i := 0; i < len(buf); i += 3 {
			for a := 0; a < 3; a++ {
				v := buf[i+a]
				if v < min[a] {
					min[a] = v
				}
				if v > max[a] {
					max[a] = v
				}
			}
		}
	}
	return min, max
}

// Generate builds a particle field from cfg using rng as the only source of
// randomness. The same seed always produces the same field.
func Generate(cfg ShapeConfig, rng *rand.Rand) (*Field, error) {
	if cfg.Count <= 0 {
		return nil, fmt.Errorf("generate %d particles: %w", cfg.Count, ErrInvalidCount)
	}
	if cfg.FlowCount < 0 {
		return nil, fmt.Errorf("generate %d flow particles: %w", cfg.FlowCount, ErrInvalidCount)
	}
	if rng == nil {
		return nil, fmt.Errorf("generate: %w", ErrNilRand)
	}

	n := cfg.Count + cfg.FlowCount
	f := &Field{
		Origin:     make([]float64, n*3),
		Target:     make([]float64, n*3),
		Color:      make([]float64, n*3),
		Hue:        make([]float64, n),
		HeartCount: cfg.Count,
		FlowCount:  cfg.FlowCount,
		FlowDim:    cfg.FlowDim,
	}

	for i := 0; i < cfg.Count; i++ {
		j := i * 3
		hx, hy, hz := heartPoint(&cfg, rng)
		f.Target[j] = hx
		f.Target[j+1] = hy
		f.Target[j+2] = hz
		scatterPoint(f.Origin[j:j+3], cfg.HalfExtent, rng)

		switch cfg.ColorMode {
		case ColorPalette:
			r := cfg.PaletteR.Random(rng)
			g := cfg.PaletteG.Random(rng)
			b := cfg.PaletteB.Random(rng)
			f.Color[j], f.Color[j+1], f.Color[j+2] = r, g, b
			f.Hue[i] = rgbHue(r, g, b)
		default:
			h := hueForX(hx, 16*cfg.Depth, cfg.HueMin, cfg.HueMax)
			f.Color[j], f.Color[j+1], f.Color[j+2] = hslToRGB(h, cfg.Saturation, cfg.Lightness)
			f.Hue[i] = h
		}
	}

	for i := cfg.Count; i < n; i++ {
		j := i * 3
		src := rng.IntN(cfg.Count)
		s := src * 3
		f.Target[j] = f.Target[s] + (rng.Float64()-0.5)*cfg.FlowSpread
		f.Target[j+1] = f.Target[s+1] - cfg.FlowDrop.Random(rng)
		f.Target[j+2] = f.Target[s+2] + (rng.Float64()-0.5)*cfg.FlowSpread
		scatterPoint(f.Origin[j:j+3], cfg.HalfExtent, rng)

		f.Color[j] = f.Color[s] * cfg.FlowDim
		f.Color[j+1] = f.Color[s+1] * cfg.FlowDim
		f.Color[j+2] = f.Color[s+2] * cfg.FlowDim
		f.Hue[i] = f.Hue[src]
	}

	return f, nil
}

// heartPoint samples one point of the solid heart volume.
//
// phi is drawn so that cos(phi) is uniform in [-1, 1]. The resulting density
// is not uniform over the volume; the silhouette depends on it.
func heartPoint(cfg *ShapeConfig, rng *rand.Rand) (x, y, z float64) {
	theta := rng.Float64() * 2 * math.Pi
	phi := math.Acos(2*rng.Float64() - 1)
	r := cfg.Depth * (1 - math.Abs(math.Cos(phi)))

	s := math.Sin(theta)
	x = r * 16 * s * s * s
	y = r * (13*math.Cos(theta) - 5*math.Cos(2*theta) - 2*math.Cos(3*theta) - math.Cos(4*theta))
	z = r * (rng.Float64() - 0.5) * cfg.DepthFactor

	x += (rng.Float64() - 0.5) * cfg.Thickness
	y += (rng.Float64() - 0.5) * cfg.Thickness
	z += (rng.Float64() - 0.5) * cfg.Thickness
	return x, y, z
}

// scatterPoint fills dst with a point uniform in the cube of the given half extent.
func scatterPoint(dst []float64, halfExtent float64, rng *rand.Rand) {
	dst[0] = (rng.Float64()*2 - 1) * halfExtent
	dst[1] = (rng.Float64()*2 - 1) * halfExtent
	dst[2] = (rng.Float64()*2 - 1) * halfExtent
}
