package heartbloom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// AnimationConfig controls the Engine's clock and per-tick effects.
type AnimationConfig struct {
	// TickDelta is the time advanced per host frame. The animation speed is
	// tied to the tick rate, not to wall time.
	TickDelta float64 `yaml:"tick_delta"`
	// CycleDuration is half the period of a scatter-heart-scatter cycle.
	CycleDuration float64 `yaml:"cycle_duration"`
	// Easing names the function mapping phase to transition (see Easing).
	Easing string `yaml:"easing"`

	// JitterThreshold gates the bloom jitter: it only runs while the
	// transition is above this value.
	JitterThreshold float64 `yaml:"jitter_threshold"`
	// JitterAmplitude is scaled by (1 - transition), so it vanishes at full bloom.
	JitterAmplitude float64 `yaml:"jitter_amplitude"`

	// RotationSpeed is the initial Y rotation added per tick, in radians.
	RotationSpeed float64 `yaml:"rotation_speed"`
	// WobbleAmplitude and WobbleFrequency drive the X rotation:
	// rotX += sin(time * WobbleFrequency) * WobbleAmplitude each tick.
	WobbleAmplitude float64 `yaml:"wobble_amplitude"`
	WobbleFrequency float64 `yaml:"wobble_frequency"`
	// BreatheAmplitude and BreatheFrequency drive the field scale:
	// scale = 1 + BreatheAmplitude * sin(time * BreatheFrequency).
	BreatheAmplitude float64 `yaml:"breathe_amplitude"`
	BreatheFrequency float64 `yaml:"breathe_frequency"`

	// ColorCycle recomputes every particle color each tick from a hue that
	// drifts with time and particle index.
	ColorCycle bool `yaml:"color_cycle"`
	// HueDrift is the hue change in degrees per time unit.
	HueDrift float64 `yaml:"hue_drift"`
	// HueIndexStep is the hue offset in degrees between consecutive particles.
	HueIndexStep float64 `yaml:"hue_index_step"`
	// CycleSaturation and CycleLightness are used while color cycling.
	CycleSaturation float64 `yaml:"cycle_saturation"`
	CycleLightness  float64 `yaml:"cycle_lightness"`

	// Background is the ambient clear color.
	Background BackgroundConfig `yaml:"background"`
}

// BackgroundConfig describes the background color. When Cycle is set the
// hue advances by HueSpeed degrees per time unit starting from Hue.
type BackgroundConfig struct {
	Cycle    bool    `yaml:"cycle"`
	HueSpeed float64 `yaml:"hue_speed"`
	HSL      `yaml:",inline"`
}

// DefaultAnimationConfig returns the tuning of the reference animation.
func DefaultAnimationConfig() AnimationConfig {
	return AnimationConfig{
		TickDelta:        0.005,
		CycleDuration:    5,
		Easing:           DefaultEasing,
		JitterThreshold:  0.95,
		JitterAmplitude:  0.005,
		RotationSpeed:    0.002,
		WobbleAmplitude:  0.002,
		WobbleFrequency:  0.5,
		BreatheAmplitude: 0.02,
		BreatheFrequency: 1.5,
		HueDrift:         30,
		HueIndexStep:     0.01,
		CycleSaturation:  0.8,
		CycleLightness:   0.6,
		Background: BackgroundConfig{
			Cycle:    true,
			HueSpeed: 1.5,
			HSL:      HSL{H: 0, S: 0.2, L: 0.05},
		},
	}
}

// Engine owns the animation clock and the particle position and color
// buffers. It is driven by calling Tick once per frame from a single
// goroutine; nothing in it blocks or schedules work.
type Engine struct {
	field *Field
	cfg   AnimationConfig
	ease  EaseFunc

	positions []float64
	colors    []float64

	time       float64
	phase      float64
	transition float64

	rotationSpeed float64
	transform     Transform
	background    Color
	version       uint64
}

// NewEngine takes ownership of field and prepares the buffers handed to the
// renderer. The caller must not modify field afterwards.
func NewEngine(field *Field, cfg AnimationConfig) (*Engine, error) {
	if field.Len() == 0 {
		return nil, ErrNotGenerated
	}
	n := field.Len()
	if len(field.Origin) != n*3 || len(field.Target) != n*3 ||
		len(field.Color) != n*3 || len(field.Hue) != n {
		return nil, fmt.Errorf("%w: buffer lengths do not match %d particles", ErrNotGenerated, n)
	}
	if !(cfg.CycleDuration > 0) {
		return nil, fmt.Errorf("cycle duration %v: %w", cfg.CycleDuration, ErrInvalidCycle)
	}
	fn, err := Easing(cfg.Easing)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		field:         field,
		cfg:           cfg,
		ease:          fn,
		positions:     make([]float64, n*3),
		colors:        make([]float64, n*3),
		rotationSpeed: cfg.RotationSpeed,
		transform:     identityFieldTransform,
	}
	copy(e.colors, field.Color)
	e.update()
	return e, nil
}

// Tick advances the clock by dt and recomputes every particle. It panics if
// the Engine was not created by NewEngine.
func (e *Engine) Tick(dt float64) {
	if e.field == nil {
		panic("heartbloom: Tick on an engine without a generated field")
	}
	e.time += dt
	e.update()

	e.transform.RotationY += e.rotationSpeed
	if e.cfg.WobbleAmplitude != 0 {
		e.transform.RotationX += math.Sin(e.time*e.cfg.WobbleFrequency) * e.cfg.WobbleAmplitude
	}
	e.version++
}

// Seek jumps the clock to t and recomputes every particle without advancing
// the accumulated rotation.
func (e *Engine) Seek(t float64) {
	if e.field == nil {
		panic("heartbloom: Seek on an engine without a generated field")
	}
	e.time = t
	e.update()
	e.version++
}

// update recomputes phase, transition, positions, colors, scale and
// background for the current time.
func (e *Engine) update() {
	e.phase = Phase(e.time, e.cfg.CycleDuration)
	e.transition = clamp01(e.ease(e.phase))
	t := e.transition

	// positions = origin*(1-t) + target*t
	floats.ScaleTo(e.positions, 1-t, e.field.Origin)
	floats.AddScaled(e.positions, t, e.field.Target)

	if t > e.cfg.JitterThreshold && e.cfg.JitterAmplitude != 0 {
		e.applyJitter()
	}

	if e.cfg.ColorCycle {
		e.cycleColors()
	}

	e.transform.Scale = 1 + e.cfg.BreatheAmplitude*math.Sin(e.time*e.cfg.BreatheFrequency)
	e.background = e.backgroundAt(e.time)
}

// applyJitter adds the small index-phased wobble seen at full bloom. The
// amplitude shrinks to zero as the transition reaches 1.
func (e *Engine) applyJitter() {
	amp := e.cfg.JitterAmplitude * (1 - e.transition)
	p := e.positions
	for i := 0; i < len(p)/3; i++ {
		fi := float64(i)
		j := i * 3
		p[j] += math.Sin(e.time+fi*0.01) * amp
		p[j+1] += math.Cos(e.time+fi*0.01) * amp
		p[j+2] += math.Sin(e.time*0.5+fi*0.02) * amp
	}
}

// cycleColors recolors every particle from its drifting hue. Flow particles
// keep the field's FlowDim dimming.
func (e *Engine) cycleColors() {
	drift := e.time * e.cfg.HueDrift
	heart := e.field.HeartCount
	dim := e.field.FlowDim
	c := e.colors
	for i, base := range e.field.Hue {
		j := i * 3
		h := base + drift + float64(i)*e.cfg.HueIndexStep
		r, g, b := hslToRGB(h, e.cfg.CycleSaturation, e.cfg.CycleLightness)
		if i >= heart {
			r, g, b = r*dim, g*dim, b*dim
		}
		c[j], c[j+1], c[j+2] = r, g, b
	}
}

func (e *Engine) backgroundAt(t float64) Color {
	bg := e.cfg.Background
	h := bg.H
	if bg.Cycle {
		h += t * bg.HueSpeed
	}
	r, g, b := hslToRGB(h, bg.S, bg.L)
	return Color{R: r, G: g, B: b, A: 1}
}

// JitterBound returns the largest per-axis offset the bloom jitter can add.
func (e *Engine) JitterBound() float64 {
	if e.cfg.JitterAmplitude == 0 {
		return 0
	}
	return math.Abs(e.cfg.JitterAmplitude) * (1 - clamp01(e.cfg.JitterThreshold))
}

// AdjustRotationSpeed adds delta to the per-tick Y rotation.
func (e *Engine) AdjustRotationSpeed(delta float64) {
	e.rotationSpeed += delta
}

// SetRotationSpeed replaces the per-tick Y rotation.
func (e *Engine) SetRotationSpeed(v float64) {
	e.rotationSpeed = v
}

// RotationSpeed returns the per-tick Y rotation.
func (e *Engine) RotationSpeed() float64 {
	return e.rotationSpeed
}

// Time returns the animation clock.
func (e *Engine) Time() float64 { return e.time }

// Phase returns the phase computed on the last update.
func (e *Engine) Phase() float64 { return e.phase }

// Transition returns the eased phase used to blend positions.
func (e *Engine) Transition() float64 { return e.transition }

// Len returns the number of particles.
func (e *Engine) Len() int { return e.field.Len() }

// Field returns the generated field the engine animates.
func (e *Engine) Field() *Field { return e.field }

// Config returns a copy of the engine's animation config.
func (e *Engine) Config() AnimationConfig { return e.cfg }

// Snapshot returns the current frame. The position and color slices are the
// engine's own buffers: they are overwritten by the next Tick and must not
// be modified. Use Clone to keep a frame.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Positions:  e.positions,
		Colors:     e.colors,
		Transform:  e.transform,
		Background: e.background,
		Time:       e.time,
		Phase:      e.phase,
		Transition: e.transition,
		Version:    e.version,
	}
}

// Snapshot is the per-tick readout handed to a renderer.
type Snapshot struct {
	// Positions holds x,y,z per particle in field space.
	Positions []float64
	// Colors holds r,g,b per particle in [0, 1].
	Colors []float64
	// Transform is applied to the whole field when drawing.
	Transform Transform
	// Background is the ambient clear color.
	Background Color

	Time       float64
	Phase      float64
	Transition float64
	// Version increases every time the buffers change.
	Version uint64
}

// Len returns the number of particles in the snapshot.
func (s Snapshot) Len() int {
	return len(s.Positions) / 3
}

// Clone returns a deep copy of s.
func (s Snapshot) Clone() Snapshot {
	c := s
	c.Positions = append([]float64(nil), s.Positions...)
	c.Colors = append([]float64(nil), s.Colors...)
	return c
}
