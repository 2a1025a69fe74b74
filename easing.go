package heartbloom

import (
	"fmt"
	"math"
	"sort"

	"github.com/tanema/gween/ease"
)

// EaseFunc maps a phase in [0, 1] to a transition value. Results outside
// [0, 1] are clamped by the Engine.
type EaseFunc func(phase float64) float64

// easings lists every gween easing selectable by name in AnimationConfig.
var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-cubic":     ease.InCubic,
	"out-cubic":    ease.OutCubic,
	"in-out-cubic": ease.InOutCubic,
	"in-quart":     ease.InQuart,
	"out-quart":    ease.OutQuart,
	"in-out-quart": ease.InOutQuart,
	"in-quint":     ease.InQuint,
	"in-out-quint": ease.InOutQuint,
	"in-sine":      ease.InSine,
	"out-sine":     ease.OutSine,
	"in-out-sine":  ease.InOutSine,
	"in-expo":      ease.InExpo,
	"in-out-expo":  ease.InOutExpo,
	"in-circ":      ease.InCirc,
	"in-out-circ":  ease.InOutCirc,
}

// DefaultEasing is the cubic ease that keeps the field near the fully
// scattered and fully formed extremes longer than a linear blend.
const DefaultEasing = "in-cubic"

// Easing returns the EaseFunc registered under name. An empty name selects
// DefaultEasing, which is evaluated in float64 as CubicTransition; the other
// curves go through gween's float32 functions.
func Easing(name string) (EaseFunc, error) {
	if name == "" || name == DefaultEasing {
		return CubicTransition, nil
	}
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("easing %q: %w", name, ErrUnknownEasing)
	}
	return wrapTween(fn), nil
}

// EasingNames returns the registered easing names in sorted order.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// wrapTween adapts a gween easing (t, begin, change, duration) to a unit
// EaseFunc.
func wrapTween(fn ease.TweenFunc) EaseFunc {
	return func(phase float64) float64 {
		return float64(fn(float32(phase), 0, 1, 1))
	}
}

// Phase returns the cyclic phase in [0, 1] at the given time. One full
// scatter-heart-scatter cycle takes 2*cycle time units.
func Phase(time, cycle float64) float64 {
	return (math.Sin(time*math.Pi/cycle) + 1) / 2
}

// CubicTransition is the reference float64 cubic ease of a phase.
func CubicTransition(phase float64) float64 {
	return phase * phase * phase
}
