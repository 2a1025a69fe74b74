package heartbloom

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func TestDefaultEasingIsExactCubic(t *testing.T) {
	for _, name := range []string{"", DefaultEasing} {
		fn, err := Easing(name)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i <= 1000; i++ {
			p := float64(i) / 1000
			if got := fn(p); got != p*p*p {
				t.Fatalf("%q: ease(%v) = %v, want %v", name, p, got, p*p*p)
			}
		}
	}
}

func TestTweenEasingMatchesGween(t *testing.T) {
	fn, err := Easing("in-quad")
	if err != nil {
		t.Fatal(err)
	}
	if d := math.Abs(fn(0.5) - 0.25); d > 1e-6 {
		t.Errorf("in-quad(0.5) = %v, want 0.25", fn(0.5))
	}
}

func TestEngineDefaultTransitionIsPhaseCubed(t *testing.T) {
	e := newTestEngine(t, 50, 2, nil)
	for i := 0; i < 300; i++ {
		e.Tick(0.013)
		if p := e.Phase(); e.Transition() != p*p*p {
			t.Fatalf("tick %d: transition = %v, want %v", i, e.Transition(), p*p*p)
		}
	}
}

func TestEasingEndpoints(t *testing.T) {
	for _, name := range EasingNames() {
		fn, err := Easing(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if v := fn(0); math.Abs(v) > 0.01 {
			t.Errorf("%s(0) = %v, want ~0", name, v)
		}
		if v := fn(1); math.Abs(v-1) > 0.01 {
			t.Errorf("%s(1) = %v, want ~1", name, v)
		}
	}
}

func TestEasingUnknownName(t *testing.T) {
	if _, err := Easing("elastic-ish"); !errors.Is(err, ErrUnknownEasing) {
		t.Errorf("err = %v, want ErrUnknownEasing", err)
	}
}

func TestEasingNamesSorted(t *testing.T) {
	names := EasingNames()
	if !slices.IsSorted(names) {
		t.Error("EasingNames not sorted")
	}
	if !slices.Contains(names, DefaultEasing) {
		t.Errorf("EasingNames missing %q", DefaultEasing)
	}
}
