package heartbloom

import (
	"io"
	"log/slog"
	"slices"
	"strings"
	"testing"
)

func newTestHost(t *testing.T) *host {
	t.Helper()
	e := newTestEngine(t, 200, 9, nil)
	cfg := DefaultConfig().RunConfig()
	cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return newHost(e, NewCamera(DefaultCameraConfig(), cfg.Width, cfg.Height), cfg)
}

func TestRunConfigFromConfig(t *testing.T) {
	cfg := DefaultConfig()
	rc := cfg.RunConfig()
	if rc.Title != "heartbloom" || rc.Width != 1280 || rc.Height != 720 {
		t.Errorf("window = %q %dx%d", rc.Title, rc.Width, rc.Height)
	}
	if rc.TickDelta != cfg.Animation.TickDelta || rc.Render != cfg.Render || rc.Input != cfg.Input {
		t.Error("RunConfig did not copy animation, render and input settings")
	}
}

func TestNewHostDefaultLogger(t *testing.T) {
	e := newTestEngine(t, 10, 1, nil)
	h := newHost(e, newTestCamera(), RunConfig{TickDelta: 0.005})
	if h.log == nil {
		t.Fatal("host logger is nil")
	}
}

func TestHostStepTicksEngine(t *testing.T) {
	h := newTestHost(t)
	for i := 0; i < 4; i++ {
		h.step(inputFrame{}, 1.0/60)
	}
	assertNear(t, "time", h.engine.Time(), 0.02)
	if v := h.engine.Snapshot().Version; v != 4 {
		t.Errorf("version = %d, want 4", v)
	}
}

func TestHostPauseStopsTicking(t *testing.T) {
	h := newTestHost(t)
	h.step(inputFrame{}, 1.0/60)
	h.step(inputFrame{togglePause: true}, 1.0/60)
	before := h.engine.Snapshot().Clone()
	for i := 0; i < 10; i++ {
		h.step(inputFrame{}, 1.0/60)
	}
	after := h.engine.Snapshot()
	if after.Version != before.Version || after.Time != before.Time {
		t.Error("engine advanced while paused")
	}

	h.step(inputFrame{togglePause: true}, 1.0/60)
	if h.engine.Snapshot().Version != before.Version+1 {
		t.Error("engine did not resume after unpausing")
	}
}

func TestHostLayoutResizesCameraOnly(t *testing.T) {
	h := newTestHost(t)
	for i := 0; i < 100; i++ {
		h.step(inputFrame{}, 1.0/60)
	}
	before := h.engine.Snapshot().Clone()

	w, ht := h.Layout(640, 480)
	if w != 640 || ht != 480 {
		t.Errorf("Layout = %dx%d, want 640x480", w, ht)
	}
	if cw, ch := h.cam.Size(); cw != 640 || ch != 480 {
		t.Errorf("camera size = %dx%d, want 640x480", cw, ch)
	}

	after := h.engine.Snapshot()
	if !slices.Equal(before.Positions, after.Positions) || after.Version != before.Version {
		t.Error("resize changed particle state")
	}
}

func TestStatsText(t *testing.T) {
	h := newTestHost(t)
	s := statsText(h, 60, 60)
	for _, want := range []string{"FPS: 60.0", "points: 0/200", "running"} {
		if !strings.Contains(s, want) {
			t.Errorf("stats %q missing %q", s, want)
		}
	}
	h.step(inputFrame{togglePause: true}, 1.0/60)
	if s := statsText(h, 60, 60); !strings.Contains(s, "paused") {
		t.Errorf("stats %q missing paused state", s)
	}
}
