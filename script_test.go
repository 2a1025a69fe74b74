package heartbloom

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "drag", "fromX": 100, "fromY": 200, "toX": 300, "toY": 200, "frames": 4},
			{"action": "wait", "frames": 3},
			{"action": "scroll", "y": -2}
		]
	}`)

	s, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(s.steps))
	}
	if s.steps[0].Action != "screenshot" || s.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if st := s.steps[1]; st.Action != "drag" || st.FromX != 100 || st.ToX != 300 || st.Frames != 4 {
		t.Error("step 1 mismatch")
	}
	if s.steps[3].Y != -2 {
		t.Error("step 3 mismatch")
	}
}

func TestLoadScript_Invalid(t *testing.T) {
	tests := map[string]string{
		"not json":       `not json`,
		"empty":          `{"steps": []}`,
		"unknown action": `{"steps": [{"action": "click"}]}`,
	}
	for name, data := range tests {
		if _, err := LoadScript([]byte(data)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestLoadScriptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.json")
	if err := os.WriteFile(path, []byte(`{"steps": [{"action": "exit"}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadScriptFile(path); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadScriptFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestScriptStep_Wait(t *testing.T) {
	h := newTestHost(t)
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "done"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	// Frame 1: execute wait (waitCount becomes 2).
	s.step(h)
	// Frames 2 and 3: count down.
	s.step(h)
	s.step(h)
	if s.Done() {
		t.Fatal("screenshot step not yet executed")
	}
	// Frame 4: execute screenshot step.
	s.step(h)
	if !s.Done() {
		t.Error("script should be done after screenshot step")
	}
	if len(h.screenshotQueue) != 1 || h.screenshotQueue[0] != "done" {
		t.Errorf("expected screenshot 'done', got %v", h.screenshotQueue)
	}
}

func TestScriptStep_DragOrbitsCamera(t *testing.T) {
	h := newTestHost(t)
	s, err := LoadScript([]byte(`{"steps": [{"action": "drag", "fromX": 10, "fromY": 50, "toX": 50, "toY": 50, "frames": 4}]}`))
	if err != nil {
		t.Fatal(err)
	}

	s.step(h)
	if len(h.injectQueue) != 6 {
		t.Fatalf("expected 6 queued frames for drag, got %d", len(h.injectQueue))
	}
	// Pending injections hold the script.
	s.step(h)
	if s.Done() {
		t.Error("script should not be done while frames are queued")
	}

	for {
		in, ok := h.nextInput()
		if !ok {
			break
		}
		h.step(in, 1.0/60)
	}
	assertNear(t, "targetYaw", h.cam.targetYaw, -40*DefaultCameraConfig().OrbitSensitivity)
	if h.ctrl.dragging {
		t.Error("drag should end with a release")
	}

	s.step(h)
	if !s.Done() {
		t.Error("script should be done after the queue drains")
	}
}

func TestScriptStep_Actions(t *testing.T) {
	h := newTestHost(t)
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "scroll", "y": 2},
		{"action": "pause"},
		{"action": "zoom-in"},
		{"action": "reset-spin"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 8 && !s.Done(); i++ {
		s.step(h)
		if in, ok := h.nextInput(); ok {
			h.step(in, 1.0/60)
		}
	}
	if !s.Done() {
		t.Fatal("script did not finish")
	}
	if !h.ctrl.paused {
		t.Error("pause action not applied")
	}
	assertNear(t, "spin", h.engine.RotationSpeed(), DefaultAnimationConfig().RotationSpeed)
}

func TestScriptScrollZoom(t *testing.T) {
	h := newTestHost(t)
	s, err := LoadScript([]byte(`{"steps": [{"action": "scroll", "y": 1, "zoom": true}]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.step(h)
	in, ok := h.nextInput()
	if !ok || !in.wheelZoom || in.wheelY != 1 {
		t.Fatalf("queued frame = %+v, want zooming wheel", in)
	}
	h.step(in, 1.0/60)
	assertNear(t, "spin", h.engine.RotationSpeed(), DefaultAnimationConfig().RotationSpeed)
}

func TestScriptExit(t *testing.T) {
	h := newTestHost(t)
	s, err := LoadScript([]byte(`{"steps": [{"action": "exit"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.step(h)
	if !s.exit || !s.Done() {
		t.Error("exit step should finish the script and request exit")
	}
}
