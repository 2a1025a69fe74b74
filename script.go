package heartbloom

import (
	"encoding/json"
	"fmt"
	"os"
)

// scriptStep is a single action in a script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Zoom   bool    `json:"zoom,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences injected input and screenshots across frames for
// unattended captures. Pass one to Run through RunConfig.Script.
//
// Supported actions: "screenshot" (label), "drag" (fromX, fromY, toX, toY,
// frames), "scroll" (y, zoom), "zoom-in", "zoom-out", "pause", "reset-spin",
// "wait" (frames) and "exit".
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	exit      bool
}

// LoadScript parses a JSON script.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "screenshot", "drag", "scroll", "zoom-in", "zoom-out",
			"pause", "reset-spin", "wait", "exit":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// LoadScriptFile reads and parses a JSON script from path.
func LoadScriptFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return LoadScript(data)
}

// Done reports whether every step has been executed.
func (s *Script) Done() bool {
	return s.done
}

// step advances the script by one frame. Called from host.Update before
// input is read.
func (s *Script) step(h *host) {
	if s.done {
		return
	}
	// Let pending injections drain before advancing.
	if len(h.injectQueue) > 0 {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "screenshot":
		h.Screenshot(st.Label)
	case "drag":
		h.injectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "scroll":
		h.injectFrame(inputFrame{wheelY: st.Y, wheelZoom: st.Zoom})
	case "zoom-in":
		h.injectFrame(inputFrame{zoomIn: true})
	case "zoom-out":
		h.injectFrame(inputFrame{zoomOut: true})
	case "pause":
		h.injectFrame(inputFrame{togglePause: true})
	case "reset-spin":
		h.injectFrame(inputFrame{resetSpin: true})
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "exit":
		s.exit = true
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 && len(h.injectQueue) == 0 {
		s.done = true
	}
}
