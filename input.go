package heartbloom

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"
)

// inputFrame is the raw input polled for one tick.
type inputFrame struct {
	cursorX, cursorY float64
	pressed          bool // primary pointer button held
	wheelY           float64
	wheelZoom        bool // wheel zooms instead of changing spin
	zoomIn           bool
	zoomOut          bool
	togglePause      bool
	resetSpin        bool
	screenshot       bool
}

// readInput polls ebiten for the current frame's input.
func readInput() inputFrame {
	mx, my := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	return inputFrame{
		cursorX:     float64(mx),
		cursorY:     float64(my),
		pressed:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		wheelY:      wy,
		wheelZoom:   ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyShift),
		zoomIn:      inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd),
		zoomOut:     inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract),
		togglePause: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		resetSpin:   inpututil.IsKeyJustPressed(ebiten.KeyR),
		screenshot:  inpututil.IsKeyJustPressed(ebiten.KeyP),
	}
}

// controller turns input frames into engine and camera changes. It only
// touches isolated scalars (rotation speed, camera angles and distance),
// never particle buffers.
type controller struct {
	engine *Engine
	cam    *Camera
	cfg    InputConfig

	dragging     bool
	lastX, lastY float64
	paused       bool
}

func newController(engine *Engine, cam *Camera, cfg InputConfig) *controller {
	return &controller{engine: engine, cam: cam, cfg: cfg}
}

// apply processes one input frame. Wheel up (positive wheelY) speeds the
// spin up; with Ctrl or Shift held it zooms in instead.
func (c *controller) apply(in inputFrame) {
	step := c.cfg.ZoomStep
	if step <= 0 || step >= 1 {
		step = 0.85
	}
	dur := float32(c.cfg.ZoomDuration)

	if in.wheelY != 0 {
		if in.wheelZoom {
			c.cam.ZoomBy(math.Pow(step, in.wheelY), dur, ease.OutCubic)
		} else {
			c.engine.AdjustRotationSpeed(in.wheelY * c.cfg.WheelSensitivity)
		}
	}
	if in.resetSpin {
		c.engine.SetRotationSpeed(c.engine.Config().RotationSpeed)
	}

	switch {
	case in.pressed && !c.dragging:
		c.dragging = true
	case in.pressed:
		c.cam.Orbit(in.cursorX-c.lastX, in.cursorY-c.lastY)
	default:
		c.dragging = false
	}
	c.lastX, c.lastY = in.cursorX, in.cursorY

	if in.zoomIn {
		c.cam.ZoomBy(step, dur, ease.OutCubic)
	}
	if in.zoomOut {
		c.cam.ZoomBy(1/step, dur, ease.OutCubic)
	}

	if in.togglePause {
		c.paused = !c.paused
	}
}
