package heartbloom

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window and host loop created by Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	ShowFPS   bool
	Resizable bool
	// TickDelta is passed to Engine.Tick once per update.
	TickDelta float64
	Input     InputConfig
	Render    RenderConfig
	// ScreenshotDir receives PNGs from the P key and script screenshots.
	ScreenshotDir string
	// Debug logs renderer timing periodically at debug level.
	Debug bool
	// Script, when set, drives input until it is done.
	Script *Script
	// Logger receives host events. Nil uses slog.Default().
	Logger *slog.Logger
}

// RunConfig derives the host settings from c.
func (c *Config) RunConfig() RunConfig {
	return RunConfig{
		Title:     c.Window.Title,
		Width:     c.Window.Width,
		Height:    c.Window.Height,
		ShowFPS:   c.Window.ShowFPS,
		Resizable: c.Window.Resizable,
		TickDelta: c.Animation.TickDelta,
		Input:     c.Input,
		Render:    c.Render,

		ScreenshotDir: c.Window.ScreenshotDir,
	}
}

// Run opens a window and animates engine until the window is closed. Each
// Ebitengine update polls input, steps the camera and ticks the engine once;
// each draw clears to the snapshot background and renders the points.
func Run(engine *Engine, cam *Camera, cfg RunConfig) error {
	g := newHost(engine, cam, cfg)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g.log.Info("starting animation",
		"particles", engine.Len(),
		"width", cfg.Width,
		"height", cfg.Height,
		"tick_delta", cfg.TickDelta,
	)
	return ebiten.RunGame(g)
}

// host implements ebiten.Game around an Engine.
type host struct {
	engine   *Engine
	cam      *Camera
	renderer *PointRenderer
	ctrl     *controller
	cfg      RunConfig
	log      *slog.Logger
	script   *Script

	injectQueue     []inputFrame
	screenshotQueue []string
	frames          uint64
}

func newHost(engine *Engine, cam *Camera, cfg RunConfig) *host {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &host{
		engine:   engine,
		cam:      cam,
		renderer: NewPointRenderer(cfg.Render),
		ctrl:     newController(engine, cam, cfg.Input),
		cfg:      cfg,
		log:      logger,
		script:   cfg.Script,
	}
}

func (h *host) Update() error {
	if h.script != nil {
		if h.script.exit {
			h.log.Info("script finished", "time", h.engine.Time())
			return ebiten.Termination
		}
		h.script.step(h)
	}
	in, ok := h.nextInput()
	if !ok {
		in = readInput()
	}
	h.step(in, float32(1.0/float64(ebiten.TPS())))
	return nil
}

// step applies one frame of input and advances the camera and engine.
func (h *host) step(in inputFrame, dt float32) {
	wasPaused := h.ctrl.paused
	h.ctrl.apply(in)
	if h.ctrl.paused != wasPaused {
		h.log.Debug("pause toggled", "paused", h.ctrl.paused, "time", h.engine.Time())
	}
	if in.screenshot {
		h.Screenshot("frame")
	}
	h.cam.Update(dt)
	if !h.ctrl.paused {
		h.engine.Tick(h.cfg.TickDelta)
	}
}

func (h *host) Draw(screen *ebiten.Image) {
	snap := h.engine.Snapshot()
	screen.Fill(snap.Background.RGBA())
	h.renderer.Draw(screen, snap, h.cam)
	h.debugLog(h.renderer.stats)
	// Captured before the overlay so screenshots show only the animation.
	h.flushScreenshots(screen)
	if h.cfg.ShowFPS {
		drawStats(screen, h)
	}
}

func (h *host) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, ht := h.cam.Size()
	if w != outsideWidth || ht != outsideHeight {
		h.cam.Resize(outsideWidth, outsideHeight)
		h.log.Debug("resize", "width", outsideWidth, "height", outsideHeight)
	}
	return outsideWidth, outsideHeight
}
