package heartbloom

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// drawStats prints FPS, TPS and animation state in the top-left corner.
func drawStats(screen *ebiten.Image, h *host) {
	ebitenutil.DebugPrint(screen, statsText(h, ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func statsText(h *host, fps, tps float64) string {
	snap := h.engine.Snapshot()
	state := "running"
	if h.ctrl.paused {
		state = "paused"
	}
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\npoints: %d/%d\nphase: %.3f  transition: %.3f\nspin: %.4f  %s",
		fps, tps,
		h.renderer.Drawn(), snap.Len(),
		snap.Phase, snap.Transition,
		h.engine.RotationSpeed(), state,
	)
}
