package heartbloom

import "time"

// frameStats holds per-frame timing for the point renderer.
type frameStats struct {
	buildTime  time.Duration
	submitTime time.Duration
	drawn      int
	total      int
}

// debugEvery is how many frames pass between debug timing logs.
const debugEvery = 120

// debugLog logs renderer timing every debugEvery frames when RunConfig.Debug
// is set.
func (h *host) debugLog(stats frameStats) {
	if !h.cfg.Debug {
		return
	}
	h.frames++
	if h.frames%debugEvery != 0 {
		return
	}
	h.log.Debug("frame",
		"build", stats.buildTime,
		"submit", stats.submitTime,
		"total", stats.buildTime+stats.submitTime,
		"drawn", stats.drawn,
		"particles", stats.total,
		"culled", stats.total-stats.drawn,
	)
}
