package heartbloom

// Synthetic input is queued as whole frames. While the queue is non-empty
// the host consumes one queued frame per tick instead of polling ebiten, so
// scripted runs behave identically to a user at the keyboard.

// injectPress queues a frame with the pointer pressed at (x, y).
func (h *host) injectPress(x, y float64) {
	h.injectQueue = append(h.injectQueue, inputFrame{cursorX: x, cursorY: y, pressed: true})
}

// injectRelease queues a frame with the pointer released at (x, y).
func (h *host) injectRelease(x, y float64) {
	h.injectQueue = append(h.injectQueue, inputFrame{cursorX: x, cursorY: y})
}

// injectDrag queues a press at (fromX, fromY), moves linearly interpolated
// over frames frames that end at (toX, toY), and a release there. The
// sequence consumes frames+2 frames.
func (h *host) injectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	h.injectPress(fromX, fromY)
	for i := 1; i <= frames; i++ {
		t := float64(i) / float64(frames)
		h.injectPress(lerp(fromX, toX, t), lerp(fromY, toY, t))
	}
	h.injectRelease(toX, toY)
}

// injectFrame queues an arbitrary frame, used for wheel and key actions.
func (h *host) injectFrame(in inputFrame) {
	h.injectQueue = append(h.injectQueue, in)
}

// nextInput pops the next injected frame. ok is false when the queue is
// empty and real input should be read instead.
func (h *host) nextInput() (in inputFrame, ok bool) {
	if len(h.injectQueue) == 0 {
		return inputFrame{}, false
	}
	in = h.injectQueue[0]
	copy(h.injectQueue, h.injectQueue[1:])
	h.injectQueue = h.injectQueue[:len(h.injectQueue)-1]
	return in, true
}
