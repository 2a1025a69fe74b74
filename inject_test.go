package heartbloom

import "testing"

func TestInjectDragSequence(t *testing.T) {
	h := newTestHost(t)
	h.injectDrag(0, 0, 100, 50, 2)

	want := []inputFrame{
		{cursorX: 0, cursorY: 0, pressed: true},
		{cursorX: 50, cursorY: 25, pressed: true},
		{cursorX: 100, cursorY: 50, pressed: true},
		{cursorX: 100, cursorY: 50},
	}
	if len(h.injectQueue) != len(want) {
		t.Fatalf("queued %d frames, want %d", len(h.injectQueue), len(want))
	}
	for i, w := range want {
		if h.injectQueue[i] != w {
			t.Errorf("frame %d = %+v, want %+v", i, h.injectQueue[i], w)
		}
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	h := newTestHost(t)
	h.injectDrag(0, 0, 10, 10, 0)
	if len(h.injectQueue) != 3 {
		t.Errorf("queued %d frames, want 3", len(h.injectQueue))
	}
}

func TestNextInputIsFIFO(t *testing.T) {
	h := newTestHost(t)
	if _, ok := h.nextInput(); ok {
		t.Fatal("empty queue returned a frame")
	}
	h.injectFrame(inputFrame{wheelY: 1})
	h.injectFrame(inputFrame{wheelY: 2})
	a, _ := h.nextInput()
	b, _ := h.nextInput()
	if a.wheelY != 1 || b.wheelY != 2 {
		t.Errorf("order = %v, %v; want 1, 2", a.wheelY, b.wheelY)
	}
	if len(h.injectQueue) != 0 {
		t.Errorf("queue len = %d, want 0", len(h.injectQueue))
	}
}
