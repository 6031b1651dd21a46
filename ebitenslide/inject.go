package ebitenslide

// syntheticEvent represents a single injected input event. Pointer events
// are processed through the same path as real mouse input.
type syntheticEvent struct {
	x, y    float64
	pressed bool
	wheel   float64 // non-zero for wheel events
}

// InjectPress queues a pointer press at the given screen coordinates. The
// event is consumed on the next frame.
func (h *Host) InjectPress(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use it between
// InjectPress and InjectRelease to simulate a drag.
func (h *Host) InjectMove(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (h *Host) InjectRelease(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticEvent{x: x, y: y, pressed: false})
}

// InjectDrag queues a full drag: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The sequence consumes `frames` frames; the minimum is 2.
func (h *Host) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	h.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		h.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	h.InjectRelease(toX, toY)
}

// InjectWheel queues one wheel notch event. Positive yoff scrolls towards
// the top, like ebiten.Wheel.
func (h *Host) InjectWheel(yoff float64) {
	h.injectQueue = append(h.injectQueue, syntheticEvent{wheel: yoff})
}

// Pending returns the number of queued synthetic events.
func (h *Host) Pending() int {
	return len(h.injectQueue)
}

// processInjected pops one event from the queue and feeds it through the
// pointer or wheel path. Returns true if an event was consumed, in which
// case real input is skipped for the frame.
func (h *Host) processInjected() bool {
	if len(h.injectQueue) == 0 {
		return false
	}
	evt := h.injectQueue[0]
	copy(h.injectQueue, h.injectQueue[1:])
	h.injectQueue = h.injectQueue[:len(h.injectQueue)-1]

	if evt.wheel != 0 {
		if h.scroller != nil {
			h.scroller.Wheel(evt.wheel)
		}
		return true
	}
	h.processPointer(0, evt.x, evt.y, evt.pressed)
	return true
}
