package slide

// PointerAction identifies a raw pointer transition.
type PointerAction uint8

const (
	PointerDown   PointerAction = iota // button pressed or finger touched
	PointerMove                        // moved while down
	PointerUp                          // button released or finger lifted
	PointerCancel                      // the pointer stream was taken away
)

// PointerEvent is a raw pointer sample in layout coordinates.
type PointerEvent struct {
	Action    PointerAction
	PointerID int
	X, Y      float64
	// TimeMs is a monotonic timestamp in milliseconds, used by recognizers
	// to measure velocity.
	TimeMs int64
}

// GestureListener receives recognized gestures. Layout implements it.
type GestureListener interface {
	// OnDown is called when a pointer goes down.
	OnDown() bool
	// OnScroll reports the distance moved since the previous scroll, as
	// previous minus current position: positive dy means the pointer moved up.
	OnScroll(dx, dy float64) bool
	// OnFling reports the release velocity in px/s, positive dy downward.
	OnFling(vx, vy float64) bool
}

// GestureDetector turns raw pointer events into GestureListener calls. The
// recognition algorithm is supplied by the host; see package gesture for
// the stock one.
type GestureDetector interface {
	OnTouchEvent(ev PointerEvent)
}

// SetGestureDetector installs the recognizer that HandlePointer feeds.
func (l *Layout) SetGestureDetector(d GestureDetector) {
	l.detector = d
}

// HandlePointer routes a raw pointer event through the gesture detector and
// reports whether the Layout claimed it. Events are refused while a nested
// scroll is in progress, and events landing above the overlay's top edge are
// refused unless touch interception is enabled or a drag is in progress.
// Lifting the pointer releases an active drag.
func (l *Layout) HandlePointer(ev PointerEvent) bool {
	if !l.hasTargets() || l.nestedScroll {
		return false
	}
	if !l.intercept && ev.Y < l.overlay.TranslationY() && l.phase != PhaseDragging {
		return false
	}
	if l.detector != nil {
		l.detector.OnTouchEvent(ev)
	}
	if l.phase == PhaseDragging && (ev.Action == PointerUp || ev.Action == PointerCancel) {
		l.releaseDrag()
	}
	return true
}

// --- GestureListener ---

// OnDown does not start a drag on its own; it only reports whether one is
// already running.
func (l *Layout) OnDown() bool {
	return l.phase == PhaseDragging
}

// OnScroll starts a drag when idle and feeds dy into it.
func (l *Layout) OnScroll(dx, dy float64) bool {
	if l.phase == PhaseIdle {
		l.startDrag()
	}
	if l.phase != PhaseDragging {
		return false
	}
	l.drag(dy)
	return true
}

// OnFling settles immediately when the vertical velocity dominates.
func (l *Layout) OnFling(vx, vy float64) bool {
	l.fling(vx, vy)
	return true
}
