package slide

// ScrollAxis is a bitmask of nested scroll axes.
type ScrollAxis uint8

const (
	AxisHorizontal ScrollAxis = 1 << iota
	AxisVertical
)

// NestedScrollParent is implemented by Layout so that a scrollable child can
// hand it the scroll distance it could not use. Distances follow the
// scroll convention: positive dy means content scrolls towards its end
// (pointer moving up).
type NestedScrollParent interface {
	OnStartNestedScroll(axes ScrollAxis) bool
	OnNestedScrollAccepted(axes ScrollAxis)
	OnNestedPreScroll(dx, dy float64) (consumedY float64)
	OnNestedScroll(dxConsumed, dyConsumed, dxUnconsumed, dyUnconsumed float64)
	OnStopNestedScroll()
}

var _ NestedScrollParent = (*Layout)(nil)

// OnStartNestedScroll accepts vertical nested scrolls only.
func (l *Layout) OnStartNestedScroll(axes ScrollAxis) bool {
	return axes&AxisVertical != 0
}

// OnNestedScrollAccepted marks a nested scroll as in progress. Raw pointer
// events are refused until OnStopNestedScroll.
func (l *Layout) OnNestedScrollAccepted(axes ScrollAxis) {
	l.nestedScroll = true
}

// OnNestedPreScroll consumes the whole vertical distance while dragging, so
// the child does not scroll under a moving overlay.
func (l *Layout) OnNestedPreScroll(dx, dy float64) (consumedY float64) {
	if l.phase != PhaseDragging {
		return 0
	}
	l.drag(dy)
	return dy
}

// OnNestedScroll starts a drag when the child reports unconsumed downward
// scroll (it hit its top edge) and feeds the unconsumed distance into it.
func (l *Layout) OnNestedScroll(dxConsumed, dyConsumed, dxUnconsumed, dyUnconsumed float64) {
	if dyUnconsumed < 0 && l.phase == PhaseIdle {
		l.startDrag()
	}
	if l.phase == PhaseDragging {
		l.drag(dyUnconsumed)
	}
}

// OnStopNestedScroll ends the nested scroll and releases any drag it drove.
func (l *Layout) OnStopNestedScroll() {
	l.nestedScroll = false
	l.releaseDrag()
}

// NestedScrollInProgress reports whether a child is currently relaying
// scroll distance.
func (l *Layout) NestedScrollInProgress() bool {
	return l.nestedScroll
}
