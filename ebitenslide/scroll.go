package ebitenslide

import "github.com/phanxgames/slide"

const (
	defaultWheelStep  = 40.0 // px per wheel notch
	defaultIdleFrames = 6    // frames without scrolling before the nested scroll stops
)

// Scroller is a vertically scrollable child that relays the distance it
// cannot use to a nested scroll parent, typically the overlay's list.
// Position 0 is the top; Extent is the largest scroll position.
type Scroller struct {
	parent slide.NestedScrollParent

	Position   float64
	Extent     float64
	WheelStep  float64
	IdleFrames int

	active bool
	idle   int
}

// NewScroller returns a Scroller at the top of a list that can scroll extent
// pixels, relaying to parent.
func NewScroller(parent slide.NestedScrollParent, extent float64) *Scroller {
	return &Scroller{
		parent:     parent,
		Extent:     max(0, extent),
		WheelStep:  defaultWheelStep,
		IdleFrames: defaultIdleFrames,
	}
}

// Wheel scrolls by one wheel offset as reported by ebiten.Wheel: positive
// yoff scrolls towards the top.
func (s *Scroller) Wheel(yoff float64) {
	s.ScrollBy(-yoff * s.WheelStep)
}

// ScrollBy scrolls dy pixels, positive towards the end of the list. The
// parent sees the distance first and may consume it; whatever the list
// cannot absorb is passed back as unconsumed.
func (s *Scroller) ScrollBy(dy float64) {
	s.idle = 0
	if !s.active && s.parent.OnStartNestedScroll(slide.AxisVertical) {
		s.parent.OnNestedScrollAccepted(slide.AxisVertical)
		s.active = true
	}
	if s.active {
		dy -= s.parent.OnNestedPreScroll(0, dy)
	}
	consumed := s.scrollSelf(dy)
	if s.active {
		s.parent.OnNestedScroll(0, consumed, 0, dy-consumed)
	}
}

func (s *Scroller) scrollSelf(dy float64) float64 {
	next := min(max(s.Position+dy, 0), s.Extent)
	consumed := next - s.Position
	s.Position = next
	return consumed
}

// Tick ends the nested scroll once the list has been idle for IdleFrames
// frames. Call it once per frame.
func (s *Scroller) Tick() {
	if !s.active {
		return
	}
	s.idle++
	if s.idle >= s.IdleFrames {
		s.Stop()
	}
}

// Stop ends the nested scroll immediately.
func (s *Scroller) Stop() {
	if !s.active {
		return
	}
	s.active = false
	s.idle = 0
	s.parent.OnStopNestedScroll()
}

// Active reports whether a nested scroll is in progress.
func (s *Scroller) Active() bool { return s.active }
