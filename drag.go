package slide

import (
	"math"
	"time"
)

// --- Inbound drag events ---

// OnDragStart begins a drag session. It is a no-op while a drag is already
// in progress, while settling, or before both surfaces are attached, so the
// pointer and nested-scroll paths may both call it in the same tick.
func (l *Layout) OnDragStart() {
	l.startDrag()
}

// OnDragDelta feeds a vertical delta into the active drag. Positive dy moves
// the overlay up, towards fully visible.
func (l *Layout) OnDragDelta(dy float64) {
	l.drag(dy)
}

// OnDragFling resolves a fling immediately when its vertical velocity
// dominates: upward (vy < 0) shows the overlay, otherwise it hides.
func (l *Layout) OnDragFling(vx, vy float64) {
	l.fling(vx, vy)
}

// OnDragRelease ends the active drag and settles into the state chosen by
// the release policy.
func (l *Layout) OnDragRelease() {
	l.releaseDrag()
}

// --- Control ---

// Show animates the overlay to fully visible, cancelling any drag.
// Ignored while a settle animation is running.
func (l *Layout) Show() {
	l.settle(StateVisible)
}

// Hide animates the overlay to fully hidden, cancelling any drag.
// Ignored while a settle animation is running.
func (l *Layout) Hide() {
	l.settle(StateHidden)
}

// Toggle hides a showing overlay and shows a hidden one.
func (l *Layout) Toggle() {
	if l.state == StateVisible {
		l.Hide()
		return
	}
	l.Show()
}

// --- State machine ---

func (l *Layout) startDrag() bool {
	if !l.hasTargets() {
		return false
	}
	switch l.phase {
	case PhaseDragging:
		return true
	case PhaseSettling:
		return false
	}
	l.stopAnimations()
	l.session = &dragSession{start: l.now()}
	l.setPhase(PhaseDragging)
	return true
}

func (l *Layout) drag(dy float64) {
	if l.phase != PhaseDragging {
		return
	}
	l.session.dy += dy
	l.applyDrag(dy)
}

// releaseDrag picks the state to settle into. A fast drag with a negative
// accumulated delta always hides; otherwise the overlay must have travelled
// minScroll of the distance away from its committed state to flip.
func (l *Layout) releaseDrag() {
	if l.phase != PhaseDragging {
		return
	}
	if l.flung() {
		l.debugf("release: fling, forcing hide")
		l.settle(StateHidden)
		return
	}
	ty := math.Abs(l.overlay.TranslationY())
	margin := l.maxOffset * l.minScroll
	var target State
	if l.state == StateVisible {
		target = StateVisible
		if ty > margin {
			target = StateHidden
		}
	} else {
		target = StateVisible
		if ty > l.maxOffset-margin {
			target = StateHidden
		}
	}
	l.settle(target)
}

// flung reports whether the session moved fast enough, towards hidden, to
// count as a fling.
func (l *Layout) flung() bool {
	if l.session == nil || l.session.dy >= 0 {
		return false
	}
	elapsed := float64(l.now().Sub(l.session.start)) / float64(time.Millisecond)
	if elapsed < 1 {
		elapsed = 1
	}
	return math.Abs(l.session.dy/elapsed) > l.flingVelocity
}

func (l *Layout) fling(vx, vy float64) bool {
	if math.Abs(vx) >= math.Abs(vy) {
		return false
	}
	if vy < 0 {
		l.Show()
	} else {
		l.Hide()
	}
	return true
}

// settle commits target and animates both surfaces to its resting position.
// A running settle is never replaced.
func (l *Layout) settle(target State) {
	if !l.hasTargets() {
		return
	}
	if l.phase == PhaseSettling {
		l.debugf("settle to %s ignored: animation in flight", target)
		return
	}
	l.session = nil
	if l.state != target {
		l.debugf("state %s -> %s", l.state, target)
	}
	l.state = target
	l.setPhase(PhaseSettling)
	l.animateToState()
}

// animateToState starts the settle tweens from the current translations to
// the committed state's resting ones, replacing any tweens in flight.
func (l *Layout) animateToState() {
	l.stopAnimations()
	contentTo, overlayTo := l.restingTranslations(l.state)
	if l.parallaxFactor > 0 {
		l.contentAnim = l.animator.Start(SurfaceContent, l.content.TranslationY(), contentTo,
			l.duration, l.curve, l.content.SetTranslationY, nil)
	}
	// onDone may run before Start returns when the overlay is already there.
	anim := l.animator.Start(SurfaceOverlay, l.overlay.TranslationY(), overlayTo,
		l.duration, l.curve, l.stepOverlay, l.settled)
	if l.phase == PhaseSettling {
		l.overlayAnim = anim
	}
}

// stopAnimations cancels both settle tweens without firing their callbacks.
func (l *Layout) stopAnimations() {
	if l.contentAnim != nil {
		l.contentAnim.Cancel()
		l.contentAnim = nil
	}
	if l.overlayAnim != nil {
		l.overlayAnim.Cancel()
		l.overlayAnim = nil
	}
}

func (l *Layout) stepOverlay(y float64) {
	l.overlay.SetTranslationY(y)
	l.dispatchCurrentProgress()
}

// settled lands both surfaces exactly on the committed state's resting
// translations. The content tween may still be short of its target, for
// example when the overlay needed no travel, so it is stopped here.
func (l *Layout) settled() {
	l.overlayAnim = nil
	l.stopAnimations()
	c, o := l.restingTranslations(l.state)
	if l.parallaxFactor > 0 {
		l.content.SetTranslationY(c)
	}
	l.overlay.SetTranslationY(o)
	l.setPhase(PhaseIdle)
	l.updateClip()
	l.dispatchCurrentProgress()
}

// --- Offset, parallax, clip ---

// applyDrag moves the overlay by -dy, clamped to [0, maxOffset], and moves
// the content by the parallax share of the same delta.
func (l *Layout) applyDrag(dy float64) {
	ty := l.overlay.TranslationY() - dy
	switch {
	case ty < 0:
		// fully visible, cannot overshoot
		l.overlay.SetTranslationY(0)
		if l.parallaxFactor > 0 {
			l.content.SetTranslationY(-l.maxOffset * l.parallaxFactor)
		}
		l.dispatchProgress(0)
	case ty < l.maxOffset:
		l.overlay.SetTranslationY(ty)
		if l.parallaxFactor > 0 {
			l.content.SetTranslationY(l.content.TranslationY() - dy*l.parallaxFactor)
		}
		l.dispatchProgress(ty / l.maxOffset)
	default:
		// fully hidden, cannot overshoot
		l.overlay.SetTranslationY(l.maxOffset)
		if l.parallaxFactor > 0 {
			l.content.SetTranslationY(0)
		}
		l.dispatchProgress(1)
	}
}

func (l *Layout) dispatchCurrentProgress() {
	l.dispatchProgress(l.progressAt(l.overlay.TranslationY()))
}

// dispatchProgress notifies listeners when p differs from the last value
// dispatched.
func (l *Layout) dispatchProgress(p float64) {
	if p == l.lastProgress {
		return
	}
	l.lastProgress = p
	l.updateClip()
	l.listeners.dispatch(p)
}

// updateClip limits the content surface to the strip above the overlay.
// With a parallax factor of 1 both surfaces move together and nothing is
// ever covered, so the content is left alone.
func (l *Layout) updateClip() {
	if !l.clipContent || l.parallaxFactor == 1 {
		return
	}
	h := l.overlay.TranslationY() - l.content.TranslationY()
	if h <= 0 {
		if l.content.Visible() {
			l.content.SetVisible(false)
		}
		return
	}
	if !l.content.Visible() {
		l.content.SetVisible(true)
	}
	l.content.SetClip(&Rect{Width: l.content.Width(), Height: h})
}
