package slide

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animation is a handle to one settle tween.
type Animation interface {
	// Running reports whether the tween still has frames to emit.
	Running() bool
	// Cancel stops the tween without firing its completion callback.
	Cancel()
}

// Animator animates a float from one value to another, reporting every
// intermediate value to onStep and firing onDone exactly once at the end.
// When from == to, onDone fires synchronously and onStep is never called.
//
// An Animator keeps at most one active animation per surface: Start on a
// surface that is already animating cancels the old tween and replaces it.
type Animator interface {
	Start(target SurfaceID, from, to float64, duration time.Duration, curve ease.TweenFunc,
		onStep func(v float64), onDone func()) Animation
}

// Tween is the Animation returned by TweenAnimator.
type Tween struct {
	tween   *gween.Tween
	to      float64
	onStep  func(float64)
	onDone  func()
	running bool
}

// Running reports whether the tween is still advancing.
func (t *Tween) Running() bool { return t.running }

// Cancel stops the tween. The completion callback does not fire.
func (t *Tween) Cancel() { t.running = false }

// finish emits the final value and the completion callback.
func (t *Tween) finish(emitFinal bool) {
	t.running = false
	if emitFinal && t.onStep != nil {
		t.onStep(t.to)
	}
	if t.onDone != nil {
		t.onDone()
	}
}

// TweenAnimator is a frame-driven Animator built on gween. Call Update once
// per frame with the frame delta.
type TweenAnimator struct {
	slots [2]*Tween // indexed by SurfaceID
}

// NewTweenAnimator returns an animator with no active tweens.
func NewTweenAnimator() *TweenAnimator {
	return &TweenAnimator{}
}

// Start begins a tween on target, replacing any tween already running there.
// A nil curve falls back to ease.Linear.
func (a *TweenAnimator) Start(target SurfaceID, from, to float64, duration time.Duration,
	curve ease.TweenFunc, onStep func(v float64), onDone func()) Animation {
	if curve == nil {
		curve = ease.Linear
	}
	slot := int(target) % len(a.slots)
	if old := a.slots[slot]; old != nil {
		old.Cancel()
		a.slots[slot] = nil
	}

	t := &Tween{to: to, onStep: onStep, onDone: onDone, running: true}
	if from == to {
		t.finish(false)
		return t
	}
	if duration <= 0 {
		t.finish(true)
		return t
	}
	t.tween = gween.New(float32(from), float32(to), float32(duration.Seconds()), curve)
	a.slots[slot] = t
	return t
}

// Update advances every active tween by dt seconds, emitting intermediate
// values and completions. Slots are advanced in SurfaceID order, content
// before overlay.
func (a *TweenAnimator) Update(dt float32) {
	for i, t := range a.slots {
		if t == nil {
			continue
		}
		if !t.running {
			a.slots[i] = nil
			continue
		}
		val, finished := t.tween.Update(dt)
		if finished {
			// Free the slot first so onDone may start a replacement.
			a.slots[i] = nil
			t.finish(true)
			continue
		}
		if t.onStep != nil {
			t.onStep(float64(val))
		}
	}
}

// Active reports whether target has a running tween.
func (a *TweenAnimator) Active(target SurfaceID) bool {
	t := a.slots[int(target)%len(a.slots)]
	return t != nil && t.running
}
