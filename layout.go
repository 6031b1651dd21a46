package slide

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/tanema/gween/ease"
)

// dragSession exists only while a drag is in progress.
type dragSession struct {
	start time.Time
	dy    float64 // signed sum of vertical deltas since start
}

// Layout coordinates a content surface and an overlay surface stacked on top
// of it. It turns drags, flings, nested scrolls and explicit Show/Hide calls
// into one overlay offset in [0, MaxOffset], settles the overlay into its
// committed State with an animation, and reports progress to listeners.
//
// A Layout is single-threaded: call every method from the game loop.
type Layout struct {
	// Committed state and transient activity
	state   State
	phase   Phase
	session *dragSession

	// Surfaces, in attach order: content first, overlay second
	content Surface
	overlay Surface

	// Offset model
	maxOffset      float64
	inset          int // configured pixels subtracted from the overlay height
	parallaxFactor float64
	minScroll      float64
	lastProgress   float64

	// Behavior
	clipContent   bool
	intercept     bool
	flingVelocity float64 // px/ms, density applied
	duration      time.Duration
	curve         ease.TweenFunc

	// Settle animation
	animator    Animator
	tweens      *TweenAnimator // non-nil when animator is the built-in one
	contentAnim Animation
	overlayAnim Animation

	// Input
	nestedScroll bool
	detector     GestureDetector
	now          func() time.Time

	listeners listenerRegistry

	debug    bool
	debugOut io.Writer
}

// New creates a Layout from cfg. Surfaces are attached afterwards with
// AddSurface; until both are present every drag and offset operation is a
// no-op.
func New(cfg Config) (*Layout, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new layout: %w", err)
	}
	tweens := NewTweenAnimator()
	return &Layout{
		state:          cfg.InitialOverlayState,
		inset:          cfg.Offset,
		parallaxFactor: cfg.ParallaxFactor,
		minScroll:      cfg.MinScroll,
		lastProgress:   -1,
		clipContent:    cfg.ClipContent,
		intercept:      cfg.InterceptTouchEvents,
		flingVelocity:  cfg.flingThreshold(),
		duration:       cfg.animationDuration(),
		curve:          cfg.curve(),
		animator:       tweens,
		tweens:         tweens,
		now:            time.Now,
		debugOut:       os.Stderr,
	}, nil
}

// --- Surfaces ---

// AddSurface attaches a surface. The first surface is the content, the
// second the overlay. Attaching the second surface lays the pair out in the
// committed state. A third surface returns ErrInvalidTopology.
func (l *Layout) AddSurface(s Surface) error {
	if s == nil {
		return fmt.Errorf("add surface: nil surface: %w", ErrInvalidArgument)
	}
	switch {
	case l.content == nil:
		l.content = s
	case l.overlay == nil:
		l.overlay = s
		l.Relayout()
	default:
		l.debugf("rejecting third surface")
		return fmt.Errorf("add surface: %w", ErrInvalidTopology)
	}
	return nil
}

// Content returns the content surface, or nil before it is attached.
func (l *Layout) Content() Surface { return l.content }

// Overlay returns the overlay surface, or nil before it is attached.
func (l *Layout) Overlay() Surface { return l.overlay }

func (l *Layout) hasTargets() bool {
	return l.content != nil && l.overlay != nil
}

// Relayout recomputes the travel distance after the overlay's geometry or
// the configured offset changed. While idle the surfaces snap to the
// committed state; mid-drag the offset is re-clamped; a running settle is
// restarted towards the new resting position.
func (l *Layout) Relayout() {
	if !l.hasTargets() {
		return
	}
	l.maxOffset = max(0, l.overlay.Height()-float64(l.inset))
	switch l.phase {
	case PhaseIdle:
		l.snapToState()
	case PhaseDragging:
		if l.overlay.TranslationY() > l.maxOffset {
			l.applyDrag(l.overlay.TranslationY() - l.maxOffset)
		}
	case PhaseSettling:
		l.animateToState()
	}
}

// restingTranslations returns the content and overlay translations for a
// fully settled state.
func (l *Layout) restingTranslations(s State) (content, overlay float64) {
	if s == StateHidden {
		return 0, l.maxOffset
	}
	return -l.maxOffset * l.parallaxFactor, 0
}

// snapToState places both surfaces at the committed state without animating.
func (l *Layout) snapToState() {
	c, o := l.restingTranslations(l.state)
	l.content.SetTranslationY(c)
	l.overlay.SetTranslationY(o)
	l.updateClip()
	if l.state == StateHidden {
		l.dispatchProgress(1)
	} else {
		l.dispatchProgress(0)
	}
}

// --- Queries ---

// State returns the committed overlay state.
func (l *Layout) State() State { return l.state }

// Phase returns what the coordinator is currently doing.
func (l *Layout) Phase() Phase { return l.phase }

// IsOverlayShowing reports whether the committed state is StateVisible.
func (l *Layout) IsOverlayShowing() bool { return l.state == StateVisible }

// Offset returns the overlay's current displacement from its fully visible
// position, in [0, MaxOffset].
func (l *Layout) Offset() float64 {
	if !l.hasTargets() {
		return 0
	}
	return l.overlay.TranslationY()
}

// MaxOffset returns the overlay's travel distance.
func (l *Layout) MaxOffset() float64 { return l.maxOffset }

// Progress returns Offset / MaxOffset: 0 fully visible, 1 fully hidden.
// With no travel distance it reports the committed state.
func (l *Layout) Progress() float64 {
	return l.progressAt(l.Offset())
}

func (l *Layout) progressAt(offset float64) float64 {
	if l.maxOffset <= 0 {
		if l.state == StateHidden {
			return 1
		}
		return 0
	}
	return offset / l.maxOffset
}

// Dragging reports whether a drag session is active.
func (l *Layout) Dragging() bool { return l.phase == PhaseDragging }

// --- Configuration setters ---

// SetInitialOverlayState changes the committed state. When idle with both
// surfaces attached, the surfaces snap to it.
func (l *Layout) SetInitialOverlayState(s State) error {
	if s != StateHidden && s != StateVisible {
		return fmt.Errorf("initial overlay state %d: %w", s, ErrInvalidArgument)
	}
	l.state = s
	if l.hasTargets() && l.phase == PhaseIdle {
		l.snapToState()
	}
	return nil
}

// SetParallaxFactor sets how much of the overlay's motion is mirrored onto
// the content surface. f must be in [0, 1].
func (l *Layout) SetParallaxFactor(f float64) error {
	if err := checkParallax(f); err != nil {
		return err
	}
	l.parallaxFactor = f
	l.Relayout()
	return nil
}

// ParallaxFactor returns the current parallax factor.
func (l *Layout) ParallaxFactor() float64 { return l.parallaxFactor }

// SetOffset sets the pixels subtracted from the overlay height to give the
// travel distance. Negative values extend the travel.
func (l *Layout) SetOffset(px int) {
	l.inset = px
	l.Relayout()
}

// SetMinScroll sets the fraction of travel, in [0.1, 0.9], a released drag
// must cover to change the overlay state.
func (l *Layout) SetMinScroll(f float64) error {
	if err := checkMinScroll(f); err != nil {
		return err
	}
	l.minScroll = f
	return nil
}

// MinScroll returns the release hysteresis fraction.
func (l *Layout) MinScroll() float64 { return l.minScroll }

// SetAnimationDuration sets the settle animation length for subsequent
// settles. Negative durations are treated as zero.
func (l *Layout) SetAnimationDuration(d time.Duration) {
	l.duration = max(0, d)
}

// SetAnimationCurve sets the settle easing. nil restores the default.
func (l *Layout) SetAnimationCurve(fn ease.TweenFunc) {
	if fn == nil {
		fn = ease.OutQuad
	}
	l.curve = fn
}

// SetClipContent enables or disables clipping the content surface to the
// area not covered by the overlay. Disable it for translucent overlays.
func (l *Layout) SetClipContent(enabled bool) {
	if l.clipContent == enabled {
		return
	}
	l.clipContent = enabled
	if !l.hasTargets() {
		return
	}
	if enabled {
		l.updateClip()
		return
	}
	l.content.SetClip(nil)
	l.content.SetVisible(true)
}

// SetInterceptTouchEvents makes the Layout claim pointer events that land
// above the overlay's visible top edge.
func (l *Layout) SetInterceptTouchEvents(intercept bool) {
	l.intercept = intercept
}

// SetAnimator replaces the settle animator. nil restores the built-in
// TweenAnimator. Must not be called while settling.
func (l *Layout) SetAnimator(a Animator) {
	if a == nil {
		l.tweens = NewTweenAnimator()
		l.animator = l.tweens
		return
	}
	l.animator = a
	l.tweens, _ = a.(*TweenAnimator)
}

// SetClock replaces the clock used to time drag sessions.
func (l *Layout) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	l.now = now
}

// --- Listeners ---

// AddProgressListener registers fn to receive progress changes, in
// registration order. A nil fn is ignored and returns a zero handle.
func (l *Layout) AddProgressListener(fn ProgressFunc) ListenerHandle {
	if fn == nil {
		return ListenerHandle{}
	}
	return l.listeners.add(fn)
}

// RemoveProgressListener unregisters the listener behind h.
func (l *Layout) RemoveProgressListener(h ListenerHandle) {
	if h.reg != &l.listeners {
		return
	}
	h.Remove()
}

// --- Persistence ---

// Capture returns the state to persist across sessions.
func (l *Layout) Capture() SavedState {
	return SavedState(l.state)
}

// Restore applies a previously captured state. When idle with both surfaces
// attached, the surfaces snap to it.
func (l *Layout) Restore(s SavedState) error {
	if err := l.SetInitialOverlayState(State(s)); err != nil {
		return fmt.Errorf("restore: %w", err)
	}
	return nil
}

// --- Frame ---

// Update advances the built-in settle animator by dt seconds. Call it once
// per frame. It does nothing when a custom Animator is installed.
func (l *Layout) Update(dt float32) {
	if l.tweens != nil {
		l.tweens.Update(dt)
	}
}

func (l *Layout) setPhase(p Phase) {
	if l.phase == p {
		return
	}
	l.debugf("phase %s -> %s", l.phase, p)
	l.phase = p
}
