package gesture

import (
	"math"
	"testing"

	"github.com/phanxgames/slide"
)

type call struct {
	kind   string
	dx, dy float64
}

type recordingListener struct {
	calls []call
}

func (r *recordingListener) OnDown() bool {
	r.calls = append(r.calls, call{kind: "down"})
	return true
}

func (r *recordingListener) OnScroll(dx, dy float64) bool {
	r.calls = append(r.calls, call{kind: "scroll", dx: dx, dy: dy})
	return true
}

func (r *recordingListener) OnFling(vx, vy float64) bool {
	r.calls = append(r.calls, call{kind: "fling", dx: vx, dy: vy})
	return true
}

func (r *recordingListener) kinds() []string {
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.kind
	}
	return out
}

func ev(action slide.PointerAction, id int, x, y float64, ms int64) slide.PointerEvent {
	return slide.PointerEvent{Action: action, PointerID: id, X: x, Y: y, TimeMs: ms}
}

func equalKinds(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDetectorScrollAndFling(t *testing.T) {
	rec := &recordingListener{}
	d := New(rec)

	d.OnTouchEvent(ev(slide.PointerDown, 0, 0, 100, 0))
	d.OnTouchEvent(ev(slide.PointerMove, 0, 0, 103, 16)) // inside slop
	if d.Scrolling() {
		t.Fatal("scrolling inside touch slop")
	}
	d.OnTouchEvent(ev(slide.PointerMove, 0, 0, 120, 32))
	d.OnTouchEvent(ev(slide.PointerMove, 0, 0, 150, 48))
	d.OnTouchEvent(ev(slide.PointerUp, 0, 0, 150, 64))

	want := []string{"down", "scroll", "scroll", "fling"}
	if !equalKinds(rec.kinds(), want) {
		t.Fatalf("calls = %v, want %v", rec.kinds(), want)
	}
	// Scroll distance is previous minus current: pointer moving down is negative.
	if rec.calls[1].dy != -20 || rec.calls[2].dy != -30 {
		t.Errorf("scroll dy = %v, %v; want -20, -30", rec.calls[1].dy, rec.calls[2].dy)
	}
	if vy := rec.calls[3].dy; math.Abs(vy-781.25) > 1e-9 {
		t.Errorf("fling vy = %v, want 781.25 px/s", vy)
	}
	if d.Scrolling() {
		t.Error("still scrolling after up")
	}
}

func TestDetectorNoFlingAfterPause(t *testing.T) {
	rec := &recordingListener{}
	d := New(rec)

	d.OnTouchEvent(ev(slide.PointerDown, 0, 0, 0, 0))
	d.OnTouchEvent(ev(slide.PointerMove, 0, 0, 20, 500))
	d.OnTouchEvent(ev(slide.PointerUp, 0, 0, 20, 1000))

	want := []string{"down", "scroll"}
	if !equalKinds(rec.kinds(), want) {
		t.Errorf("calls = %v, want %v", rec.kinds(), want)
	}
}

func TestDetectorTapIsNotAScroll(t *testing.T) {
	rec := &recordingListener{}
	d := New(rec)

	d.OnTouchEvent(ev(slide.PointerDown, 0, 10, 10, 0))
	d.OnTouchEvent(ev(slide.PointerMove, 0, 12, 14, 10))
	d.OnTouchEvent(ev(slide.PointerUp, 0, 12, 14, 20))

	if !equalKinds(rec.kinds(), []string{"down"}) {
		t.Errorf("calls = %v, want only down", rec.kinds())
	}
}

func TestDetectorTracksFirstPointerOnly(t *testing.T) {
	rec := &recordingListener{}
	d := New(rec)

	d.OnTouchEvent(ev(slide.PointerDown, 1, 0, 0, 0))
	d.OnTouchEvent(ev(slide.PointerDown, 2, 50, 50, 5))
	d.OnTouchEvent(ev(slide.PointerMove, 2, 50, 150, 10))
	d.OnTouchEvent(ev(slide.PointerUp, 2, 50, 150, 15))

	if !equalKinds(rec.kinds(), []string{"down"}) {
		t.Fatalf("calls = %v, want only the first down", rec.kinds())
	}

	d.OnTouchEvent(ev(slide.PointerMove, 1, 0, -40, 20))
	if !equalKinds(rec.kinds(), []string{"down", "scroll"}) {
		t.Errorf("calls = %v, want tracked pointer to scroll", rec.kinds())
	}
	if rec.calls[1].dy != 40 {
		t.Errorf("scroll dy = %v, want 40", rec.calls[1].dy)
	}
}

func TestDetectorCancel(t *testing.T) {
	rec := &recordingListener{}
	d := New(rec)

	d.OnTouchEvent(ev(slide.PointerDown, 0, 0, 0, 0))
	d.OnTouchEvent(ev(slide.PointerMove, 0, 0, 50, 10))
	d.OnTouchEvent(ev(slide.PointerCancel, 0, 0, 50, 20))
	d.OnTouchEvent(ev(slide.PointerUp, 0, 0, 90, 30))

	if !equalKinds(rec.kinds(), []string{"down", "scroll"}) {
		t.Errorf("calls = %v, want no fling after cancel", rec.kinds())
	}
}

func TestDetectorMinFlingVelocity(t *testing.T) {
	tests := []struct {
		name  string
		min   float64
		fling bool
	}{
		{"below threshold", 1000, false},
		{"above threshold", 100, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recordingListener{}
			d := New(rec)
			d.MinFlingVelocity = tt.min

			// 40px in 80ms: 500 px/s
			d.OnTouchEvent(ev(slide.PointerDown, 0, 0, 0, 0))
			d.OnTouchEvent(ev(slide.PointerMove, 0, 0, 20, 40))
			d.OnTouchEvent(ev(slide.PointerUp, 0, 0, 40, 80))

			got := len(rec.calls) > 0 && rec.calls[len(rec.calls)-1].kind == "fling"
			if got != tt.fling {
				t.Errorf("fling = %v, want %v (calls %v)", got, tt.fling, rec.kinds())
			}
		})
	}
}

func TestDetectorDrivesLayout(t *testing.T) {
	cfg := slide.DefaultConfig()
	cfg.InitialOverlayState = slide.StateVisible
	l, err := slide.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	_ = l.AddSurface(slide.NewPanel("content", 100, 400))
	_ = l.AddSurface(slide.NewPanel("overlay", 100, 400))
	l.SetGestureDetector(New(l))

	l.HandlePointer(ev(slide.PointerDown, 0, 50, 10, 0))
	l.HandlePointer(ev(slide.PointerMove, 0, 50, 60, 16))
	if !l.Dragging() || l.Offset() != 50 {
		t.Fatalf("dragging %v offset %v, want drag at 50", l.Dragging(), l.Offset())
	}
	l.HandlePointer(ev(slide.PointerMove, 0, 50, 210, 32))
	l.HandlePointer(ev(slide.PointerUp, 0, 50, 260, 48))

	// Downward fling hides.
	if l.State() != slide.StateHidden || l.Phase() != slide.PhaseSettling {
		t.Errorf("state %v phase %v, want hidden settling", l.State(), l.Phase())
	}
}
