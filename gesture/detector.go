// Package gesture recognizes scrolls and flings from raw pointer events and
// reports them to a slide.GestureListener.
package gesture

import (
	"math"

	"github.com/phanxgames/slide"
)

const (
	// DefaultTouchSlop is the distance in pixels a pointer must travel
	// before movement is reported as a scroll.
	DefaultTouchSlop = 8.0
	// DefaultMinFlingVelocity is the release speed in px/s below which no
	// fling is reported.
	DefaultMinFlingVelocity = 50.0

	velocityWindowMs = 100 // only samples this recent count towards velocity
	maxSamples       = 16
)

type sample struct {
	x, y float64
	t    int64
}

// Detector tracks a single pointer: the first one to go down owns the
// gesture until it is lifted; other pointers are ignored.
type Detector struct {
	listener slide.GestureListener

	TouchSlop        float64
	MinFlingVelocity float64

	down      bool
	pointerID int
	startX    float64
	startY    float64
	lastX     float64
	lastY     float64
	scrolling bool

	samples [maxSamples]sample
	head    int // next write index
	count   int
}

// New returns a Detector reporting to listener with default thresholds.
func New(listener slide.GestureListener) *Detector {
	return &Detector{
		listener:         listener,
		TouchSlop:        DefaultTouchSlop,
		MinFlingVelocity: DefaultMinFlingVelocity,
	}
}

// OnTouchEvent feeds one raw pointer event.
func (d *Detector) OnTouchEvent(ev slide.PointerEvent) {
	switch ev.Action {
	case slide.PointerDown:
		if d.down {
			return
		}
		d.down = true
		d.pointerID = ev.PointerID
		d.startX, d.startY = ev.X, ev.Y
		d.lastX, d.lastY = ev.X, ev.Y
		d.scrolling = false
		d.resetSamples()
		d.addSample(ev)
		d.listener.OnDown()

	case slide.PointerMove:
		if !d.down || ev.PointerID != d.pointerID {
			return
		}
		d.addSample(ev)
		if !d.scrolling {
			dx := ev.X - d.startX
			dy := ev.Y - d.startY
			if math.Sqrt(dx*dx+dy*dy) <= d.TouchSlop {
				return
			}
			d.scrolling = true
		}
		if ev.X == d.lastX && ev.Y == d.lastY {
			return
		}
		d.listener.OnScroll(d.lastX-ev.X, d.lastY-ev.Y)
		d.lastX, d.lastY = ev.X, ev.Y

	case slide.PointerUp:
		if !d.down || ev.PointerID != d.pointerID {
			return
		}
		d.addSample(ev)
		if d.scrolling {
			vx, vy := d.velocity()
			if math.Max(math.Abs(vx), math.Abs(vy)) > d.MinFlingVelocity {
				d.listener.OnFling(vx, vy)
			}
		}
		d.down = false
		d.scrolling = false

	case slide.PointerCancel:
		d.down = false
		d.scrolling = false
		d.resetSamples()
	}
}

// Scrolling reports whether the tracked pointer has passed the touch slop.
func (d *Detector) Scrolling() bool { return d.scrolling }

func (d *Detector) resetSamples() {
	d.head = 0
	d.count = 0
}

func (d *Detector) addSample(ev slide.PointerEvent) {
	d.samples[d.head] = sample{x: ev.X, y: ev.Y, t: ev.TimeMs}
	d.head = (d.head + 1) % maxSamples
	if d.count < maxSamples {
		d.count++
	}
}

// velocity returns px/s between the newest sample and the oldest one inside
// the velocity window.
func (d *Detector) velocity() (vx, vy float64) {
	if d.count < 2 {
		return 0, 0
	}
	newest := d.samples[(d.head-1+maxSamples)%maxSamples]
	oldest := newest
	for i := 2; i <= d.count; i++ {
		s := d.samples[(d.head-i+maxSamples)%maxSamples]
		if newest.t-s.t > velocityWindowMs {
			break
		}
		oldest = s
	}
	dt := float64(newest.t - oldest.t)
	if dt <= 0 {
		return 0, 0
	}
	return (newest.x - oldest.x) / dt * 1000, (newest.y - oldest.y) / dt * 1000
}
