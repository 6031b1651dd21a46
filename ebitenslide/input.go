package ebitenslide

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/slide"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// pointerState is the per-slot press tracking.
type pointerState struct {
	down    bool
	lastX   float64
	lastY   float64
	claimed bool // the layout accepted the press
}

// inputState maps mouse and touch input onto pointer slots.
type inputState struct {
	pointers     [maxPointers]pointerState
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
}

// pollPointers reads real mouse and touch input for this frame.
func (h *Host) pollPointers() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	h.processPointer(0, float64(mx), float64(my), pressed)
	h.pollTouches()
}

// pollTouches handles touch input (pointers 1-9).
func (h *Host) pollTouches() {
	in := &h.input
	touchIDs := ebiten.AppendTouchIDs(in.prevTouchIDs[:0])
	in.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := in.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		h.processPointer(slot, float64(tx), float64(ty), true)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && !activeSlots[i] {
			ps := &in.pointers[i]
			if ps.down {
				h.processPointer(i, ps.lastX, ps.lastY, false)
			}
			in.touchUsed[i] = false
			in.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (in *inputState) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && in.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !in.touchUsed[i] {
			in.touchUsed[i] = true
			in.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer turns one pointer slot's pressed state into down, move and
// up events for the layout. Moves and the release are only forwarded for a
// press the layout claimed.
func (h *Host) processPointer(pointerID int, x, y float64, pressed bool) {
	ps := &h.input.pointers[pointerID]
	ev := slide.PointerEvent{PointerID: pointerID, X: x, Y: y, TimeMs: h.nowMs()}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ev.Action = slide.PointerDown
		ps.claimed = h.layout.HandlePointer(ev)
	case !pressed && ps.down:
		ps.down = false
		if ps.claimed {
			ev.Action = slide.PointerUp
			h.layout.HandlePointer(ev)
		}
		ps.claimed = false
	case pressed && ps.down:
		if ps.claimed && (x != ps.lastX || y != ps.lastY) {
			ev.Action = slide.PointerMove
			h.layout.HandlePointer(ev)
		}
	}
	ps.lastX = x
	ps.lastY = y
}

// pollWheel forwards mouse wheel movement to the nested scroller.
func (h *Host) pollWheel() {
	if h.scroller == nil {
		return
	}
	_, yoff := ebiten.Wheel()
	if yoff != 0 {
		h.scroller.Wheel(yoff)
	}
}
