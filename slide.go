package slide

import (
	"errors"
	"fmt"
)

// State is the committed position of the overlay. It changes only when a
// hide or show transition is committed, never in the middle of a drag.
type State uint8

const (
	StateHidden  State = iota // overlay slid out, content uncovered
	StateVisible              // overlay fully covering the content
)

// String returns the lowercase name used in configuration files.
func (s State) String() string {
	switch s {
	case StateHidden:
		return "hidden"
	case StateVisible:
		return "visible"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// ParseState converts a configuration name ("hidden" or "visible") to a State.
func ParseState(name string) (State, error) {
	switch name {
	case "hidden", "gone":
		return StateHidden, nil
	case "visible":
		return StateVisible, nil
	}
	return StateHidden, fmt.Errorf("overlay state %q: %w", name, ErrInvalidArgument)
}

// Phase is the drag coordinator's transient activity.
type Phase uint8

const (
	PhaseIdle     Phase = iota // no drag, no animation
	PhaseDragging              // a drag session is accumulating deltas
	PhaseSettling              // the overlay is animating to its committed state
)

// String returns a short name for debug output.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	case PhaseSettling:
		return "settling"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// SurfaceID names one of the two surfaces managed by a Layout.
type SurfaceID uint8

const (
	SurfaceContent SurfaceID = iota // the background panel
	SurfaceOverlay                  // the draggable foreground panel
)

// String returns "content" or "overlay".
func (id SurfaceID) String() string {
	if id == SurfaceOverlay {
		return "overlay"
	}
	return "content"
}

// Rect is an axis-aligned rectangle in a surface's local coordinates. The
// origin is the top-left corner, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// SavedState is the only state that survives a save/restore cycle: the
// committed overlay state, stored as its integer value.
type SavedState int

var (
	// ErrInvalidArgument is returned when a configuration value is outside its
	// documented range. The receiver is left unchanged.
	ErrInvalidArgument = errors.New("slide: invalid argument")

	// ErrInvalidTopology is returned when more than two surfaces are attached
	// to a Layout. It is not recoverable.
	ErrInvalidTopology = errors.New("slide: layout hosts exactly two surfaces")
)
