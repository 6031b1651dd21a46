package ebitenslide

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/slide"
	"github.com/phanxgames/slide/gesture"
)

const defaultTPS = 60

// Host runs a slide.Layout inside an Ebitengine game loop. It owns the two
// panels, polls mouse and touch input into the layout's gesture detector,
// relays the mouse wheel through an optional nested Scroller, advances the
// settle animation and draws both panels.
//
// Host implements ebiten.Game. To embed it in your own game, call Update,
// Draw and Layout from yours.
type Host struct {
	layout   *slide.Layout
	content  *slide.Panel
	overlay  *slide.Panel
	detector *gesture.Detector
	scroller *Scroller

	input       inputState
	injectQueue []syntheticEvent
	script      *Script
	captures    []string

	ticks int64
	frame time.Duration

	width, height int

	// ClearColor fills the screen before the panels are drawn.
	ClearColor color.Color
	// ShowFPS prints the frame rate and progress in the top-left corner.
	ShowFPS bool
	// ScreenshotDir receives PNGs queued with Screenshot. Defaults to
	// "screenshots".
	ScreenshotDir string
	// DrawContent and DrawOverlay, when set, draw on top of each panel's
	// solid fill. dst is already clipped to the panel's visible area.
	DrawContent func(dst *ebiten.Image, p *slide.Panel)
	DrawOverlay func(dst *ebiten.Image, p *slide.Panel)
}

// NewHost builds a layout from cfg with full-screen content and overlay
// panels of the given size.
func NewHost(cfg slide.Config, width, height int) (*Host, error) {
	layout, err := slide.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("new host: %w", err)
	}
	h := &Host{
		layout:     layout,
		content:    slide.NewPanel("content", float64(width), float64(height)),
		overlay:    slide.NewPanel("overlay", float64(width), float64(height)),
		frame:      time.Second / defaultTPS,
		width:      width,
		height:     height,
		ClearColor: color.Black,
	}
	h.content.Color = [4]float64{0.18, 0.2, 0.25, 1}
	h.overlay.Color = [4]float64{0.93, 0.93, 0.9, 1}
	if err := layout.AddSurface(h.content); err != nil {
		return nil, fmt.Errorf("new host: %w", err)
	}
	if err := layout.AddSurface(h.overlay); err != nil {
		return nil, fmt.Errorf("new host: %w", err)
	}
	h.detector = gesture.New(layout)
	layout.SetGestureDetector(h.detector)
	layout.SetClock(h.now)
	return h, nil
}

// Coordinator returns the hosted layout.
func (h *Host) Coordinator() *slide.Layout { return h.layout }

// Content returns the content panel.
func (h *Host) Content() *slide.Panel { return h.content }

// Overlay returns the overlay panel.
func (h *Host) Overlay() *slide.Panel { return h.overlay }

// Detector returns the gesture detector fed by pointer input.
func (h *Host) Detector() *gesture.Detector { return h.detector }

// EnableScroller attaches a nested scrollable list of the given scroll
// extent inside the overlay. Mouse wheel input is routed through it.
func (h *Host) EnableScroller(extent float64) *Scroller {
	h.scroller = NewScroller(h.layout, extent)
	return h.scroller
}

// Scroller returns the nested scroller, or nil if none was enabled.
func (h *Host) Scroller() *Scroller { return h.scroller }

// now is the layout clock: frame-accurate and deterministic, so scripted
// drags measure the same velocity on every run.
func (h *Host) now() time.Time {
	return time.Unix(0, 0).Add(time.Duration(h.ticks) * h.frame)
}

func (h *Host) nowMs() int64 {
	return (time.Duration(h.ticks) * h.frame).Milliseconds()
}

// Update advances one frame. It implements ebiten.Game.
func (h *Host) Update() error {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = defaultTPS
	}
	h.frame = time.Second / time.Duration(tps)
	h.step(1/float32(tps), true)
	return nil
}

// step runs one frame: script, input (injected events take precedence over
// real input), nested scroll idle detection and the settle animation.
func (h *Host) step(dt float32, poll bool) {
	h.ticks++
	if h.script != nil {
		h.script.step(h)
	}
	if !h.processInjected() && poll {
		h.pollPointers()
		h.pollWheel()
	}
	if h.scroller != nil {
		h.scroller.Tick()
	}
	h.layout.Update(dt)
}

// Layout resizes both panels to the window and recomputes the overlay's
// travel. It implements ebiten.Game.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != h.width || outsideHeight != h.height {
		h.width, h.height = outsideWidth, outsideHeight
		h.content.Resize(float64(outsideWidth), float64(outsideHeight))
		h.overlay.Resize(float64(outsideWidth), float64(outsideHeight))
		h.layout.Relayout()
	}
	return outsideWidth, outsideHeight
}
