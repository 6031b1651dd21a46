package ebitenslide

import (
	"fmt"
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/slide"
)

// whitePixel is a 1x1 white image scaled and tinted to fill panels.
// Created on first draw, after the graphics driver is up.
var whitePixel *ebiten.Image

func pixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(image.White)
	}
	return whitePixel
}

// Draw renders the content panel, then the overlay on top. It implements
// ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	if h.ClearColor != nil {
		screen.Fill(h.ClearColor)
	}
	drawPanel(screen, h.content, h.DrawContent)
	drawPanel(screen, h.overlay, h.DrawOverlay)

	if h.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.0f  progress: %.2f  %s/%s",
			ebiten.ActualFPS(), h.layout.Progress(), h.layout.State(), h.layout.Phase()))
	}
	h.flushCaptures(screen)
}

// panelRect converts a panel's visible bounds to whole screen pixels.
func panelRect(p *slide.Panel) (image.Rectangle, bool) {
	r, ok := p.Bounds()
	if !ok {
		return image.Rectangle{}, false
	}
	rect := image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.Width)), int(math.Ceil(r.Y+r.Height)),
	)
	return rect, !rect.Empty()
}

// drawPanel fills the panel's visible area with its color, premultiplied,
// then lets fn draw inside the clipped sub-image.
func drawPanel(screen *ebiten.Image, p *slide.Panel, fn func(*ebiten.Image, *slide.Panel)) {
	rect, ok := panelRect(p)
	if !ok {
		return
	}
	rect = rect.Intersect(screen.Bounds())
	if rect.Empty() {
		return
	}
	dst := screen.SubImage(rect).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	a := p.Color[3]
	op.ColorScale.Scale(float32(p.Color[0]*a), float32(p.Color[1]*a), float32(p.Color[2]*a), float32(a))
	dst.DrawImage(pixel(), op)

	if fn != nil {
		fn(dst, p)
	}
}
