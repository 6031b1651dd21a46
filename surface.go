package slide

// Surface is a render target the Layout pushes vertical translation,
// visibility and clipping into. Implementations are referenced, not owned;
// while a gesture or animation is active nothing else may write their
// translation.
type Surface interface {
	Width() float64
	Height() float64
	TranslationY() float64
	SetTranslationY(y float64)
	Visible() bool
	SetVisible(visible bool)
	// SetClip restricts drawing to r in local coordinates. nil removes the clip.
	SetClip(r *Rect)
}

// panelIDCounter is not atomic; panels are created on the game goroutine.
var panelIDCounter uint32

func nextPanelID() uint32 {
	panelIDCounter++
	return panelIDCounter
}

// Panel is the stock Surface: a sized rectangle carrying a translation, a
// visibility flag and an optional clip. Renderers read its fields each frame.
type Panel struct {
	ID   uint32
	Name string

	W, H float64
	Y    float64

	// Color is an opaque RGBA tint in [0, 1], used by renderers that draw
	// panels as solid rectangles.
	Color [4]float64

	visible bool
	clip    *Rect
	dirty   bool
}

// NewPanel creates a visible panel of the given size at translation 0.
func NewPanel(name string, width, height float64) *Panel {
	return &Panel{
		ID:      nextPanelID(),
		Name:    name,
		W:       width,
		H:       height,
		Color:   [4]float64{1, 1, 1, 1},
		visible: true,
		dirty:   true,
	}
}

// Width returns the panel width.
func (p *Panel) Width() float64 { return p.W }

// Height returns the panel height.
func (p *Panel) Height() float64 { return p.H }

// TranslationY returns the current vertical translation.
func (p *Panel) TranslationY() float64 { return p.Y }

// SetTranslationY moves the panel vertically and marks it dirty.
func (p *Panel) SetTranslationY(y float64) {
	if p.Y == y {
		return
	}
	p.Y = y
	p.dirty = true
}

// Visible reports whether the panel should be drawn.
func (p *Panel) Visible() bool { return p.visible }

// SetVisible toggles drawing of the panel.
func (p *Panel) SetVisible(visible bool) {
	if p.visible == visible {
		return
	}
	p.visible = visible
	p.dirty = true
}

// Clip returns the active clip rectangle, or nil when unclipped.
func (p *Panel) Clip() *Rect { return p.clip }

// SetClip stores a copy of r as the clip rectangle. nil clears it.
func (p *Panel) SetClip(r *Rect) {
	if r == nil {
		if p.clip != nil {
			p.clip = nil
			p.dirty = true
		}
		return
	}
	if p.clip != nil && *p.clip == *r {
		return
	}
	c := *r
	p.clip = &c
	p.dirty = true
}

// Resize changes the panel size. Call Layout.Relayout afterwards so the
// travel distance is recomputed.
func (p *Panel) Resize(width, height float64) {
	if p.W == width && p.H == height {
		return
	}
	p.W = width
	p.H = height
	p.dirty = true
}

// Dirty reports whether the panel changed since the last ClearDirty. A
// renderer that caches per-panel work can use it; ebitenslide redraws every
// frame and ignores it.
func (p *Panel) Dirty() bool { return p.dirty }

// ClearDirty resets the dirty flag.
func (p *Panel) ClearDirty() { p.dirty = false }

// Bounds returns the panel's drawn area in layout coordinates, taking the
// translation and clip into account. ok is false when nothing is drawn.
func (p *Panel) Bounds() (r Rect, ok bool) {
	if !p.visible {
		return Rect{}, false
	}
	r = Rect{X: 0, Y: p.Y, Width: p.W, Height: p.H}
	if p.clip != nil {
		c := *p.clip
		r.X = c.X
		r.Y = p.Y + c.Y
		r.Width = min(c.Width, p.W-c.X)
		r.Height = min(c.Height, p.H-c.Y)
	}
	if r.Empty() {
		return Rect{}, false
	}
	return r, true
}
