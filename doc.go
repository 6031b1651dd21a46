// Package slide is a sliding overlay for [Ebitengine] games and tools: two
// stacked surfaces, a content panel and an overlay panel, where the overlay
// is dragged, flung or toggled between fully visible and fully hidden.
//
// The root package is the drag coordinator. It does not draw or poll input;
// it consumes gesture, nested-scroll and control events and pushes
// translations, visibility and clip rectangles into two [Surface] values.
// Package ebitenslide hosts a [Layout] in an Ebitengine game loop.
//
// # Quick start
//
//	layout, err := slide.New(slide.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	content := slide.NewPanel("content", 640, 480)
//	overlay := slide.NewPanel("overlay", 640, 480)
//	_ = layout.AddSurface(content) // first surface is the content
//	_ = layout.AddSurface(overlay) // second surface is the overlay
//
//	layout.AddProgressListener(func(p float64) {
//		fmt.Println("progress", p)
//	})
//	layout.Show()
//
// Call [Layout.Update] once per frame so the settle animation advances:
//
//	func (g *Game) Update() error {
//		g.layout.Update(1.0 / float32(ebiten.TPS()))
//		return nil
//	}
//
// # Offsets and progress
//
// The overlay's offset is its vertical displacement from the fully visible
// position, always clamped to [0, MaxOffset] where MaxOffset is the overlay
// height minus the configured offset. Progress is Offset / MaxOffset and is
// dispatched to listeners only when it changes.
//
// # Input
//
// Drags arrive three ways: the explicit [Layout.OnDragStart] family, a
// gesture recognizer calling the [GestureListener] methods (fed by
// [Layout.HandlePointer]), or a scrollable child relaying leftover scroll
// through [NestedScrollParent]. All paths share one drag session, so two
// simultaneous starts are harmless.
//
// On release the overlay flips state only after travelling [Config.MinScroll]
// of the distance; a fast drag towards hidden always hides. A dominant
// vertical fling settles immediately. While the settle animation runs, new
// drags and Show/Hide calls are ignored.
//
// Settle animations use [gween] through [TweenAnimator]; any [Animator] can
// be installed instead.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package slide
