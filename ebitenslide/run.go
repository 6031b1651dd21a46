package ebitenslide

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	ShowFPS   bool
	Resizable bool
}

// Run opens a window and runs the host's game loop until the window is
// closed. It is a convenience for programs that only show a sliding layout;
// embed Host in your own ebiten.Game for anything more.
func Run(h *Host, cfg RunConfig) error {
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	h.ShowFPS = cfg.ShowFPS
	return ebiten.RunGame(h)
}
