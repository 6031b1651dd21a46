package ebitenslide

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// defaultScreenshotDir is where captured frames go when Host.ScreenshotDir
// is empty.
const defaultScreenshotDir = "screenshots"

// Screenshot queues a labeled capture of the next drawn frame. Scripts use
// it to record each stage of a transition.
func (h *Host) Screenshot(label string) {
	h.captures = append(h.captures, label)
}

// flushCaptures writes one PNG per queued label from the finished frame.
func (h *Host) flushCaptures(screen *ebiten.Image) {
	if len(h.captures) == 0 {
		return
	}
	defer func() { h.captures = h.captures[:0] }()

	dir := h.ScreenshotDir
	if dir == "" {
		dir = defaultScreenshotDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[slide] screenshot: mkdir %s: %v\n", dir, err)
		return
	}

	img := frameImage(screen)
	stamp := time.Now().Format("20060102_150405")
	for _, label := range h.captures {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", stamp, fileLabel(label)))
		if err := savePNG(path, img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[slide] screenshot: %v\n", err)
		}
	}
}

// frameImage reads the screen back and un-premultiplies it.
func frameImage(screen *ebiten.Image) *image.NRGBA {
	b := screen.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(img.Pix)
	unpremultiply(img.Pix)
	return img
}

func unpremultiply(pix []byte) {
	for i := 0; i+3 < len(pix); i += 4 {
		a := int(pix[i+3])
		if a == 0 || a == 255 {
			continue
		}
		for c := range 3 {
			pix[i+c] = uint8(min(int(pix[i+c])*255/a, 255))
		}
	}
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// fileLabel keeps letters, digits, '-' and '.'; everything else becomes '_'.
func fileLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "frame"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
