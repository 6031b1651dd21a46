package ebitenslide

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/phanxgames/slide"
)

func TestFileLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"after-drag", "after-drag"},
		{"  half way ", "half_way"},
		{"a/b\\c", "a_b_c"},
		{"v1.2", "v1.2"},
		{"", "frame"},
		{"   ", "frame"},
	}
	for _, tt := range tests {
		if got := fileLabel(tt.in); got != tt.want {
			t.Errorf("fileLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	pix := []byte{
		64, 32, 0, 128, // half alpha
		10, 20, 30, 255, // opaque, unchanged
		0, 0, 0, 0, // transparent, unchanged
	}
	unpremultiply(pix)
	want := []byte{127, 63, 0, 128, 10, 20, 30, 255, 0, 0, 0, 0}
	for i := range want {
		if pix[i] != want[i] {
			t.Fatalf("pix = %v, want %v", pix, want)
		}
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := savePNG(path, image.NewNRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Errorf("png not written: %v", err)
	}
	if err := savePNG(filepath.Join(t.TempDir(), "missing", "x.png"), image.NewNRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestScriptScreenshotQueuesCapture(t *testing.T) {
	h := newTestHost(t, slide.StateHidden)
	s, err := LoadScript([]byte("steps:\n  - action: screenshot\n    label: start\n"))
	if err != nil {
		t.Fatal(err)
	}
	runScript(t, h, s)
	if len(h.captures) != 1 || h.captures[0] != "start" {
		t.Errorf("captures = %v, want [start]", h.captures)
	}
}
