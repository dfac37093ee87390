package joystick

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"idle", "idle"},
		{"after-drag", "after-drag"},
		{"frame.07", "frame.07"},
		{"left stick", "left_stick"},
		{"a/b\\c", "a_b_c"},
		{"ne?*", "ne__"},
		{"", "unlabeled"},
		{"  ", "unlabeled"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueue(t *testing.T) {
	j, _ := newTestStick(t, nil)
	j.Screenshot("before")
	j.Screenshot("after")
	if len(j.screenshotQueue) != 2 || j.screenshotQueue[1] != "after" {
		t.Errorf("queue = %v, want [before after]", j.screenshotQueue)
	}
}

func TestWritePNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.NRGBA{R: 0, G: 0xaa, B: 0, A: 0xff})

	path := filepath.Join(t.TempDir(), "stick.png")
	if err := writePNG(path, img); err != nil {
		t.Fatalf("writePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := got.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("bounds = %v, want 4x3", b)
	}
	_, g, _, _ := got.At(1, 1).RGBA()
	if g>>8 != 0xaa {
		t.Errorf("green = %#x, want 0xaa", g>>8)
	}
}

func TestWritePNGMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "x.png")
	if err := writePNG(path, image.NewNRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Error("expected error for missing directory")
	}
}
