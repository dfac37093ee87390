package joystick

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Screenshot queues a labeled capture of the stick surface, taken at the end
// of the next Draw. The PNG is written to Options.ScreenshotDir with a
// timestamped filename.
func (j *Joystick) Screenshot(label string) {
	j.screenshotQueue = append(j.screenshotQueue, label)
}

// flushScreenshots captures the surface area of screen for every queued label.
func (j *Joystick) flushScreenshots(screen *ebiten.Image) {
	if len(j.screenshotQueue) == 0 {
		return
	}
	defer func() { j.screenshotQueue = j.screenshotQueue[:0] }()

	if err := os.MkdirAll(j.opts.ScreenshotDir, 0o755); err != nil {
		j.log.Warn("screenshot: create dir", zap.String("dir", j.opts.ScreenshotDir), zap.Error(err))
		return
	}

	rect := image.Rect(int(j.surface.X), int(j.surface.Y),
		int(j.surface.X+j.surface.Width), int(j.surface.Y+j.surface.Height)).
		Intersect(screen.Bounds())
	if rect.Empty() {
		return
	}
	sub := screen.SubImage(rect).(*ebiten.Image)
	img := readNRGBA(sub, rect.Dx(), rect.Dy())

	stamp := time.Now().Format("20060102_150405")
	for _, label := range j.screenshotQueue {
		name := fmt.Sprintf("%s_%s_%s.png", stamp, sanitizeLabel(j.opts.Title), sanitizeLabel(label))
		if err := writePNG(filepath.Join(j.opts.ScreenshotDir, name), img); err != nil {
			j.log.Warn("screenshot", zap.Error(err))
		}
	}
}

// readNRGBA reads an image's pixels and converts premultiplied RGBA to
// straight-alpha NRGBA.
func readNRGBA(src *ebiten.Image, w, h int) *image.NRGBA {
	pixels := make([]byte, 4*w*h)
	src.ReadPixels(pixels)

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(pixels); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
