package joystick

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/phanxgames/joystick/stick"
)

// Re-exported core types so callers of the widget rarely need to import stick.
type (
	Status    = stick.Status
	State     = stick.State
	Direction = stick.Direction
	Phase     = stick.Phase
	Reporter  = stick.Reporter
	Listener  = stick.Listener
	Vec2      = stick.Vec2
)

// ReporterFunc adapts a plain function to Reporter.
type ReporterFunc = stick.ReporterFunc

// ListenerReporter adapts a Listener to Reporter.
func ListenerReporter(l Listener) Reporter { return stick.ListenerReporter(l) }

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// premultiplied returns the color scaled by its alpha, clamped to [0, 1].
func (c Color) premultiplied() (r, g, b, a float32) {
	a64 := clamp01(c.A)
	return float32(clamp01(c.R) * a64), float32(clamp01(c.G) * a64), float32(clamp01(c.B) * a64), float32(a64)
}

// RGBA implements color.Color (premultiplied, 16 bits per channel).
func (c Color) RGBA() (r, g, b, a uint32) {
	pr, pg, pb, pa := c.premultiplied()
	return uint32(pr * 0xffff), uint32(pg * 0xffff), uint32(pb * 0xffff), uint32(pa * 0xffff)
}

// ParseHexColor parses "#RGB", "#RRGGBB" or "#RRGGBBAA" (leading # optional).
func ParseHexColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return Color{}, fmt.Errorf("parse color %q: want #RGB, #RRGGBB or #RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X      float64 `toml:"x" yaml:"x"`
	Y      float64 `toml:"y" yaml:"y"`
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
