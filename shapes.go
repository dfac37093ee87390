package joystick

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/joystick/stick"
)

// circleSegments is the number of straight edges used to approximate a full circle.
const circleSegments = 48

// mesh is a growable triangle list drawn against the shared white pixel.
// Buffers are reused across frames.
type mesh struct {
	verts []ebiten.Vertex
	inds  []uint16
}

func (m *mesh) reset() {
	m.verts = m.verts[:0]
	m.inds = m.inds[:0]
}

// vertex appends one untextured vertex and returns its index.
func (m *mesh) vertex(p Vec2, c Color) uint16 {
	r, g, b, a := c.premultiplied()
	m.verts = append(m.verts, ebiten.Vertex{
		DstX: float32(p.X), DstY: float32(p.Y),
		// Untextured: map to center of white pixel (0.5, 0.5)
		SrcX: 0.5, SrcY: 0.5,
		ColorR: r, ColorG: g, ColorB: b, ColorA: a,
	})
	return uint16(len(m.verts) - 1)
}

// translate shifts every vertex by (dx, dy).
func (m *mesh) translate(dx, dy float64) {
	for i := range m.verts {
		m.verts[i].DstX += float32(dx)
		m.verts[i].DstY += float32(dy)
	}
}

// fillFan appends a closed polygon fanned from hub. The hub takes hubColor
// and the rim takes rimColor, so the GPU interpolates a radial gradient.
// rim needs at least 3 points.
func (m *mesh) fillFan(hub Vec2, rim []Vec2, hubColor, rimColor Color) {
	n := len(rim)
	if n < 3 {
		return
	}
	h := m.vertex(hub, hubColor)
	first := uint16(len(m.verts))
	for _, p := range rim {
		m.vertex(p, rimColor)
	}
	for i := 0; i < n; i++ {
		a := first + uint16(i)
		b := first + uint16((i+1)%n)
		m.inds = append(m.inds, h, a, b)
	}
}

// stroke appends a polyline of the given width as one quad per segment.
// Closed paths also connect the last point back to the first.
func (m *mesh) stroke(points []Vec2, closed bool, width float64, c Color) {
	n := len(points)
	if n < 2 || width <= 0 {
		return
	}
	segs := n - 1
	if closed {
		segs = n
	}
	half := width / 2
	for i := 0; i < segs; i++ {
		p0 := points[i]
		p1 := points[(i+1)%n]
		dx, dy := p1.X-p0.X, p1.Y-p0.Y
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		// Perpendicular, extended a little along the segment so adjacent
		// quads overlap at the joins instead of leaving notches.
		nx, ny := -dy/length*half, dx/length*half
		ex, ey := dx/length*half/2, dy/length*half/2
		a := m.vertex(Vec2{X: p0.X + nx - ex, Y: p0.Y + ny - ey}, c)
		b := m.vertex(Vec2{X: p0.X - nx - ex, Y: p0.Y - ny - ey}, c)
		cc := m.vertex(Vec2{X: p1.X - nx + ex, Y: p1.Y - ny + ey}, c)
		d := m.vertex(Vec2{X: p1.X + nx + ex, Y: p1.Y + ny + ey}, c)
		m.inds = append(m.inds, a, b, cc, a, cc, d)
	}
}

// appendArc appends segs+1 points on the arc of radius r around c from angle
// start to end (radians, clockwise on screen since Y grows downward).
func appendArc(buf []Vec2, c Vec2, r, start, end float64, segs int) []Vec2 {
	if segs < 1 {
		segs = 1
	}
	step := (end - start) / float64(segs)
	for i := 0; i <= segs; i++ {
		a := start + step*float64(i)
		buf = append(buf, Vec2{X: c.X + math.Cos(a)*r, Y: c.Y + math.Sin(a)*r})
	}
	return buf
}

// appendCircle appends circleSegments points around c. The first point is
// not repeated at the end.
func appendCircle(buf []Vec2, c Vec2, r float64) []Vec2 {
	for i := 0; i < circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		buf = append(buf, Vec2{X: c.X + math.Cos(a)*r, Y: c.Y + math.Sin(a)*r})
	}
	return buf
}

// outlinePath appends the outer reference shape for the region: a circle of
// the outer radius for a free stick, a capsule along the free axis when one
// axis is locked, and a circle of the inner radius when both are.
func outlinePath(buf []Vec2, r stick.Region) []Vec2 {
	c := r.Center
	d := r.OuterRadius - r.InnerRadius
	half := circleSegments / 2
	switch {
	case r.LockX && r.LockY:
		return appendCircle(buf, c, r.InnerRadius)
	case r.LockX:
		// Vertical travel: lower half-circle then upper half-circle.
		buf = appendArc(buf, Vec2{X: c.X, Y: c.Y + d}, r.InnerRadius, 0, math.Pi, half)
		return appendArc(buf, Vec2{X: c.X, Y: c.Y - d}, r.InnerRadius, math.Pi, 2*math.Pi, half)
	case r.LockY:
		// Horizontal travel: left half-circle then right half-circle.
		buf = appendArc(buf, Vec2{X: c.X - d, Y: c.Y}, r.InnerRadius, math.Pi/2, 3*math.Pi/2, half)
		return appendArc(buf, Vec2{X: c.X + d, Y: c.Y}, r.InnerRadius, -math.Pi/2, math.Pi/2, half)
	default:
		return appendCircle(buf, c, r.OuterRadius)
	}
}
