package joystick

import (
	"math"
	"testing"

	"github.com/phanxgames/joystick/stick"
)

func TestFillFanCounts(t *testing.T) {
	var m mesh
	rim := appendCircle(nil, Vec2{X: 10, Y: 10}, 5)
	m.fillFan(Vec2{X: 10, Y: 10}, rim, Color{A: 1}, Color{G: 1, A: 1})

	if len(m.verts) != circleSegments+1 {
		t.Errorf("verts = %d, want %d", len(m.verts), circleSegments+1)
	}
	if len(m.inds) != 3*circleSegments {
		t.Errorf("inds = %d, want %d", len(m.inds), 3*circleSegments)
	}
	// Hub takes the hub color, rim the rim color.
	if m.verts[0].ColorG != 0 || m.verts[1].ColorG != 1 {
		t.Errorf("hub/rim colors = %v/%v", m.verts[0].ColorG, m.verts[1].ColorG)
	}
}

func TestFillFanDegenerate(t *testing.T) {
	var m mesh
	m.fillFan(Vec2{}, []Vec2{{X: 1}, {Y: 1}}, Color{A: 1}, Color{A: 1})
	if len(m.verts) != 0 || len(m.inds) != 0 {
		t.Error("fan with fewer than 3 rim points should emit nothing")
	}
}

func TestStrokeCounts(t *testing.T) {
	square := []Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	tests := []struct {
		name   string
		closed bool
		segs   int
	}{
		{"open", false, 3},
		{"closed", true, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m mesh
			m.stroke(square, tt.closed, 2, Color{A: 1})
			if len(m.verts) != 4*tt.segs {
				t.Errorf("verts = %d, want %d", len(m.verts), 4*tt.segs)
			}
			if len(m.inds) != 6*tt.segs {
				t.Errorf("inds = %d, want %d", len(m.inds), 6*tt.segs)
			}
		})
	}
}

func TestStrokeWidth(t *testing.T) {
	var m mesh
	m.stroke([]Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}}, false, 4, Color{A: 1})
	// A horizontal segment spreads 2px above and below the line.
	if !approxEqual(float64(m.verts[0].DstY), 2, 1e-6) || !approxEqual(float64(m.verts[1].DstY), -2, 1e-6) {
		t.Errorf("quad Y = %v, %v; want 2, -2", m.verts[0].DstY, m.verts[1].DstY)
	}
}

func TestOutlinePath(t *testing.T) {
	base := stick.NewRegion(200, 200)
	tests := []struct {
		name   string
		region stick.Region
		points int
		radius float64 // distance of the first point from its arc center
	}{
		{"free", base, circleSegments, base.OuterRadius},
		{"lock x", base.WithLocks(true, false), circleSegments + 2, base.InnerRadius},
		{"lock y", base.WithLocks(false, true), circleSegments + 2, base.InnerRadius},
		{"both", base.WithLocks(true, true), circleSegments, base.InnerRadius},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := outlinePath(nil, tt.region)
			if len(path) != tt.points {
				t.Fatalf("points = %d, want %d", len(path), tt.points)
			}
			if tt.name == "free" || tt.name == "both" {
				d := math.Hypot(path[0].X-base.Center.X, path[0].Y-base.Center.Y)
				if !approxEqual(d, tt.radius, 1e-9) {
					t.Errorf("radius = %v, want %v", d, tt.radius)
				}
			}
		})
	}
}

func TestOutlineCapsuleSpan(t *testing.T) {
	r := stick.NewRegion(200, 200).WithLocks(true, false)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range outlinePath(nil, r) {
		if math.Abs(p.X-r.Center.X) > r.InnerRadius+1e-9 {
			t.Fatalf("capsule point %v wider than inner radius", p)
		}
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	// The capsule reaches one outer radius above and below center.
	if !approxEqual(maxY-r.Center.Y, r.OuterRadius, 1e-9) || !approxEqual(r.Center.Y-minY, r.OuterRadius, 1e-9) {
		t.Errorf("span = [%v, %v], want center ± %v", minY, maxY, r.OuterRadius)
	}
}

func TestRendererBuild(t *testing.T) {
	opts := DefaultOptions().withDefaults()
	pal, _ := opts.resolvePalette()
	r := newRenderer(stick.NewRegion(200, 200), pal, opts)

	r.build(Vec2{X: 50, Y: 40}, Vec2{X: 140, Y: 100})

	// outline stroke + knob fan + knob stroke
	wantVerts := 4*circleSegments + (circleSegments + 1) + 4*circleSegments
	wantInds := 6*circleSegments + 3*circleSegments + 6*circleSegments
	if len(r.mesh.verts) != wantVerts || len(r.mesh.inds) != wantInds {
		t.Fatalf("mesh = %d verts / %d inds, want %d / %d",
			len(r.mesh.verts), len(r.mesh.inds), wantVerts, wantInds)
	}
	// The fan hub sits at the knob, moved to screen space.
	hub := r.mesh.verts[4*circleSegments]
	if hub.DstX != 190 || hub.DstY != 140 {
		t.Errorf("hub = (%v, %v), want (190, 140)", hub.DstX, hub.DstY)
	}

	// Rebuilding reuses the buffers without growing the mesh and moves the
	// hub to the new knob.
	r.build(Vec2{}, Vec2{X: 100, Y: 100})
	if len(r.mesh.verts) != wantVerts {
		t.Errorf("rebuild verts = %d, want %d", len(r.mesh.verts), wantVerts)
	}
	hub = r.mesh.verts[4*circleSegments]
	if hub.DstX != 100 || hub.DstY != 100 {
		t.Errorf("rebuilt hub = (%v, %v), want (100, 100)", hub.DstX, hub.DstY)
	}
}
