package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/joystick/stick"
)

type collect struct{ got []stick.Status }

func (c *collect) Report(s stick.Status) { c.got = append(c.got, s) }

func newTestPanel() (*panel, *collect) {
	c := &collect{}
	return newPanel(2, 1, stick.NewRegion(regionSize, regionSize), c), c
}

func TestPanelCellMapping(t *testing.T) {
	p, _ := newTestPanel()
	x, y := p.toRegion(2, 1)
	if x != 2.5 || y != 5 {
		t.Errorf("toRegion(2,1) = (%v, %v), want (2.5, 5)", x, y)
	}
	cx, cy := p.toCell(100, 100)
	if cx != 22 || cy != 11 {
		t.Errorf("toCell(100,100) = (%d, %d), want (22, 11)", cx, cy)
	}
}

func TestPanelDrag(t *testing.T) {
	p, c := newTestPanel()

	// Press outside the panel: ignored.
	if p.pointer(0, 0, true) {
		t.Error("press outside the panel should not report")
	}
	p.pointer(0, 0, false)

	// Press at center, then drag right by 8 cells (40 units).
	if !p.pointer(22, 11, true) {
		t.Fatal("press inside the panel should report")
	}
	p.pointer(30, 11, true)
	if p.mapper.Direction() != stick.DirE {
		t.Errorf("Direction = %v, want E", p.mapper.Direction())
	}
	if p.mapper.Phase() != stick.PhaseDragging {
		t.Errorf("Phase = %v, want dragging", p.mapper.Phase())
	}

	// Lift the button: auto-return to center.
	if !p.pointer(30, 11, false) {
		t.Error("release should report")
	}
	last := c.got[len(c.got)-1]
	if last.Direction != stick.DirC || last.X != 0 || last.Y != 0 {
		t.Errorf("release status = %+v", last)
	}
	if p.held {
		t.Error("panel still held after release")
	}
}

func TestPanelLeaveReleases(t *testing.T) {
	p, _ := newTestPanel()
	p.pointer(22, 11, true)
	if !p.pointer(80, 11, true) {
		t.Error("leaving the panel should release and report")
	}
	if p.held || p.mapper.Phase() != stick.PhaseIdle {
		t.Errorf("held=%v phase=%v after leaving", p.held, p.mapper.Phase())
	}
	// Coming back with the button held does not grab the stick again.
	if p.pointer(22, 11, true) || p.held {
		t.Error("re-entering with the button held should not grab")
	}
	p.pointer(22, 11, false)
	if !p.pointer(22, 11, true) || !p.held {
		t.Error("a fresh press should grab")
	}
}

func TestPanelDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(80, 30)

	p, _ := newTestPanel()
	p.draw(screen)

	// The knob covers the center cell.
	if r, _, _, _ := screen.GetContent(22, 11); r != '█' {
		t.Errorf("center cell = %q, want knob", r)
	}
	// The outer ring crosses the horizontal axis at center + outer radius.
	ringX, ringY := p.toCell(100+p.mapper.Region().OuterRadius, 100)
	if r, _, _, _ := screen.GetContent(ringX, ringY); r != '·' {
		t.Errorf("ring cell (%d,%d) = %q, want ring", ringX, ringY, r)
	}
	// Status line under the panel.
	if r, _, _, _ := screen.GetContent(2, 1+panelRows); r != 'x' {
		t.Errorf("status line starts with %q, want 'x'", r)
	}
}
