package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/joystick/stick"
)

// Terminal cells are roughly twice as tall as they are wide, so one cell
// covers cellW x cellH logical units of the stick region.
const (
	regionSize = 200.0
	cellW      = 5.0
	cellH      = 10.0
	panelCols  = int(regionSize / cellW)
	panelRows  = int(regionSize / cellH)
)

// panel hosts one stick in a block of terminal cells.
type panel struct {
	mapper *stick.Mapper
	x, y   int // top-left cell
	held   bool
	down   bool // button state of the previous sample
}

func newPanel(x, y int, region stick.Region, r stick.Reporter) *panel {
	return &panel{mapper: stick.NewMapper(region, r), x: x, y: y}
}

// contains reports whether cell (cx, cy) lies inside the panel.
func (p *panel) contains(cx, cy int) bool {
	return cx >= p.x && cx < p.x+panelCols && cy >= p.y && cy < p.y+panelRows
}

// toRegion maps the center of cell (cx, cy) to region coordinates.
func (p *panel) toRegion(cx, cy int) (float64, float64) {
	return (float64(cx-p.x) + 0.5) * cellW, (float64(cy-p.y) + 0.5) * cellH
}

// toCell maps region coordinates back to the cell that contains them.
func (p *panel) toCell(x, y float64) (int, int) {
	return p.x + int(math.Floor(x/cellW)), p.y + int(math.Floor(y/cellH))
}

// pointer feeds one mouse sample. A button press inside the panel grabs the
// stick; dragging out of the panel or lifting the button lets it go. Coming
// back with the button still held does not grab again. It returns true when
// the stick reported.
func (p *panel) pointer(cx, cy int, down bool) bool {
	pressed := down && !p.down
	p.down = down
	switch {
	case pressed && !p.held:
		if !p.contains(cx, cy) || !p.mapper.Press() {
			return false
		}
		p.held = true
		_, ok := p.mapper.Move(p.toRegion(cx, cy))
		return ok
	case down && p.held:
		if !p.contains(cx, cy) {
			return p.release()
		}
		_, ok := p.mapper.Move(p.toRegion(cx, cy))
		return ok
	case !down && p.held:
		return p.release()
	}
	return false
}

func (p *panel) release() bool {
	p.held = false
	_, ok := p.mapper.Release()
	return ok
}

var (
	ringStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	knobStyle   = tcell.StyleDefault.Foreground(tcell.ColorLime)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// draw renders the outer ring, the knob and a status line under the panel.
func (p *panel) draw(s tcell.Screen) {
	r := p.mapper.Region()
	for i := 0; i < 96; i++ {
		a := 2 * math.Pi * float64(i) / 96
		cx, cy := p.toCell(r.Center.X+math.Cos(a)*r.OuterRadius, r.Center.Y+math.Sin(a)*r.OuterRadius)
		s.SetContent(cx, cy, '·', nil, ringStyle)
	}

	knob := p.mapper.Offset()
	for row := 0; row < panelRows; row++ {
		for col := 0; col < panelCols; col++ {
			x, y := p.toRegion(p.x+col, p.y+row)
			if math.Hypot(x-knob.X, y-knob.Y) <= r.InnerRadius {
				s.SetContent(p.x+col, p.y+row, '█', nil, knobStyle)
			}
		}
	}

	st := p.mapper.Status()
	line := fmt.Sprintf("x=%+.2f y=%+.2f %-2s %s", st.X, st.Y, st.Direction, p.mapper.Phase())
	for i, ch := range line {
		s.SetContent(p.x+i, p.y+panelRows, ch, nil, statusStyle)
	}
}
