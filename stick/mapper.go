package stick

import "math"

// Mapper converts region-local pointer coordinates into a clamped stick
// offset, a normalized vector and a Direction, and reports each result.
//
// A Mapper is owned by a single widget and is not safe for concurrent use;
// all calls are expected from the host's event loop.
type Mapper struct {
	region   Region
	reporter Reporter

	// AutoReturn resets the offset to center when a press is released.
	AutoReturn bool
	// AxisX and AxisY tag reported statuses for downstream axis arrays.
	AxisX, AxisY int
	// Title is copied into every reported Status.
	Title string
	// OnPhase, if set, is called after every phase transition.
	OnPhase func(from, to Phase)

	offset Vec2
	phase  Phase
}

// NewMapper creates a mapper at the neutral position. A nil reporter is
// replaced with one that discards updates.
func NewMapper(region Region, reporter Reporter) *Mapper {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &Mapper{
		region:     region,
		reporter:   reporter,
		AutoReturn: true,
		AxisY:      1,
		offset:     region.Center,
	}
}

// Region returns the mapper's geometry.
func (m *Mapper) Region() Region { return m.region }

// SetReporter replaces the reporter. nil discards updates.
func (m *Mapper) SetReporter(r Reporter) {
	if r == nil {
		r = nopReporter{}
	}
	m.reporter = r
}

// Update moves the stick to (rawX, rawY), applies axis locks and clamping,
// and reports the resulting Status exactly once.
func (m *Mapper) Update(rawX, rawY float64) Status {
	m.offset = m.clamp(Vec2{X: rawX, Y: rawY})
	return m.report()
}

// Reset returns the stick to center and reports the neutral Status.
func (m *Mapper) Reset() Status {
	m.offset = m.region.Center
	return m.report()
}

// Press begins a press. It returns false if the stick is already held.
func (m *Mapper) Press() bool {
	return m.transition(evPress)
}

// Move updates the position while the stick is held. Moves outside a press
// are ignored and return false.
func (m *Mapper) Move(rawX, rawY float64) (Status, bool) {
	if !m.transition(evMove) {
		return m.Status(), false
	}
	return m.Update(rawX, rawY), true
}

// Release ends a press. With AutoReturn the stick returns to center;
// otherwise the last offset is kept. Either way the status is reported once.
// Releasing a stick that is not held does nothing and returns false.
func (m *Mapper) Release() (Status, bool) {
	if !m.transition(evRelease) {
		return m.Status(), false
	}
	var st Status
	if m.AutoReturn {
		st = m.Reset()
	} else {
		st = m.report()
	}
	m.transition(evSettle)
	return st, true
}

// Phase returns the current interaction phase.
func (m *Mapper) Phase() Phase { return m.phase }

// Offset returns the post-clamp position in region coordinates.
func (m *Mapper) Offset() Vec2 { return m.offset }

// Normalized returns the offset scaled to [-1, 1] per axis with Y upward.
func (m *Mapper) Normalized() Vec2 {
	return m.normalize(m.offset)
}

// Direction classifies the current offset.
func (m *Mapper) Direction() Direction {
	h, v := m.region.DeadZone()
	return Classify(m.offset.X-m.region.Center.X, m.offset.Y-m.region.Center.Y, h, v)
}

// Status returns the current status without reporting it.
func (m *Mapper) Status() Status {
	n := m.Normalized()
	return Status{
		X:         n.X,
		Y:         n.Y,
		Direction: m.Direction(),
		AxisX:     m.AxisX,
		AxisY:     m.AxisY,
		Title:     m.Title,
	}
}

// State returns a snapshot of the stick state.
func (m *Mapper) State() State {
	return State{
		Offset:     m.offset,
		Pressed:    m.phase.Held(),
		Normalized: m.Normalized(),
		Direction:  m.Direction(),
	}
}

func (m *Mapper) report() Status {
	st := m.Status()
	m.reporter.Report(st)
	return st
}

func (m *Mapper) transition(ev phaseEvent) bool {
	next, ok := nextPhase(m.phase, ev)
	if !ok {
		return false
	}
	prev := m.phase
	m.phase = next
	if m.OnPhase != nil && prev != next {
		m.OnPhase(prev, next)
	}
	return true
}

// clamp applies axis locks and then the configured clamp mode.
func (m *Mapper) clamp(p Vec2) Vec2 {
	r := &m.region
	p.X = finiteAxis(p.X, r.Width, r.Center.X)
	p.Y = finiteAxis(p.Y, r.Height, r.Center.Y)
	if r.LockX {
		p.X = r.Center.X
	}
	if r.LockY {
		p.Y = r.Center.Y
	}

	if r.LimitToCircle {
		dx := p.X - r.Center.X
		dy := p.Y - r.Center.Y
		dist := math.Hypot(dx, dy)
		bound := r.CircleBound()
		if dist > bound {
			scale := bound / dist
			p.X = r.Center.X + dx*scale
			p.Y = r.Center.Y + dy*scale
		}
		return p
	}

	p.X = clampAxis(p.X, r.InnerRadius, r.MaxDisplacement, r.Width)
	p.Y = clampAxis(p.Y, r.InnerRadius, r.MaxDisplacement, r.Height)
	return p
}

// finiteAxis maps infinities to the matching edge of [0, extent] and NaN to
// center.
func finiteAxis(v, extent, center float64) float64 {
	switch {
	case math.IsNaN(v):
		return center
	case math.IsInf(v, 1):
		return extent
	case math.IsInf(v, -1):
		return 0
	}
	return v
}

// clampAxis keeps the inner shape of radius inner inside [0, extent].
func clampAxis(v, inner, maxDisp, extent float64) float64 {
	if v < inner {
		v = maxDisp
	}
	if v+inner > extent {
		v = extent - maxDisp
	}
	return v
}

func (m *Mapper) normalize(p Vec2) Vec2 {
	r := &m.region
	if r.MaxDisplacement == 0 {
		return Vec2{}
	}
	return Vec2{
		X: clampUnit((p.X - r.Center.X) / r.MaxDisplacement),
		Y: clampUnit((p.Y-r.Center.Y)/r.MaxDisplacement) * -1,
	}
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
