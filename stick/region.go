package stick

// Geometry constants shared by the mapper and the renderer.
const (
	innerInset     = 10.0 // subtracted from half the width before halving into the inner radius
	travelMargin   = 5.0  // max displacement = inner radius + travelMargin
	outerMargin    = 30.0 // outer radius = inner radius + outerMargin
	circleLimit    = 1.12 // circular clamp bound as a multiple of the inner radius
	deadZoneFactor = 10.0 // dead zone half-width = extent / deadZoneFactor
)

// Vec2 is a point or offset in region coordinates. Y grows downward.
type Vec2 struct {
	X, Y float64
}

// Region holds the geometry of a stick surface. It is immutable once built;
// use NewRegion and the With* helpers to derive variants.
type Region struct {
	Width, Height   float64
	Center          Vec2
	InnerRadius     float64
	OuterRadius     float64
	MaxDisplacement float64

	LockX         bool // X offset pinned to center (vertical-only stick)
	LockY         bool // Y offset pinned to center (horizontal-only stick)
	LimitToCircle bool // circular clamp instead of per-axis box clamp
}

// NewRegion derives the stick geometry from the surface size. The radii
// scale with the width only; the height sets the vertical center, extent and
// dead zone.
func NewRegion(width, height float64) Region {
	inner := (width - (width/2 + innerInset)) / 2
	return Region{
		Width:           width,
		Height:          height,
		Center:          Vec2{X: width / 2, Y: height / 2},
		InnerRadius:     inner,
		OuterRadius:     inner + outerMargin,
		MaxDisplacement: inner + travelMargin,
	}
}

// WithLocks returns a copy of r with the given axis locks.
func (r Region) WithLocks(lockX, lockY bool) Region {
	r.LockX = lockX
	r.LockY = lockY
	return r
}

// WithCircleLimit returns a copy of r with circular clamping toggled.
func (r Region) WithCircleLimit(on bool) Region {
	r.LimitToCircle = on
	return r
}

// DeadZone returns the horizontal and vertical dead-zone half-widths used by
// direction classification, in region units.
func (r Region) DeadZone() (h, v float64) {
	return r.Width / deadZoneFactor, r.Height / deadZoneFactor
}

// CircleBound is the largest distance from center the circular clamp allows.
func (r Region) CircleBound() float64 {
	return r.InnerRadius * circleLimit
}

// BothLocked reports the degenerate configuration where neither axis can move.
func (r Region) BothLocked() bool {
	return r.LockX && r.LockY
}
