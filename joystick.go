package joystick

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/phanxgames/joystick/stick"
)

// Joystick is an on-screen virtual joystick for Ebitengine. Call Update from
// the game's Update and Draw from the game's Draw. All state is owned by the
// Joystick; several instances can run side by side, each capturing its own
// pointer.
type Joystick struct {
	opts      Options
	region    stick.Region
	mapper    *stick.Mapper
	surface   Rect
	container Rect
	log       *zap.Logger

	render *renderer
	knob   knobTween

	// Input state
	pointers     [maxPointers]pointerState
	captured     int // pointer slot holding the stick, noPointer when free
	dragDeadZone float64
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID

	// Automation
	injectQueue     []syntheticPointerEvent
	testRunner      *TestRunner
	screenshotQueue []string
}

// New creates a joystick from opts, reporting every update to reporter.
// reporter may be nil. Zero-valued title, size, color, line width, ease and
// screenshot directory options take their defaults. AutoReturnToCenter and
// AxisY are used as given, so a zero Options has auto-return off and both
// axis tags at 0; start from DefaultOptions to get auto-return on and AxisY 1.
// Conflicting locks and unparseable colors are logged as warnings.
func New(opts Options, reporter Reporter) *Joystick {
	opts = opts.withDefaults()

	log := opts.Logger
	if log == nil {
		log = newDefaultLogger(opts.Debug)
	}
	log = log.With(zap.String("stick", opts.Title))

	region := stick.NewRegion(opts.Width, opts.Height).
		WithLocks(opts.LockX, opts.LockY).
		WithCircleLimit(opts.LimitToCircle)

	if reporter == nil {
		reporter = ReporterFunc(func(Status) {})
	}
	if opts.Debug {
		reporter = debugReporter{next: reporter, log: log}
	}

	m := stick.NewMapper(region, reporter)
	m.AutoReturn = opts.AutoReturnToCenter
	m.AxisX = opts.AxisX
	m.AxisY = opts.AxisY
	m.Title = opts.Title
	if opts.Debug {
		m.OnPhase = debugPhaseLogger(log)
	}

	pal, warns := opts.resolvePalette()

	j := &Joystick{
		opts:         opts,
		region:       region,
		mapper:       m,
		surface:      opts.surface(),
		container:    opts.container(),
		log:          log,
		render:       newRenderer(region, pal, opts),
		captured:     noPointer,
		dragDeadZone: opts.DragDeadZone,
	}
	j.warnConfig(warns)
	return j
}

// Update advances the return animation, runs any attached test script and
// processes pointer input.
func (j *Joystick) Update() {
	dt := float32(1.0 / float64(ebiten.TPS()))
	j.knob.update(dt)
	if j.testRunner != nil {
		j.testRunner.step(j)
	}
	j.processInput()
}

// Draw renders the stick onto screen at its surface position.
func (j *Joystick) Draw(screen *ebiten.Image) {
	j.render.draw(screen, Vec2{X: j.surface.X, Y: j.surface.Y}, j.KnobPosition())
	j.flushScreenshots(screen)
}

// KnobPosition returns where the inner stick is drawn, in surface
// coordinates. It differs from the stick offset only while a return
// animation is running.
func (j *Joystick) KnobPosition() Vec2 {
	if j.knob.active {
		return j.knob.pos
	}
	return j.mapper.Offset()
}

// Reset returns the stick to center and reports the neutral status.
func (j *Joystick) Reset() Status {
	j.knob.stop()
	return j.mapper.Reset()
}

// SetReporter replaces the reporter. nil discards updates.
func (j *Joystick) SetReporter(r Reporter) {
	if r != nil && j.opts.Debug {
		r = debugReporter{next: r, log: j.log}
	}
	j.mapper.SetReporter(r)
}

// SetDragDeadZone sets the minimum movement in pixels before moves apply.
func (j *Joystick) SetDragDeadZone(pixels float64) {
	j.dragDeadZone = pixels
}

// Title returns the surface identifier.
func (j *Joystick) Title() string { return j.opts.Title }

// Bounds returns the surface rectangle in screen coordinates.
func (j *Joystick) Bounds() Rect { return j.surface }

// Region returns the stick geometry.
func (j *Joystick) Region() stick.Region { return j.region }

// Width returns the surface width in pixels.
func (j *Joystick) Width() float64 { return j.surface.Width }

// Height returns the surface height in pixels.
func (j *Joystick) Height() float64 { return j.surface.Height }

// PosX returns the stick X offset relative to the surface.
func (j *Joystick) PosX() float64 { return j.mapper.Offset().X }

// PosY returns the stick Y offset relative to the surface.
func (j *Joystick) PosY() float64 { return j.mapper.Offset().Y }

// X returns the normalized X value in [-1, 1].
func (j *Joystick) X() float64 { return j.mapper.Normalized().X }

// Y returns the normalized Y value in [-1, 1], positive upward.
func (j *Joystick) Y() float64 { return j.mapper.Normalized().Y }

// Direction returns the compass label of the current offset.
func (j *Joystick) Direction() Direction { return j.mapper.Direction() }

// Phase returns the current interaction phase.
func (j *Joystick) Phase() Phase { return j.mapper.Phase() }

// Status returns the current status without reporting it.
func (j *Joystick) Status() Status { return j.mapper.Status() }

// State returns a snapshot of the stick state.
func (j *Joystick) State() State { return j.mapper.State() }
