package joystick

import (
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// Defaults applied by DefaultOptions and by New for zero-valued fields.
const (
	DefaultTitle               = "joystick"
	DefaultInternalFillColor   = "#00AA00"
	DefaultInternalStrokeColor = "#003300"
	DefaultExternalStrokeColor = "#008000"
	DefaultLineWidth           = 2.0
	DefaultScreenshotDir       = "screenshots"

	defaultSurfaceSize = 200.0 // used when neither the surface nor the container has a size
)

// Options configures a Joystick. Start from DefaultOptions: AutoReturnToCenter
// and AxisY have non-zero defaults that a zero Options cannot express.
type Options struct {
	// Title identifies the stick surface; it is copied into every Status.
	Title string `toml:"title" yaml:"title"`

	// Container is the host rectangle in screen coordinates. The surface is
	// placed at (X, Y) inside it and a drag ends when the pointer leaves it.
	// A zero Container means the surface itself.
	Container Rect    `toml:"container" yaml:"container"`
	X         float64 `toml:"x" yaml:"x"`
	Y         float64 `toml:"y" yaml:"y"`

	// Width and Height of the surface. Zero takes the container's size.
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`

	// LockX pins the stick horizontally (vertical-only stick); LockY pins it
	// vertically. Setting both is accepted with a warning: the stick cannot move.
	LockX bool `toml:"lock_x" yaml:"lock_x"`
	LockY bool `toml:"lock_y" yaml:"lock_y"`

	InternalFillColor   string  `toml:"internal_fill_color" yaml:"internal_fill_color"`
	InternalLineWidth   float64 `toml:"internal_line_width" yaml:"internal_line_width"`
	InternalStrokeColor string  `toml:"internal_stroke_color" yaml:"internal_stroke_color"`
	ExternalLineWidth   float64 `toml:"external_line_width" yaml:"external_line_width"`
	ExternalStrokeColor string  `toml:"external_stroke_color" yaml:"external_stroke_color"`

	AutoReturnToCenter bool `toml:"auto_return_to_center" yaml:"auto_return_to_center"`
	LimitToCircle      bool `toml:"limit_to_circle" yaml:"limit_to_circle"`

	// AxisX and AxisY tag reported axes for consumers that pack several
	// sticks into one axis array.
	AxisX int `toml:"axis_x" yaml:"axis_x"`
	AxisY int `toml:"axis_y" yaml:"axis_y"`

	// ReturnDuration, in seconds, eases the drawn knob back to center after
	// an auto-return release. Zero snaps.
	ReturnDuration float32        `toml:"return_duration" yaml:"return_duration"`
	ReturnEase     ease.TweenFunc `toml:"-" yaml:"-"`

	// DragDeadZone is the distance in pixels a press must travel before
	// moves are applied.
	DragDeadZone float64 `toml:"drag_dead_zone" yaml:"drag_dead_zone"`

	ScreenshotDir string `toml:"screenshot_dir" yaml:"screenshot_dir"`

	// Debug logs every reported status and phase change at debug level.
	Debug bool `toml:"debug" yaml:"debug"`

	// Logger receives diagnostics. nil builds a console logger on stderr.
	Logger *zap.Logger `toml:"-" yaml:"-"`
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Title:               DefaultTitle,
		InternalFillColor:   DefaultInternalFillColor,
		InternalLineWidth:   DefaultLineWidth,
		InternalStrokeColor: DefaultInternalStrokeColor,
		ExternalLineWidth:   DefaultLineWidth,
		ExternalStrokeColor: DefaultExternalStrokeColor,
		AutoReturnToCenter:  true,
		AxisX:               0,
		AxisY:               1,
		ReturnEase:          ease.OutQuad,
		ScreenshotDir:       DefaultScreenshotDir,
	}
}

// withDefaults fills zero-valued fields that have an unambiguous default.
func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Width <= 0 {
		o.Width = o.Container.Width
	}
	if o.Width <= 0 {
		o.Width = defaultSurfaceSize
	}
	if o.Height <= 0 {
		o.Height = o.Container.Height
	}
	if o.Height <= 0 {
		o.Height = defaultSurfaceSize
	}
	if o.InternalFillColor == "" {
		o.InternalFillColor = DefaultInternalFillColor
	}
	if o.InternalStrokeColor == "" {
		o.InternalStrokeColor = DefaultInternalStrokeColor
	}
	if o.ExternalStrokeColor == "" {
		o.ExternalStrokeColor = DefaultExternalStrokeColor
	}
	if o.InternalLineWidth <= 0 {
		o.InternalLineWidth = DefaultLineWidth
	}
	if o.ExternalLineWidth <= 0 {
		o.ExternalLineWidth = DefaultLineWidth
	}
	if o.ReturnDuration < 0 {
		o.ReturnDuration = 0
	}
	if o.ReturnEase == nil {
		o.ReturnEase = ease.OutQuad
	}
	if o.DragDeadZone < 0 {
		o.DragDeadZone = 0
	}
	if o.ScreenshotDir == "" {
		o.ScreenshotDir = DefaultScreenshotDir
	}
	return o
}

// surface returns the stick surface in screen coordinates.
func (o Options) surface() Rect {
	return Rect{
		X:      o.Container.X + o.X,
		Y:      o.Container.Y + o.Y,
		Width:  o.Width,
		Height: o.Height,
	}
}

// container returns the host rectangle, falling back to the surface.
func (o Options) container() Rect {
	if o.Container.Empty() {
		return o.surface()
	}
	return o.Container
}

// palette holds the parsed colors used by the renderer.
type palette struct {
	internalFill   Color
	internalStroke Color
	externalStroke Color
}

// resolvePalette parses the option colors. Unparseable colors fall back to
// the defaults and are returned as warnings.
func (o Options) resolvePalette() (palette, []error) {
	var warns []error
	parse := func(s, fallback string) Color {
		c, err := ParseHexColor(s)
		if err != nil {
			warns = append(warns, err)
			c, _ = ParseHexColor(fallback)
		}
		return c
	}
	return palette{
		internalFill:   parse(o.InternalFillColor, DefaultInternalFillColor),
		internalStroke: parse(o.InternalStrokeColor, DefaultInternalStrokeColor),
		externalStroke: parse(o.ExternalStrokeColor, DefaultExternalStrokeColor),
	}, warns
}
