package joystick

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/phanxgames/joystick/stick"
)

// newDefaultLogger builds the console logger used when Options.Logger is nil.
// Warnings always pass; debug output only in debug mode.
func newDefaultLogger(debug bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.Sampling = nil
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	level := zapcore.WarnLevel
	if debug {
		level = zapcore.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// debugReporter logs each status before forwarding it.
type debugReporter struct {
	next Reporter
	log  *zap.Logger
}

func (r debugReporter) Report(s Status) {
	r.log.Debug("stick status",
		zap.Float64("x", s.X),
		zap.Float64("y", s.Y),
		zap.Stringer("direction", s.Direction),
		zap.Int("axis_x", s.AxisX),
		zap.Int("axis_y", s.AxisY),
	)
	r.next.Report(s)
}

// debugPhaseLogger returns an OnPhase hook that logs transitions.
func debugPhaseLogger(log *zap.Logger) func(from, to stick.Phase) {
	return func(from, to stick.Phase) {
		log.Debug("stick phase", zap.Stringer("from", from), zap.Stringer("to", to))
	}
}

// warnConfig logs configuration problems that do not stop the widget.
func (j *Joystick) warnConfig(warns []error) {
	if j.region.BothLocked() {
		j.log.Warn("both axes locked; the stick cannot move",
			zap.Bool("lock_x", true), zap.Bool("lock_y", true))
	}
	for _, err := range warns {
		j.log.Warn("invalid option, using default", zap.Error(err))
	}
}
