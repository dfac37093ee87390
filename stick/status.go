package stick

// Status is the record delivered to a Reporter after every update.
type Status struct {
	X, Y      float64 // normalized, each in [-1, 1]; Y is positive upward
	Direction Direction
	AxisX     int // index tag for the X axis in downstream axis arrays
	AxisY     int // index tag for the Y axis
	Title     string
}

// State is a snapshot of the mapper's stick state.
type State struct {
	Offset     Vec2 // post-clamp position in region coordinates
	Pressed    bool
	Normalized Vec2
	Direction  Direction
}

// Reporter receives stick updates.
type Reporter interface {
	Report(Status)
}

// ReporterFunc adapts a plain function to Reporter.
type ReporterFunc func(Status)

// Report calls f(s).
func (f ReporterFunc) Report(s Status) { f(s) }

// Listener is a callback-holding object. It is handed back to itself with
// every status so one value can serve several sticks and compare the source.
type Listener interface {
	OnStick(s Status, self Listener)
}

type listenerReporter struct {
	l Listener
}

func (r listenerReporter) Report(s Status) { r.l.OnStick(s, r.l) }

// ListenerReporter adapts a Listener to Reporter.
func ListenerReporter(l Listener) Reporter {
	return listenerReporter{l: l}
}

// nopReporter is used when the caller supplies no reporter.
type nopReporter struct{}

func (nopReporter) Report(Status) {}
