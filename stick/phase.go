package stick

// Phase is the interaction state of a stick.
type Phase uint8

const (
	PhaseIdle     Phase = iota // not held
	PhasePressed               // pressed, no movement yet
	PhaseDragging              // pressed and moved at least once
	PhaseReleased              // released this event; settles to PhaseIdle
)

var phaseNames = [...]string{"idle", "pressed", "dragging", "released"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// Held reports whether the phase belongs to an active press.
func (p Phase) Held() bool {
	return p == PhasePressed || p == PhaseDragging
}

// phaseEvent drives phase transitions.
type phaseEvent uint8

const (
	evPress phaseEvent = iota
	evMove
	evRelease
	evSettle
)

// nextPhase returns the phase after ev, and whether ev is accepted in p.
// Rejected events leave the phase unchanged.
func nextPhase(p Phase, ev phaseEvent) (Phase, bool) {
	switch ev {
	case evPress:
		if p == PhaseIdle || p == PhaseReleased {
			return PhasePressed, true
		}
	case evMove:
		if p.Held() {
			return PhaseDragging, true
		}
	case evRelease:
		if p.Held() {
			return PhaseReleased, true
		}
	case evSettle:
		if p == PhaseReleased {
			return PhaseIdle, true
		}
	}
	return p, false
}
