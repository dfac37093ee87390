package stick

import "testing"

func TestNextPhase(t *testing.T) {
	tests := []struct {
		from   Phase
		ev     phaseEvent
		want   Phase
		wantOK bool
	}{
		{PhaseIdle, evPress, PhasePressed, true},
		{PhaseIdle, evMove, PhaseIdle, false},
		{PhaseIdle, evRelease, PhaseIdle, false},
		{PhasePressed, evMove, PhaseDragging, true},
		{PhasePressed, evRelease, PhaseReleased, true},
		{PhasePressed, evPress, PhasePressed, false},
		{PhaseDragging, evMove, PhaseDragging, true},
		{PhaseDragging, evRelease, PhaseReleased, true},
		{PhaseReleased, evSettle, PhaseIdle, true},
		{PhaseReleased, evPress, PhasePressed, true},
		{PhaseReleased, evMove, PhaseReleased, false},
		{PhaseIdle, evSettle, PhaseIdle, false},
	}
	for _, tt := range tests {
		got, ok := nextPhase(tt.from, tt.ev)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("nextPhase(%v, %d) = %v, %v; want %v, %v", tt.from, tt.ev, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseDragging.String() != "dragging" {
		t.Errorf("got %q", PhaseDragging.String())
	}
	if Phase(9).String() != "unknown" {
		t.Errorf("got %q", Phase(9).String())
	}
}
