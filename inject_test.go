package joystick

import (
	"testing"

	"github.com/phanxgames/joystick/stick"
)

func TestInjectPressMoveRelease(t *testing.T) {
	j, log := newTestStick(t, nil)

	j.InjectPress(150, 140)
	j.InjectMove(150, 190)
	j.InjectRelease(150, 190)
	if len(j.injectQueue) != 3 {
		t.Fatalf("expected 3 queued events, got %d", len(j.injectQueue))
	}

	// Frame 1: press
	j.processInput()
	if j.Phase() != stick.PhasePressed {
		t.Fatalf("Phase = %v, want pressed", j.Phase())
	}

	// Frame 2: move south
	j.processInput()
	if j.Direction() != stick.DirS {
		t.Errorf("Direction = %v, want S", j.Direction())
	}

	// Frame 3: release
	j.processInput()
	if len(j.injectQueue) != 0 {
		t.Fatalf("expected empty queue, got %d", len(j.injectQueue))
	}
	if j.Phase() != stick.PhaseIdle {
		t.Errorf("Phase = %v, want idle", j.Phase())
	}
	if len(log.got) != 2 {
		t.Errorf("reported %d, want 2", len(log.got))
	}
}

func TestInjectDrag(t *testing.T) {
	j, log := newTestStick(t, nil)

	// Drag from the center toward the north-west corner over 5 frames:
	// press, 3 interpolated moves, final move, release.
	j.InjectDrag(150, 140, 90, 80, 5)
	if len(j.injectQueue) != 6 {
		t.Fatalf("expected 6 queued events, got %d", len(j.injectQueue))
	}
	for i := 0; i < 5; i++ {
		j.processInput()
	}
	if j.Direction() != stick.DirNW {
		t.Errorf("Direction before release = %v, want NW", j.Direction())
	}
	j.processInput()

	if len(log.got) != 5 {
		t.Fatalf("reported %d, want 5 (4 moves + release)", len(log.got))
	}
	if log.got[3].Direction != stick.DirNW {
		t.Errorf("last move direction = %v, want NW", log.got[3].Direction)
	}
	if log.got[4].Direction != stick.DirC {
		t.Errorf("release direction = %v, want C", log.got[4].Direction)
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	j, _ := newTestStick(t, nil)
	j.InjectDrag(150, 140, 200, 140, 0)
	// press + final move + release
	if len(j.injectQueue) != 3 {
		t.Errorf("expected 3 queued events, got %d", len(j.injectQueue))
	}
}
