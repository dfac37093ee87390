package joystick

// syntheticPointerEvent represents a single injected pointer event in screen
// coordinates, fed through the same state machine as real mouse input.
type syntheticPointerEvent struct {
	screenX, screenY float64
	pressed          bool
}

// InjectPress queues a pointer press at the given screen coordinates.
// The event is consumed on the next Update.
func (j *Joystick) InjectPress(x, y float64) {
	j.injectQueue = append(j.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use it between
// InjectPress and InjectRelease to simulate a drag.
func (j *Joystick) InjectMove(x, y float64) {
	j.injectQueue = append(j.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (j *Joystick) InjectRelease(x, y float64) {
	j.injectQueue = append(j.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: false})
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, a move to
// (toX, toY), and a release there. Minimum frames is 2.
func (j *Joystick) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	j.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		j.InjectMove(x, y)
	}
	j.InjectMove(toX, toY)
	j.InjectRelease(toX, toY)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer as the mouse pointer. Returns true if an event was
// consumed (real input should be skipped).
func (j *Joystick) processInjectedInput() bool {
	if len(j.injectQueue) == 0 {
		return false
	}
	evt := j.injectQueue[0]
	copy(j.injectQueue, j.injectQueue[1:])
	j.injectQueue = j.injectQueue[:len(j.injectQueue)-1]

	j.processPointer(0, evt.screenX, evt.screenY, evt.pressed)
	return true
}
