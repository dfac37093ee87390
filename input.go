package joystick

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// --- Constants ---

const (
	maxPointers = 10 // pointer 0 = mouse, 1-9 = touch
	noPointer   = -1
)

// --- Per-pointer state ---

type pointerState struct {
	down     bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	dragging bool
}

// --- Input processing ---

// processInput is called from Update to handle all mouse and touch input.
// A queued synthetic event replaces real input for that frame.
func (j *Joystick) processInput() {
	if j.processInjectedInput() {
		return
	}
	j.processMousePointer()
	j.processTouchPointers()
}

// processMousePointer handles mouse input (pointer 0).
func (j *Joystick) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	j.processPointer(0, float64(mx), float64(my), pressed)
}

// processTouchPointers handles touch input (pointers 1-9).
func (j *Joystick) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(j.prevTouchIDs[:0])
	j.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := j.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		j.processPointer(slot, float64(tx), float64(ty), true)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if j.touchUsed[i] && !activeSlots[i] {
			ps := &j.pointers[i]
			if ps.down {
				j.processPointer(i, ps.lastX, ps.lastY, false)
			}
			j.touchUsed[i] = false
			j.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (j *Joystick) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if j.touchUsed[i] && j.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !j.touchUsed[i] {
			j.touchUsed[i] = true
			j.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the pointer state machine for a single pointer at
// screen position (sx, sy). Only a press that lands on the surface captures
// the stick; afterwards only the capturing pointer moves or releases it.
func (j *Joystick) processPointer(pointerID int, sx, sy float64, pressed bool) {
	ps := &j.pointers[pointerID]

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.startX, ps.startY = sx, sy
		ps.lastX, ps.lastY = sx, sy
		ps.dragging = false

		if j.captured == noPointer && j.surface.Contains(sx, sy) && j.mapper.Press() {
			j.captured = pointerID
			j.knob.stop()
		}

	case !pressed && ps.down:
		ps.down = false
		ps.dragging = false
		if j.captured == pointerID {
			j.release()
		}

	case pressed && ps.down:
		if sx == ps.lastX && sy == ps.lastY {
			return
		}
		ps.lastX, ps.lastY = sx, sy
		if j.captured != pointerID {
			return
		}
		if !j.container.Contains(sx, sy) {
			j.log.Debug("pointer left container", zap.Int("pointer", pointerID))
			j.release()
			return
		}
		if !ps.dragging {
			dx := sx - ps.startX
			dy := sy - ps.startY
			if math.Sqrt(dx*dx+dy*dy) <= j.dragDeadZone {
				return
			}
			ps.dragging = true
		}
		j.mapper.Move(sx-j.surface.X, sy-j.surface.Y)
	}
}

// release ends the captured press and starts the return animation when the
// stick snapped back to center.
func (j *Joystick) release() {
	j.captured = noPointer
	from := j.mapper.Offset()
	if _, ok := j.mapper.Release(); !ok {
		return
	}
	if j.opts.AutoReturnToCenter && from != j.mapper.Offset() {
		j.knob.start(from, j.mapper.Offset(), j.opts.ReturnDuration, j.opts.ReturnEase)
	}
}
