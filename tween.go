package joystick

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// knobTween animates the drawn knob position after an auto-return release.
// It only affects rendering; the stick state is already back at center.
type knobTween struct {
	x, y   *gween.Tween
	pos    Vec2
	active bool
}

// start eases from `from` to `to` over duration seconds. A non-positive
// duration leaves the tween inactive.
func (t *knobTween) start(from, to Vec2, duration float32, fn ease.TweenFunc) {
	if duration <= 0 {
		t.stop()
		return
	}
	t.x = gween.New(float32(from.X), float32(to.X), duration, fn)
	t.y = gween.New(float32(from.Y), float32(to.Y), duration, fn)
	t.pos = from
	t.active = true
}

// update advances the tween by dt seconds.
func (t *knobTween) update(dt float32) {
	if !t.active {
		return
	}
	x, doneX := t.x.Update(dt)
	y, doneY := t.y.Update(dt)
	t.pos = Vec2{X: float64(x), Y: float64(y)}
	if doneX && doneY {
		t.stop()
	}
}

func (t *knobTween) stop() {
	t.active = false
	t.x, t.y = nil, nil
}
