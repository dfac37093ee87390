package main

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/phanxgames/joystick/stick"
)

const (
	sampleRate = beep.SampleRate(44100)
	tickLength = 40 * time.Millisecond
	baseTone   = 440.0
)

// clicker plays a short sine tick whenever the stick enters a new direction.
type clicker struct {
	enabled bool
	last    stick.Direction
}

// newClicker opens the speaker. Audio failure is returned but leaves a usable
// silent clicker.
func newClicker(mute bool) (*clicker, error) {
	c := &clicker{}
	if mute {
		return c, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return c, err
	}
	c.enabled = true
	return c, nil
}

// toneFor returns the tick pitch for d: a semitone up per compass step
// clockwise from north.
func toneFor(d stick.Direction) float64 {
	if d == stick.DirC {
		return 0
	}
	return baseTone * math.Pow(2, float64(d-stick.DirN)/12)
}

// observe records d and reports whether it differs from the previous
// direction and is not the center.
func (c *clicker) observe(d stick.Direction) bool {
	changed := d != c.last
	c.last = d
	return changed && d != stick.DirC
}

func (c *clicker) Report(s stick.Status) {
	if !c.observe(s.Direction) || !c.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, toneFor(s.Direction))
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(tickLength), sine))
}

func (c *clicker) close() {
	if c.enabled {
		speaker.Close()
	}
}
