// Joyterm drives a virtual joystick with the mouse inside a terminal.
// Press and drag inside the ring; each new direction plays a short tick.
// Press r to recenter, Esc or Ctrl+C to quit.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/phanxgames/joystick/stick"
)

func main() {
	lockX := flag.Bool("lock-x", false, "vertical-only stick")
	lockY := flag.Bool("lock-y", false, "horizontal-only stick")
	circle := flag.Bool("circle", false, "limit travel to a circle")
	noReturn := flag.Bool("no-return", false, "keep the stick where it is released")
	mute := flag.Bool("mute", false, "disable the direction tick")
	logPath := flag.String("log", "", "write debug logs to this file")
	flag.Parse()

	log, err := newLogger(*logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "joyterm: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "joyterm: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "joyterm: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()

	click, err := newClicker(*mute)
	if err != nil {
		// Non-fatal, runs without sound
		log.Warn("audio disabled", zap.Error(err))
	}
	defer click.close()

	region := stick.NewRegion(regionSize, regionSize).
		WithLocks(*lockX, *lockY).
		WithCircleLimit(*circle)
	p := newPanel(2, 1, region, stick.ReporterFunc(func(s stick.Status) {
		click.Report(s)
		log.Debug("stick status",
			zap.Float64("x", s.X), zap.Float64("y", s.Y),
			zap.Stringer("direction", s.Direction))
	}))
	p.mapper.Title = "joyterm"
	p.mapper.AutoReturn = !*noReturn

	run(screen, p)
}

// run polls terminal events until the user quits.
func run(screen tcell.Screen, p *panel) {
	redraw := func() {
		screen.Clear()
		p.draw(screen)
		screen.Show()
	}
	redraw()

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return
			}
			if ev.Key() == tcell.KeyRune && ev.Rune() == 'r' {
				p.mapper.Reset()
			}
		case *tcell.EventMouse:
			x, y := ev.Position()
			if !p.pointer(x, y, ev.Buttons()&tcell.Button1 != 0) {
				continue
			}
		case *tcell.EventResize:
			screen.Sync()
		case nil:
			return
		}
		redraw()
	}
}

func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
