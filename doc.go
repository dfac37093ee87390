// Package joystick is an on-screen virtual joystick for [Ebitengine].
//
// A Joystick renders an outer reference ring and a draggable inner stick
// inside a rectangular surface, maps mouse and touch drags to a normalized
// vector in [-1, 1] per axis (Y positive upward) plus a compass Direction,
// and reports every change to a [Reporter].
//
// # Quick start
//
//	opts := joystick.DefaultOptions()
//	opts.X, opts.Y = 20, 260
//	stick := joystick.New(opts, joystick.ReporterFunc(func(s joystick.Status) {
//		player.vx, player.vy = s.X, s.Y
//	}))
//
//	func (g *Game) Update() error        { stick.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image) { stick.Draw(s) }
//
// [Run] opens a window and drives one or more sticks for quick demos.
//
// # Reporting
//
// A [Reporter] receives a [Status] after every move and release. Use
// [ReporterFunc] for a plain function, or implement [Listener] and wrap it
// with [ListenerReporter] to serve several sticks from one value; the
// listener is handed back to itself and Status.Title names the source stick.
//
// # Options
//
// Start from [DefaultOptions] or load a TOML or YAML file with
// [LoadOptions]. Locking both axes is accepted but logged as a warning.
//
// # Automation
//
// [Joystick.InjectDrag] and friends queue synthetic pointer input, and
// [LoadTestScript] builds a frame-stepped script with direction checks and
// screenshots.
//
// The platform-independent mapping lives in package stick, which other hosts
// (for example a terminal) can drive directly.
//
// [Ebitengine]: https://ebitengine.org
package joystick
