package joystick

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	Background Color
	ShowFPS    bool

	// OnUpdate runs once per tick after every stick has updated. A non-nil
	// error stops the game loop and is returned by Run.
	OnUpdate func() error
	// OnDraw runs after every stick has drawn.
	OnDraw func(screen *ebiten.Image)
}

// game adapts a set of sticks to ebiten.Game.
type game struct {
	cfg    RunConfig
	sticks []*Joystick
	fps    *fpsOverlay
}

func (g *game) Update() error {
	for _, j := range g.sticks {
		j.Update()
	}
	if g.fps != nil {
		g.fps.update(1.0 / float64(ebiten.TPS()))
	}
	if g.cfg.OnUpdate != nil {
		return g.cfg.OnUpdate()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Background)
	for _, j := range g.sticks {
		j.Draw(screen)
	}
	if g.cfg.OnDraw != nil {
		g.cfg.OnDraw(screen)
	}
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and drives the given sticks until the window closes or
// OnUpdate returns an error. For full control, call Joystick.Update and
// Joystick.Draw from your own ebiten.Game instead.
func Run(cfg RunConfig, sticks ...*Joystick) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.Background == (Color{}) {
		cfg.Background = Color{R: 1, G: 1, B: 1, A: 1}
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	g := &game{cfg: cfg, sticks: sticks}
	if cfg.ShowFPS {
		g.fps = &fpsOverlay{}
	}
	return ebiten.RunGame(g)
}
