package timely

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int     // window size; zero selects 640x240
	ShowFPS       bool    // draw FPS/TPS in the top-left corner
	ClearColor    Color   // background; zero selects white
	Padding       float64 // margin around the readout in pixels
	Debug         bool    // log frame timing at debug level every 60 frames
}

// Game adapts a Readout to ebiten.Game. Use it directly to embed a readout
// in your own ebiten loop, or call Run for a ready-made window.
type Game struct {
	readout *Readout
	update  func(dt float32)
	cfg     RunConfig
	surface *EbitenSurface
	fps     *fpsOverlay // nil unless ShowFPS
	stats   frameStats
	width   int
	height  int
}

// NewGame returns a Game drawing r. update, if non-nil, is called every tick
// with the tick length in seconds before the readout advances; set new text
// on the readout from there.
func NewGame(r *Readout, update func(dt float32), cfg RunConfig) *Game {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 640, 240
	}
	if cfg.ClearColor == (Color{}) {
		cfg.ClearColor = ColorWhite
	}
	g := &Game{
		readout: r,
		update:  update,
		cfg:     cfg,
		surface: NewEbitenSurface(nil),
		width:   cfg.Width,
		height:  cfg.Height,
	}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	return g
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))
	if g.update != nil {
		g.update(dt)
	}
	g.readout.Update(dt)
	if g.fps != nil {
		g.fps.update(dt)
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.ClearColor.RGBA())
	g.surface.Target = screen
	if err := g.drawReadout(g.surface); err != nil {
		Logger().Warn("frame dropped", slog.Any("err", err))
	}
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

func (g *Game) drawReadout(s Surface) error {
	if !g.cfg.Debug {
		return g.readout.Draw(s, g.bounds())
	}
	cs := countingSurface{Surface: s}
	start := time.Now()
	err := g.readout.Draw(&cs, g.bounds())
	animating := 0
	for _, d := range g.readout.Displays() {
		if d.Animating() {
			animating++
		}
	}
	g.stats.record(time.Since(start), cs.strokes, animating)
	g.stats.flush()
	return err
}

// Layout implements ebiten.Game. The screen follows the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (g *Game) bounds() Rect {
	p := g.cfg.Padding
	return Rect{
		X:      p,
		Y:      p,
		Width:  max(0, float64(g.width)-2*p),
		Height: max(0, float64(g.height)-2*p),
	}
}

// Run opens a window and drives r until the window is closed.
func Run(r *Readout, update func(dt float32), cfg RunConfig) error {
	g := NewGame(r, update, cfg)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}
