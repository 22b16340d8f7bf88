package bramble

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Run opens a window and drives doc from Ebitengine's game loop until the
// window closes or the update callback returns an error.
//
// Every tick advances doc by one Update. Every draw clears the screen to
// cfg.ClearColor, runs one Frame and writes any queued screenshots. A
// window size change reaches the document through Resize before the next
// Frame.
func Run(doc *Document, cfg RunConfig) error {
	cfg = cfg.withDefaults()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	if cfg.Debug {
		doc.SetDebugMode(true)
	}
	return ebiten.RunGame(newGame(doc, cfg))
}

// game adapts a Document to ebiten.Game.
type game struct {
	doc     *Document
	painter *EbitenPainter
	clear   color.RGBA
	fps     *fpsOverlay
}

func newGame(doc *Document, cfg RunConfig) *game {
	g := &game{
		doc:     doc,
		painter: NewEbitenPainter(Vec2{float64(cfg.Width), float64(cfg.Height)}),
		clear:   cfg.ClearColor.ToRGBA(),
	}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	return g
}

func (g *game) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))
	if g.fps != nil {
		g.fps.update(float64(dt))
	}
	return g.doc.Update(dt)
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.clear)
	g.painter.SetTarget(screen)
	g.doc.Frame(g.painter)
	g.doc.flushScreenshots(screen)
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := Vec2{float64(outsideWidth), float64(outsideHeight)}
	if size != g.painter.Size() {
		g.doc.Resize(g.painter, size)
	}
	return outsideWidth, outsideHeight
}
