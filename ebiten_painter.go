package bramble

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// paintCommand is one buffered Painter call.
type paintCommand struct {
	quad     Quad
	isText   bool
	text     string
	pos      Vec2
	fontSize float64
	color    Color
}

// EbitenPainter is the Ebitengine-backed Painter. Rect and Text calls are
// buffered; Render submits them to the target image in call order and
// empties the buffer.
type EbitenPainter struct {
	// AntiAlias smooths rectangle and border edges.
	AntiAlias bool

	target *ebiten.Image
	size   Vec2
	source *text.GoTextFaceSource
	cmds   []paintCommand

	white *ebiten.Image // 1x1 source for path triangles
}

// NewEbitenPainter returns a painter reporting the given viewport size.
func NewEbitenPainter(size Vec2) *EbitenPainter {
	return &EbitenPainter{size: size, AntiAlias: true}
}

// SetTarget sets the image the next Render draws to.
func (p *EbitenPainter) SetTarget(img *ebiten.Image) {
	p.target = img
}

// LoadFont sets the TrueType/OpenType font used for text. Without one, text
// falls back to Ebitengine's fixed debug font and ignores size and color.
func (p *EbitenPainter) LoadFont(ttf []byte) error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return fmt.Errorf("bramble: failed to parse font data: %w", err)
	}
	p.source = src
	return nil
}

func (p *EbitenPainter) Rect(quads []Quad) {
	for _, q := range quads {
		p.cmds = append(p.cmds, paintCommand{quad: q})
	}
}

func (p *EbitenPainter) Text(s string, pos Vec2, size float64, c Color) {
	p.cmds = append(p.cmds, paintCommand{isText: true, text: s, pos: pos, fontSize: size, color: c})
}

func (p *EbitenPainter) Resize(size Vec2) {
	p.size = size
}

func (p *EbitenPainter) Size() Vec2 {
	return p.size
}

// Pending returns the number of buffered commands.
func (p *EbitenPainter) Pending() int {
	return len(p.cmds)
}

// Render submits the buffered commands. Without a target they are dropped.
func (p *EbitenPainter) Render() {
	if p.target != nil {
		for i := range p.cmds {
			cmd := &p.cmds[i]
			if cmd.isText {
				p.drawText(cmd)
			} else {
				p.drawQuad(cmd.quad)
			}
		}
	}
	p.cmds = p.cmds[:0]
}

func (p *EbitenPainter) drawQuad(q Quad) {
	r := q.Rect
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height)
	bw := float32(q.BorderWidth)
	hasBorder := bw > 0 && q.BorderColor.A > 0
	radius := float32(math.Min(q.BorderRadius, math.Min(r.Width, r.Height)/2))

	if radius <= 0 {
		if q.Color.A > 0 {
			vector.DrawFilledRect(p.target, x, y, w, h, q.Color.ToRGBA(), p.AntiAlias)
		}
		if hasBorder {
			vector.StrokeRect(p.target, x+bw/2, y+bw/2, w-bw, h-bw, bw, q.BorderColor.ToRGBA(), p.AntiAlias)
		}
		return
	}

	if q.Color.A > 0 {
		path := roundedRectPath(x, y, w, h, radius)
		vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
		p.drawTriangles(vs, is, q.Color, ebiten.FillRuleNonZero)
	}
	if hasBorder {
		path := roundedRectPath(x+bw/2, y+bw/2, w-bw, h-bw, max(0, radius-bw/2))
		vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: bw})
		p.drawTriangles(vs, is, q.BorderColor, ebiten.FillRuleFillAll)
	}
}

func roundedRectPath(x, y, w, h, r float32) *vector.Path {
	var path vector.Path
	path.MoveTo(x+r, y)
	path.LineTo(x+w-r, y)
	path.ArcTo(x+w, y, x+w, y+r, r)
	path.LineTo(x+w, y+h-r)
	path.ArcTo(x+w, y+h, x+w-r, y+h, r)
	path.LineTo(x+r, y+h)
	path.ArcTo(x, y+h, x, y+h-r, r)
	path.LineTo(x, y+r)
	path.ArcTo(x, y, x+r, y, r)
	path.Close()
	return &path
}

func (p *EbitenPainter) drawTriangles(vs []ebiten.Vertex, is []uint16, c Color, rule ebiten.FillRule) {
	if p.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		p.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(c.R)
		vs[i].ColorG = float32(c.G)
		vs[i].ColorB = float32(c.B)
		vs[i].ColorA = float32(c.A)
	}
	op := &ebiten.DrawTrianglesOptions{FillRule: rule, AntiAlias: p.AntiAlias}
	p.target.DrawTriangles(vs, is, p.white, op)
}

func (p *EbitenPainter) drawText(cmd *paintCommand) {
	if p.source == nil {
		ebitenutil.DebugPrintAt(p.target, cmd.text, int(cmd.pos.X), int(cmd.pos.Y))
		return
	}
	face := &text.GoTextFace{Source: p.source, Size: cmd.fontSize}
	m := face.Metrics()

	op := &text.DrawOptions{}
	op.GeoM.Translate(cmd.pos.X, cmd.pos.Y)
	op.ColorScale.Scale(
		float32(cmd.color.R),
		float32(cmd.color.G),
		float32(cmd.color.B),
		float32(cmd.color.A),
	)
	op.LineSpacing = m.HAscent + m.HDescent + m.HLineGap
	text.Draw(p.target, cmd.text, face, op)
}
