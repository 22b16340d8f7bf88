package bramble

import (
	"fmt"
	"log"
)

// Quad is a filled rectangle with an optional border, the unit of rectangle
// painting.
type Quad struct {
	Rect         Rect
	Color        Color
	BorderColor  Color
	BorderRadius float64
	BorderWidth  float64
}

// NewQuad returns a borderless quad.
func NewQuad(r Rect, c Color) Quad {
	return Quad{Rect: r, Color: c}
}

// Painter is the drawing capability the layout pass paints through. Calls
// arrive in tree order, parents before children; implementations must draw
// in call order so children end up on top.
type Painter interface {
	Rect(quads []Quad)
	Text(s string, pos Vec2, size float64, c Color)
	Resize(size Vec2)
	Render()
	Size() Vec2
}

// PaintOp identifies a recorded Painter call.
type PaintOp uint8

const (
	OpRect PaintOp = iota
	OpText
	OpResize
	OpRender
)

func (op PaintOp) String() string {
	switch op {
	case OpRect:
		return "rect"
	case OpText:
		return "text"
	case OpResize:
		return "resize"
	case OpRender:
		return "render"
	}
	return fmt.Sprintf("PaintOp(%d)", uint8(op))
}

// PaintCall is one recorded Painter call. Only the fields relevant to Op are
// set.
type PaintCall struct {
	Op       PaintOp
	Quads    []Quad
	Text     string
	Pos      Vec2
	FontSize float64
	Color    Color
	Size     Vec2
}

// RecordingPainter is a Painter that draws nothing and records every call.
// It backs tests and headless runs.
type RecordingPainter struct {
	Calls []PaintCall

	size   Vec2
	logger *log.Logger
}

// NewRecordingPainter returns a painter reporting the given viewport size.
func NewRecordingPainter(size Vec2) *RecordingPainter {
	return &RecordingPainter{size: size}
}

// SetLogger makes the painter log each call. Pass nil to stop logging.
func (p *RecordingPainter) SetLogger(l *log.Logger) {
	p.logger = l
}

func (p *RecordingPainter) Rect(quads []Quad) {
	cp := make([]Quad, len(quads))
	copy(cp, quads)
	p.Calls = append(p.Calls, PaintCall{Op: OpRect, Quads: cp})
	if p.logger != nil {
		p.logger.Printf("draw rect: %v", quads)
	}
}

func (p *RecordingPainter) Text(s string, pos Vec2, size float64, c Color) {
	p.Calls = append(p.Calls, PaintCall{Op: OpText, Text: s, Pos: pos, FontSize: size, Color: c})
	if p.logger != nil {
		p.logger.Printf("draw text: %q pos: %v size: %v color: %v", s, pos, size, c)
	}
}

func (p *RecordingPainter) Resize(size Vec2) {
	p.size = size
	p.Calls = append(p.Calls, PaintCall{Op: OpResize, Size: size})
	if p.logger != nil {
		p.logger.Printf("resize: %v", size)
	}
}

func (p *RecordingPainter) Render() {
	p.Calls = append(p.Calls, PaintCall{Op: OpRender})
}

func (p *RecordingPainter) Size() Vec2 {
	return p.size
}

// Quads returns every quad painted so far, flattened in call order.
func (p *RecordingPainter) Quads() []Quad {
	var out []Quad
	for _, c := range p.Calls {
		if c.Op == OpRect {
			out = append(out, c.Quads...)
		}
	}
	return out
}

// Count returns how many calls of kind op were recorded.
func (p *RecordingPainter) Count(op PaintOp) int {
	n := 0
	for _, c := range p.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset drops the recorded calls but keeps the size.
func (p *RecordingPainter) Reset() {
	p.Calls = p.Calls[:0]
}
