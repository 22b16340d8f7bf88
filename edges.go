package bramble

import (
	"fmt"
	"strings"
)

// Edges holds the four box-model sides in CSS order. It is used for margin,
// padding, border widths and border radii.
type Edges struct {
	Top, Right, Bottom, Left Size
}

// EdgeAll returns Edges with the same size on every side.
func EdgeAll(s Size) Edges {
	return Edges{Top: s, Right: s, Bottom: s, Left: s}
}

// EdgeSymmetric returns Edges with v on top/bottom and h on left/right.
func EdgeSymmetric(v, h Size) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL returns Edges in CSS order: top, right, bottom, left.
func EdgeTRBL(t, r, b, l Size) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// ParseEdges parses CSS shorthand: 1 to 4 whitespace-separated sizes.
//
//	"10"          all sides
//	"5 10"        top/bottom 5, right/left 10
//	"5 10 15"     top 5, right/left 10, bottom 15
//	"1 2 3 4"     top, right, bottom, left
func ParseEdges(s string) (Edges, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 4 {
		return Edges{}, fmt.Errorf("%w: %q has %d values, want 1-4", ErrSizeFormat, s, len(fields))
	}
	sizes := make([]Size, len(fields))
	for i, f := range fields {
		sz, err := ParseSize(f)
		if err != nil {
			return Edges{}, fmt.Errorf("edges %q: %w", s, err)
		}
		sizes[i] = sz
	}
	return edgesFromShorthand(sizes), nil
}

// EdgesOf is the lenient form of ParseEdges. Malformed tokens become zero,
// an empty string yields zero edges and tokens past the fourth are ignored.
func EdgesOf(s string) Edges {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Edges{}
	}
	if len(fields) > 4 {
		fields = fields[:4]
	}
	sizes := make([]Size, len(fields))
	for i, f := range fields {
		sizes[i] = SizeOf(f)
	}
	return edgesFromShorthand(sizes)
}

func edgesFromShorthand(v []Size) Edges {
	switch len(v) {
	case 1:
		return EdgeAll(v[0])
	case 2:
		return EdgeSymmetric(v[0], v[1])
	case 3:
		return EdgeTRBL(v[0], v[1], v[2], v[1])
	default:
		return EdgeTRBL(v[0], v[1], v[2], v[3])
	}
}

// Resolve resolves every side: left and right against ref.X, top and bottom
// against ref.Y.
func (e Edges) Resolve(ref Vec2) Edges {
	return Edges{
		Top:    e.Top.Resolve(ref.Y),
		Right:  e.Right.Resolve(ref.X),
		Bottom: e.Bottom.Resolve(ref.Y),
		Left:   e.Left.Resolve(ref.X),
	}
}

// Horizontal returns the resolved left + right.
func (e Edges) Horizontal() float64 {
	return e.Left.Value() + e.Right.Value()
}

// Vertical returns the resolved top + bottom.
func (e Edges) Vertical() float64 {
	return e.Top.Value() + e.Bottom.Value()
}

// Values returns the resolved sides as [top, right, bottom, left].
func (e Edges) Values() [4]float64 {
	return [4]float64{e.Top.Value(), e.Right.Value(), e.Bottom.Value(), e.Left.Value()}
}

// String formats the edges as four-value shorthand.
func (e Edges) String() string {
	return e.Top.String() + " " + e.Right.String() + " " + e.Bottom.String() + " " + e.Left.String()
}

// toEdges converts builder arguments: Edges, Size, numbers and shorthand
// strings. Unsupported types yield zero edges.
func toEdges(v any) Edges {
	switch x := v.(type) {
	case Edges:
		return x
	case string:
		return EdgesOf(x)
	}
	return EdgeAll(toSize(v))
}
