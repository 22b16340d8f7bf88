package bramble

import (
	"fmt"
	"strings"
)

// LayoutKind selects how an element arranges its children.
type LayoutKind uint8

const (
	LayoutBlock       LayoutKind = iota // children stack vertically at full width (default)
	LayoutInline                        // flows with text; width and height not settable
	LayoutInlineBlock                   // flows with text; width and height settable
	LayoutRowFlex                       // children share the parent's width
	LayoutColFlex                       // children share the parent's height
)

var layoutKindNames = [...]string{
	LayoutBlock:       "block",
	LayoutInline:      "inline",
	LayoutInlineBlock: "inline-block",
	LayoutRowFlex:     "row-flex",
	LayoutColFlex:     "col-flex",
}

func (k LayoutKind) String() string {
	if int(k) < len(layoutKindNames) {
		return layoutKindNames[k]
	}
	return fmt.Sprintf("LayoutKind(%d)", uint8(k))
}

// ParseLayoutKind maps a kind name to its LayoutKind. Names are case
// insensitive and '_' is accepted in place of '-'.
func ParseLayoutKind(s string) (LayoutKind, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	switch name {
	case "inlineblock":
		name = "inline-block"
	case "rowflex", "row":
		name = "row-flex"
	case "colflex", "column", "col":
		name = "col-flex"
	}
	for k, n := range layoutKindNames {
		if n == name {
			return LayoutKind(k), nil
		}
	}
	return LayoutBlock, fmt.Errorf("%w: %q", ErrLayoutKind, s)
}

// DomElement is the per-node state the layout engine works on: declared
// style and layout kind, plus the geometry resolved by the last pass.
//
// Every mutator marks the element dirty. Only the layout pass clears the
// flag, after it has applied layout to the element.
type DomElement struct {
	tag    string
	nodeID NodeID

	// ID and Class are free-form user identifiers.
	ID    string
	Class string

	layout LayoutKind
	style  Style
	dirty  bool

	availBox   Box
	parentSize Vec2
}

// NewDomElement returns a dirty block element with the default style.
func NewDomElement(tag string, id NodeID) *DomElement {
	return &DomElement{
		tag:    tag,
		nodeID: id,
		layout: LayoutBlock,
		style:  DefaultStyle(),
		dirty:  true,
	}
}

// Tag returns the element's tag name.
func (d *DomElement) Tag() string { return d.tag }

// NodeID returns the identity shared with the element's tree nodes.
func (d *DomElement) NodeID() NodeID { return d.nodeID }

// Layout returns how the element arranges its children.
func (d *DomElement) Layout() LayoutKind { return d.layout }

// Style returns a copy of the current style.
func (d *DomElement) Style() Style { return d.style }

// Width returns the width with its last resolved value.
func (d *DomElement) Width() Size { return d.style.Width }

// Height returns the height with its last resolved value.
func (d *DomElement) Height() Size { return d.style.Height }

// Margin returns the margin edges.
func (d *DomElement) Margin() Edges { return d.style.Margin }

// Padding returns the padding edges.
func (d *DomElement) Padding() Edges { return d.style.Padding }

// Border returns the border widths.
func (d *DomElement) Border() Edges { return d.style.Border }

// BorderRadius returns the corner radii.
func (d *DomElement) BorderRadius() Edges { return d.style.BorderRadius }

// BorderColor returns the border color.
func (d *DomElement) BorderColor() Color { return d.style.BorderColor }

// BackgroundColor returns the fill color.
func (d *DomElement) BackgroundColor() Color { return d.style.BackgroundColor }

// AvailableBox returns the absolute content rectangle from the last layout.
func (d *DomElement) AvailableBox() Box { return d.availBox }

// ParentSize returns the size the element was last measured against.
func (d *DomElement) ParentSize() Vec2 { return d.parentSize }

// IsDirty reports whether the element changed since it was last laid out.
func (d *DomElement) IsDirty() bool { return d.dirty }

// ResolvedSize returns the resolved width and height.
func (d *DomElement) ResolvedSize() Vec2 {
	return Vec2{d.style.Width.Value(), d.style.Height.Value()}
}

// SetDirty sets the dirty flag directly. The layout pass uses it to mark an
// element clean.
func (d *DomElement) SetDirty(dirty bool) {
	d.dirty = dirty
}

// SetLayout sets how children are arranged.
func (d *DomElement) SetLayout(k LayoutKind) {
	d.layout = k
	d.dirty = true
}

// SetStyle replaces the whole style.
func (d *DomElement) SetStyle(s Style) {
	d.style = s
	d.dirty = true
}

// SetWidth sets the declared width.
func (d *DomElement) SetWidth(s Size) {
	d.style.Width = s
	d.dirty = true
}

// SetHeight sets the declared height.
func (d *DomElement) SetHeight(s Size) {
	d.style.Height = s
	d.dirty = true
}

// SetMargin sets the margin.
func (d *DomElement) SetMargin(e Edges) {
	d.style.Margin = e
	d.dirty = true
}

// SetPadding sets the padding.
func (d *DomElement) SetPadding(e Edges) {
	d.style.Padding = e
	d.dirty = true
}

// SetBorder sets the border widths.
func (d *DomElement) SetBorder(e Edges) {
	d.style.Border = e
	d.dirty = true
}

// SetBorderRadius sets the corner radii.
func (d *DomElement) SetBorderRadius(e Edges) {
	d.style.BorderRadius = e
	d.dirty = true
}

// SetBorderColor sets the border color.
func (d *DomElement) SetBorderColor(c Color) {
	d.style.BorderColor = c
	d.dirty = true
}

// SetBackgroundColor sets the fill color.
func (d *DomElement) SetBackgroundColor(c Color) {
	d.style.BackgroundColor = c
	d.dirty = true
}

// SetAvailableBox sets the absolute screen rectangle of the element.
func (d *DomElement) SetAvailableBox(b Box) {
	d.availBox = b
	d.dirty = true
}

// SetParentSize records the parent size the element was last measured
// against.
func (d *DomElement) SetParentSize(v Vec2) {
	d.parentSize = v
	d.dirty = true
}

// setResolvedWidth overrides the resolved width but keeps the declared
// parameter, so a later pass can resolve it again.
func (d *DomElement) setResolvedWidth(v float64) {
	d.style.Width = d.style.Width.withValue(v)
	d.dirty = true
}

// EdgeWidth is the resolved left+right margin, border and padding.
func (d *DomElement) EdgeWidth() float64 {
	return d.style.Margin.Horizontal() + d.style.Border.Horizontal() + d.style.Padding.Horizontal()
}

// EdgeHeight is the resolved top+bottom margin, border and padding.
func (d *DomElement) EdgeHeight() float64 {
	return d.style.Margin.Vertical() + d.style.Border.Vertical() + d.style.Padding.Vertical()
}

// LeftTop is the offset from the element's outer (margin) corner to its
// content corner.
func (d *DomElement) LeftTop() Vec2 {
	s := &d.style
	return Vec2{
		X: s.Margin.Left.Value() + s.Border.Left.Value() + s.Padding.Left.Value(),
		Y: s.Margin.Top.Value() + s.Border.Top.Value() + s.Padding.Top.Value(),
	}
}

// BoxWidth is the resolved width plus EdgeWidth.
func (d *DomElement) BoxWidth() float64 {
	return d.style.Width.Value() + d.EdgeWidth()
}

// BoxHeight is the resolved height plus EdgeHeight.
func (d *DomElement) BoxHeight() float64 {
	return d.style.Height.Value() + d.EdgeHeight()
}

// String formats the element as <tag #id WxH>.
func (d *DomElement) String() string {
	return fmt.Sprintf("<%s %s %gx%g>", d.tag, d.nodeID, d.style.Width.Value(), d.style.Height.Value())
}
