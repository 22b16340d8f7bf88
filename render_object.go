package bramble

// RenderObject is the behavior attached to every render-tree node. The
// layout pass positions children itself, then calls Layout and Paint on each
// non-root node in tree order.
//
// Custom kinds usually embed *BlockObject and override Layout or Paint.
type RenderObject interface {
	// Dom returns the element state. The pointer is stable for the life of
	// the tree.
	Dom() *DomElement

	// NodeID returns the element's identity.
	NodeID() NodeID

	// Layout finishes layout of this node once its parent has positioned
	// it. Implementations must leave the element clean.
	Layout(parent *DomElement)

	// Paint issues the node's draw calls.
	Paint(p Painter)
}

// ExitHook is implemented by render objects that need a callback after
// their whole subtree was laid out and painted, e.g. to pop a clip.
type ExitHook interface {
	Exit(p Painter)
}

// BlockObject is the default render object: a box painted as one quad.
type BlockObject struct {
	dom *DomElement
}

// NewBlockObject wraps dom.
func NewBlockObject(dom *DomElement) *BlockObject {
	return &BlockObject{dom: dom}
}

func (b *BlockObject) Dom() *DomElement { return b.dom }

func (b *BlockObject) NodeID() NodeID { return b.dom.NodeID() }

// Layout marks the element clean. A block parent has already placed the
// element during arrange; the other kinds have no per-child step yet.
func (b *BlockObject) Layout(parent *DomElement) {
	switch parent.Layout() {
	case LayoutBlock:
	case LayoutInline, LayoutInlineBlock, LayoutRowFlex, LayoutColFlex:
	}
	if b.dom.IsDirty() {
		b.dom.SetDirty(false)
	}
}

// Paint fills the available box with the background color. The border
// uses the top border width and the top-left radius.
func (b *BlockObject) Paint(p Painter) {
	p.Rect([]Quad{b.quad()})
}

func (b *BlockObject) quad() Quad {
	d := b.dom
	box := d.AvailableBox()
	radius := d.BorderRadius().Resolve(box.Size())
	return Quad{
		Rect:         box.Rect(),
		Color:        d.BackgroundColor(),
		BorderColor:  d.BorderColor(),
		BorderRadius: radius.Top.Value(),
		BorderWidth:  d.Border().Top.Value(),
	}
}

// DefaultFontSize is used by TextObject when no size is set.
const DefaultFontSize = 16

// TextObject is a block that also draws a run of text at its content origin.
type TextObject struct {
	*BlockObject

	Text     string
	FontSize float64
	Color    Color
}

// NewTextObject wraps dom with black text at DefaultFontSize.
func NewTextObject(dom *DomElement, text string) *TextObject {
	return &TextObject{
		BlockObject: NewBlockObject(dom),
		Text:        text,
		FontSize:    DefaultFontSize,
		Color:       ColorBlack,
	}
}

// Paint draws the background quad, then the text on top of it.
func (t *TextObject) Paint(p Painter) {
	t.BlockObject.Paint(p)
	if t.Text == "" {
		return
	}
	p.Text(t.Text, t.Dom().AvailableBox().Min, t.FontSize, t.Color)
}
