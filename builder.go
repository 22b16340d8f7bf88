package bramble

// Element is a declarative description of a UI subtree. Configure it with
// the chainable setters, then Build it into render, event and data trees.
//
//	root := bramble.Div().Children(
//		bramble.Div().Height("30").BackgroundColor("#ff0000ff").OnClick(onHeader),
//		bramble.Div().Height("100%").Data(state),
//	)
//	trees := root.Build()
//
// Size arguments accept a Size, a number or a style string ("40", "50%").
// Edge arguments also accept 1-4 value shorthand ("5 10"). Color arguments
// accept a Color, a style string ("#rrggbbaa") or a 0xRRGGBBAA number.
// Malformed strings fall back to zero (white for colors).
type Element struct {
	tag    string
	id     string
	class  string
	layout LayoutKind
	style  Style

	listener *EventListener
	data     any
	hasData  bool

	text      *textSpec
	newObject func(*DomElement) RenderObject

	children []*Element
	built    bool
}

type textSpec struct {
	content string
	size    float64
	color   Color
}

// NewElement starts a block element with the given tag.
func NewElement(tag string) *Element {
	return &Element{tag: tag, layout: LayoutBlock, style: DefaultStyle()}
}

// Div starts a block "div" element.
func Div() *Element {
	return NewElement("div")
}

// Span starts an inline "span" element.
func Span() *Element {
	return NewElement("span").Layout(LayoutInline)
}

// Paragraph starts a "p" element that paints text.
func Paragraph(text string) *Element {
	e := NewElement("p")
	e.text = &textSpec{content: text, size: DefaultFontSize, color: ColorBlack}
	return e
}

// Tag returns the element's tag name.
func (e *Element) Tag() string { return e.tag }

// ID sets the user-facing id looked up by Document.FindByID.
func (e *Element) ID(id string) *Element {
	e.id = id
	return e
}

// Class sets the class name.
func (e *Element) Class(class string) *Element {
	e.class = class
	return e
}

// Layout sets how the element arranges its children.
func (e *Element) Layout(k LayoutKind) *Element {
	e.layout = k
	return e
}

// Style replaces the whole style. Later field setters still apply on top.
func (e *Element) Style(s Style) *Element {
	e.style = s
	return e
}

// Width sets the declared width. v is a Size, a number of pixels or a
// string such as "50%" or "120".
func (e *Element) Width(v any) *Element {
	e.style.Width = toSize(v)
	return e
}

// Height sets the declared height. Accepts the same forms as Width.
func (e *Element) Height(v any) *Element {
	e.style.Height = toSize(v)
	return e
}

// Margin sets the margin from Edges, a number or CSS-style shorthand.
func (e *Element) Margin(v any) *Element {
	e.style.Margin = toEdges(v)
	return e
}

// Padding sets the padding. Accepts the same forms as Margin.
func (e *Element) Padding(v any) *Element {
	e.style.Padding = toEdges(v)
	return e
}

// Border sets the border widths. Accepts the same forms as Margin.
func (e *Element) Border(v any) *Element {
	e.style.Border = toEdges(v)
	return e
}

// BorderRadius sets the corner radii. Only the top-left one is painted.
func (e *Element) BorderRadius(v any) *Element {
	e.style.BorderRadius = toEdges(v)
	return e
}

// BorderColor sets the border color from a Color, a 0xRRGGBBAA number or
// a color string.
func (e *Element) BorderColor(v any) *Element {
	e.style.BorderColor = toColor(v)
	return e
}

// BackgroundColor sets the fill color. Accepts the same forms as BorderColor.
func (e *Element) BackgroundColor(v any) *Element {
	e.style.BackgroundColor = toColor(v)
	return e
}

// FontSize sets the text size of a Paragraph. No-op on other elements.
func (e *Element) FontSize(size float64) *Element {
	if e.text != nil {
		e.text.size = size
	}
	return e
}

// TextColor sets the text color of a Paragraph. No-op on other elements.
func (e *Element) TextColor(v any) *Element {
	if e.text != nil {
		e.text.color = toColor(v)
	}
	return e
}

// Object overrides the render object built for this element. fn receives
// the element state and must return an object whose Dom returns it.
func (e *Element) Object(fn func(*DomElement) RenderObject) *Element {
	e.newObject = fn
	return e
}

func (e *Element) listen() *EventListener {
	if e.listener == nil {
		e.listener = &EventListener{}
	}
	return e.listener
}

// OnClick registers a click handler.
func (e *Element) OnClick(fn func(Click)) *Element {
	e.listen().OnClick = fn
	return e
}

// OnMouseEnter registers a mouse-enter handler.
func (e *Element) OnMouseEnter(fn func(MouseEnter)) *Element {
	e.listen().OnMouseEnter = fn
	return e
}

// OnMouseLeave registers a mouse-leave handler.
func (e *Element) OnMouseLeave(fn func(MouseLeave)) *Element {
	e.listen().OnMouseLeave = fn
	return e
}

// OnMouseMove registers a mouse-move handler.
func (e *Element) OnMouseMove(fn func(MouseMove)) *Element {
	e.listen().OnMouseMove = fn
	return e
}

// OnMouseOut registers a mouse-out handler.
func (e *Element) OnMouseOut(fn func(MouseOut)) *Element {
	e.listen().OnMouseOut = fn
	return e
}

// OnMouseOver registers a mouse-over handler.
func (e *Element) OnMouseOver(fn func(MouseOver)) *Element {
	e.listen().OnMouseOver = fn
	return e
}

// OnMouseUp registers a mouse-up handler.
func (e *Element) OnMouseUp(fn func(MouseUp)) *Element {
	e.listen().OnMouseUp = fn
	return e
}

// Data attaches an arbitrary payload. The element then appears in the data
// tree even if v is nil.
func (e *Element) Data(v any) *Element {
	e.data = v
	e.hasData = true
	return e
}

// Child appends one child.
func (e *Element) Child(c *Element) *Element {
	e.children = append(e.children, c)
	return e
}

// Children appends children in order.
func (e *Element) Children(cs ...*Element) *Element {
	e.children = append(e.children, cs...)
	return e
}

// Build builds the element with identities from DefaultIDs.
func (e *Element) Build() Trees {
	return NewBuilder(DefaultIDs).Build(e)
}

// Trees is the result of a build. Render always holds one node per element.
// Events and Data are the minimal subtrees connecting the root to every
// element that declared a listener or payload; either is nil when there was
// none.
type Trees struct {
	Render *TreeNode[RenderObject]
	Events *TreeNode[*EventObject]
	Data   *TreeNode[*DataObject]
}

// Builder turns Elements into trees, drawing one identity per element in
// pre-order from its IDSource.
type Builder struct {
	ids IDSource
}

// NewBuilder returns a builder drawing from ids. A nil ids uses DefaultIDs.
func NewBuilder(ids IDSource) *Builder {
	if ids == nil {
		ids = DefaultIDs
	}
	return &Builder{ids: ids}
}

// Build consumes e. Building the same Element twice panics.
func (b *Builder) Build(e *Element) Trees {
	r, ev, d := b.build(e)
	return Trees{Render: r, Events: ev, Data: d}
}

func (b *Builder) build(e *Element) (*TreeNode[RenderObject], *TreeNode[*EventObject], *TreeNode[*DataObject]) {
	if e == nil {
		panic("bramble: cannot build nil element")
	}
	if e.built {
		panic("bramble: element " + e.tag + " was already built")
	}
	e.built = true

	dom := NewDomElement(e.tag, b.ids.Next())
	dom.ID = e.id
	dom.Class = e.class
	dom.SetLayout(e.layout)
	dom.SetStyle(e.style)

	renderNode := NewTreeNode(e.renderObject(dom))

	var eventNode *TreeNode[*EventObject]
	if e.listener != nil && !e.listener.IsEmpty() {
		eventNode = NewTreeNode(&EventObject{Node: renderNode, Listener: e.listener})
	}
	var dataNode *TreeNode[*DataObject]
	if e.hasData {
		dataNode = NewTreeNode(&DataObject{Node: renderNode, Data: e.data})
	}

	var childEvents []*TreeNode[*EventObject]
	var childData []*TreeNode[*DataObject]
	for _, c := range e.children {
		cr, ce, cd := b.build(c)
		renderNode.Append(cr)
		if ce != nil {
			childEvents = append(childEvents, ce)
		}
		if cd != nil {
			childData = append(childData, cd)
		}
	}

	eventNode = mergeOverlay(eventNode, childEvents, func() *EventObject {
		return &EventObject{Node: renderNode}
	})
	dataNode = mergeOverlay(dataNode, childData, func() *DataObject {
		return &DataObject{Node: renderNode, connector: true}
	})
	return renderNode, eventNode, dataNode
}

func (e *Element) renderObject(dom *DomElement) RenderObject {
	switch {
	case e.newObject != nil:
		return e.newObject(dom)
	case e.text != nil:
		t := NewTextObject(dom, e.text.content)
		t.FontSize = e.text.size
		t.Color = e.text.color
		return t
	}
	return NewBlockObject(dom)
}

// mergeOverlay attaches the overlay nodes produced by an element's children.
// An element without its own overlay node gets a connector as soon as one
// child produced one, so every overlay node keeps the full path of its
// ancestors up to the root.
func mergeOverlay[T any](own *TreeNode[T], kids []*TreeNode[T], connector func() T) *TreeNode[T] {
	if len(kids) == 0 {
		return own
	}
	if own == nil {
		own = NewTreeNode(connector())
	}
	for _, k := range kids {
		own.Append(k)
	}
	return own
}
