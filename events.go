package bramble

import "strings"

// EventType identifies a kind of pointer event a listener can declare.
type EventType uint8

const (
	EventClick      EventType = iota // press then release over the same element
	EventMouseEnter                  // pointer enters the element's box
	EventMouseLeave                  // pointer leaves the element's box
	EventMouseMove                   // pointer moves inside the box
	EventMouseOut                    // pointer leaves the element or one of its children
	EventMouseOver                   // pointer enters the element or one of its children
	EventMouseUp                     // button released over the element
)

var eventNames = [...]string{
	EventClick:      "Click",
	EventMouseEnter: "MouseEnter",
	EventMouseLeave: "MouseLeave",
	EventMouseMove:  "MouseMove",
	EventMouseOut:   "MouseOut",
	EventMouseOver:  "MouseOver",
	EventMouseUp:    "MouseUp",
}

func (e EventType) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return "Unknown"
}

// Event payloads passed to listeners. They carry no fields yet.
type (
	Click      struct{}
	MouseEnter struct{}
	MouseLeave struct{}
	MouseMove  struct{}
	MouseOut   struct{}
	MouseOver  struct{}
	MouseUp    struct{}
)

func (Click) Name() string      { return EventClick.String() }
func (MouseEnter) Name() string { return EventMouseEnter.String() }
func (MouseLeave) Name() string { return EventMouseLeave.String() }
func (MouseMove) Name() string  { return EventMouseMove.String() }
func (MouseOut) Name() string   { return EventMouseOut.String() }
func (MouseOver) Name() string  { return EventMouseOver.String() }
func (MouseUp) Name() string    { return EventMouseUp.String() }

// EventListener bundles the optional callbacks an element declares.
// A nil field means "no listener".
type EventListener struct {
	OnClick      func(Click)
	OnMouseEnter func(MouseEnter)
	OnMouseLeave func(MouseLeave)
	OnMouseMove  func(MouseMove)
	OnMouseOut   func(MouseOut)
	OnMouseOver  func(MouseOver)
	OnMouseUp    func(MouseUp)
}

// Has reports whether a callback for t is set.
func (l *EventListener) Has(t EventType) bool {
	if l == nil {
		return false
	}
	switch t {
	case EventClick:
		return l.OnClick != nil
	case EventMouseEnter:
		return l.OnMouseEnter != nil
	case EventMouseLeave:
		return l.OnMouseLeave != nil
	case EventMouseMove:
		return l.OnMouseMove != nil
	case EventMouseOut:
		return l.OnMouseOut != nil
	case EventMouseOver:
		return l.OnMouseOver != nil
	case EventMouseUp:
		return l.OnMouseUp != nil
	}
	return false
}

// Types returns the event types that have a callback, in EventType order.
func (l *EventListener) Types() []EventType {
	var out []EventType
	for t := range eventNames {
		if l.Has(EventType(t)) {
			out = append(out, EventType(t))
		}
	}
	return out
}

// IsEmpty reports whether no callback is set.
func (l *EventListener) IsEmpty() bool {
	return len(l.Types()) == 0
}

// String lists the set callbacks, e.g. "Events{Click, MouseUp}".
func (l *EventListener) String() string {
	types := l.Types()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return "Events{" + strings.Join(names, ", ") + "}"
}

// EventObject is an event-tree node: the listener an element declared and a
// back-reference to that element's render node.
//
// Listener is nil for connector nodes: an element that declared no listener
// but joins two or more descendants that did. The Node reference is
// read-only during a layout pass.
type EventObject struct {
	Node     *TreeNode[RenderObject]
	Listener *EventListener
}

// NodeID returns the identity of the correlated render node.
func (e *EventObject) NodeID() NodeID {
	return e.Node.Value.NodeID()
}

// IsConnector reports whether the element declared no listener itself.
func (e *EventObject) IsConnector() bool {
	return e.Listener == nil
}

// DataObject is a data-tree node: the payload an element declared and a
// back-reference to its render node. Connector nodes have no payload and
// report IsConnector.
type DataObject struct {
	Node *TreeNode[RenderObject]
	Data any

	connector bool
}

// NodeID returns the identity of the correlated render node.
func (d *DataObject) NodeID() NodeID {
	return d.Node.Value.NodeID()
}

// IsConnector reports whether the element declared no payload itself.
func (d *DataObject) IsConnector() bool {
	return d.connector
}
