package bramble

import (
	"log"
)

// FrameObserver is notified after every Frame. The ecs submodule uses it to
// mirror the data tree into an ECS world.
type FrameObserver interface {
	ObserveFrame(doc *Document, stats FrameStats)
}

// Document is the top-level object that owns the render, event and data
// trees, the per-node memory store and the running tweens.
type Document struct {
	// ScreenshotDir is where Screenshot captures are written. Empty means
	// DefaultScreenshotDir.
	ScreenshotDir string

	trees  Trees
	memory *Memory

	debug  bool
	logger *log.Logger
	warned map[LayoutKind]bool
	stats  FrameStats

	tweens   []*TweenGroup
	onUpdate func(dt float32) error
	observer FrameObserver

	screenshots []string
}

// NewDocument builds el with identities from DefaultIDs.
func NewDocument(el *Element) *Document {
	return NewDocumentWith(NewBuilder(DefaultIDs), el)
}

// NewDocumentWith builds el with b.
func NewDocumentWith(b *Builder, el *Element) *Document {
	return NewDocumentFromTrees(b.Build(el))
}

// NewDocumentFromTrees wraps trees that were already built.
// Panics if t has no render tree.
func NewDocumentFromTrees(t Trees) *Document {
	if t.Render == nil {
		panic("bramble: document needs a render tree")
	}
	return &Document{
		trees:  t,
		memory: NewMemory(),
		logger: newDefaultLogger(),
	}
}

// RenderTree returns the root of the render tree.
func (d *Document) RenderTree() *TreeNode[RenderObject] {
	return d.trees.Render
}

// EventTree returns the root of the event tree, or nil.
func (d *Document) EventTree() *TreeNode[*EventObject] {
	return d.trees.Events
}

// DataTree returns the root of the data tree, or nil.
func (d *Document) DataTree() *TreeNode[*DataObject] {
	return d.trees.Data
}

// Root returns the root element.
func (d *Document) Root() *DomElement {
	return d.trees.Render.Value.Dom()
}

// Memory returns the document's per-node memory store.
func (d *Document) Memory() *Memory {
	return d.memory
}

// Find returns the render node with the given identity, or nil.
func (d *Document) Find(id NodeID) *TreeNode[RenderObject] {
	for n := range d.trees.Render.Descendants() {
		if n.Value.NodeID() == id {
			return n
		}
	}
	return nil
}

// FindByID returns the first render node, in tree order, whose element ID
// is id.
func (d *Document) FindByID(id string) *TreeNode[RenderObject] {
	for n := range d.trees.Render.Descendants() {
		if n.Value.Dom().ID == id {
			return n
		}
	}
	return nil
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame
// timing stats, tree depth and child count warnings, and unsupported
// layout kinds are logged.
func (d *Document) SetDebugMode(enabled bool) {
	d.debug = enabled
}

// SetLogger replaces the debug logger. nil restores the stderr default.
func (d *Document) SetLogger(l *log.Logger) {
	if l == nil {
		l = newDefaultLogger()
	}
	d.logger = l
}

// Stats returns the metrics of the last Frame.
func (d *Document) Stats() FrameStats {
	return d.stats
}

// SetFrameObserver sets the optional observer called after each Frame.
func (d *Document) SetFrameObserver(o FrameObserver) {
	d.observer = o
}

// SetUpdateFunc sets a callback run by Update before tweens advance. An
// error it returns stops Update and is passed on to the caller.
func (d *Document) SetUpdateFunc(fn func(dt float32) error) {
	d.onUpdate = fn
}

// AddTween registers a tween group. Update advances it until it is Done.
func (d *Document) AddTween(g *TweenGroup) {
	if g == nil {
		return
	}
	d.tweens = append(d.tweens, g)
}

// Tweens returns the number of running tween groups.
func (d *Document) Tweens() int {
	return len(d.tweens)
}

// Update runs the update callback, advances tweens by dt seconds and
// drops the finished ones.
func (d *Document) Update(dt float32) error {
	if d.onUpdate != nil {
		if err := d.onUpdate(dt); err != nil {
			return err
		}
	}
	live := d.tweens[:0]
	for _, g := range d.tweens {
		g.Update(dt)
		if !g.Done {
			live = append(live, g)
		}
	}
	clear(d.tweens[len(live):])
	d.tweens = live
	return nil
}

// Resize forwards the new viewport size to p and marks the root dirty.
// The next Frame lays the tree out against the new size.
func (d *Document) Resize(p Painter, size Vec2) {
	p.Resize(size)
	d.Root().SetParentSize(size)
}
