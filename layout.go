package bramble

import "time"

// Frame runs one layout and paint pass over the render tree, then asks p
// to present the frame.
//
// The root is forced to a block of exactly the viewport size and painted
// first. Every node then positions its children on its Enter edge, and each
// non-root node is laid out and painted right after its parent positioned
// it, so paint calls arrive parents first.
func (d *Document) Frame(p Painter) {
	var stats FrameStats
	t0 := time.Now()
	cp := countingPainter{Painter: p, stats: &stats}

	root := d.trees.Render
	initRoot(root.Value.Dom(), p.Size())
	root.Value.Paint(cp)
	stats.Nodes++

	for e := range root.Traverse() {
		n := e.Node
		switch e.Kind {
		case Enter:
			if d.debug {
				d.debugCheckTreeDepth(n, n.Depth()+1)
				d.debugCheckChildCount(n)
			}
			d.arrange(n, &stats)
			if parent := n.Parent(); parent != nil {
				n.Value.Layout(parent.Value.Dom())
				n.Value.Paint(cp)
				stats.Nodes++
			}
		case Exit:
			if h, ok := n.Value.(ExitHook); ok {
				h.Exit(cp)
			}
		}
	}
	root.Value.Dom().SetDirty(false)
	stats.LayoutTime = time.Since(t0)

	t0 = time.Now()
	p.Render()
	stats.RenderTime = time.Since(t0)

	d.stats = stats
	d.debugLog(stats)
	if d.observer != nil {
		d.observer.ObserveFrame(d, stats)
	}
}

func initRoot(dom *DomElement, viewport Vec2) {
	dom.SetLayout(LayoutBlock)
	dom.SetWidth(Abs(viewport.X))
	dom.SetHeight(Abs(viewport.Y))
	dom.SetAvailableBox(NewBox(Vec2{}, viewport))
	dom.SetParentSize(viewport)
}

// arrange positions the children of n according to n's layout kind.
func (d *Document) arrange(n *TreeNode[RenderObject], stats *FrameStats) {
	if n.NumChildren() == 0 {
		return
	}
	dom := n.Value.Dom()
	switch dom.Layout() {
	case LayoutBlock:
		layoutBlock(dom, n.Children())
	default:
		// Inline, inline-block and the flex kinds have no implementation:
		// children keep whatever box they had.
		stats.Skipped++
		d.debugUnsupported(dom.Layout(), dom)
	}
}

// layoutBlock stacks children top to bottom. Each child spans the parent's
// width minus its own edges; its height resolves against the parent height.
func layoutBlock(parent *DomElement, children []*TreeNode[RenderObject]) {
	size := parent.ResolvedSize()
	cursor := parent.AvailableBox().Min
	for _, c := range children {
		dom := c.Value.Dom()
		dom.SetMargin(dom.Margin().Resolve(size))
		dom.SetPadding(dom.Padding().Resolve(size))
		dom.SetBorder(dom.Border().Resolve(size))
		dom.setResolvedWidth(max(0, size.X-dom.EdgeWidth()))
		dom.SetHeight(dom.Height().Resolve(size.Y))

		origin := cursor.Add(dom.LeftTop())
		dom.SetAvailableBox(NewBox(origin, origin.Add(dom.ResolvedSize())))
		dom.SetParentSize(size)
		cursor.Y += dom.BoxHeight()
	}
}
