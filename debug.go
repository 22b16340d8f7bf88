package bramble

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

// FrameStats holds per-frame timing and paint metrics. Document fills it
// on every Frame; it is only logged in debug mode.
type FrameStats struct {
	LayoutTime time.Duration
	RenderTime time.Duration
	Nodes      int // render objects laid out, root included
	Quads      int
	TextRuns   int
	Skipped    int // nodes whose layout kind has no implementation
}

func newDefaultLogger() *log.Logger {
	return log.New(os.Stderr, "[bramble] ", 0)
}

// debugLog prints timing and paint stats.
func (d *Document) debugLog(stats FrameStats) {
	if !d.debug {
		return
	}
	d.logger.Printf("layout: %v | render: %v | total: %v",
		stats.LayoutTime, stats.RenderTime, stats.LayoutTime+stats.RenderTime)
	d.logger.Printf("nodes: %d | quads: %d | text runs: %d | skipped: %d",
		stats.Nodes, stats.Quads, stats.TextRuns, stats.Skipped)
}

const debugMaxTreeDepth = 32

func (d *Document) debugCheckTreeDepth(n *TreeNode[RenderObject], depth int) {
	if depth > debugMaxTreeDepth {
		d.logger.Printf("warning: tree depth %d exceeds %d (node %s)",
			depth, debugMaxTreeDepth, n.Value.Dom())
	}
}

const debugMaxChildCount = 1000

func (d *Document) debugCheckChildCount(n *TreeNode[RenderObject]) {
	if c := n.NumChildren(); c > debugMaxChildCount {
		d.logger.Printf("warning: node %s has %d children (threshold %d)",
			n.Value.Dom(), c, debugMaxChildCount)
	}
}

// debugUnsupported logs the first time a layout kind without an
// implementation is met.
func (d *Document) debugUnsupported(k LayoutKind, dom *DomElement) {
	if !d.debug || d.warned[k] {
		return
	}
	if d.warned == nil {
		d.warned = make(map[LayoutKind]bool)
	}
	d.warned[k] = true
	d.logger.Printf("warning: %s layout is not supported, children of %s keep their boxes", k, dom)
}

// countingPainter forwards to a Painter and counts draw calls.
type countingPainter struct {
	Painter
	stats *FrameStats
}

func (c countingPainter) Rect(quads []Quad) {
	c.stats.Quads += len(quads)
	c.Painter.Rect(quads)
}

func (c countingPainter) Text(s string, pos Vec2, size float64, col Color) {
	c.stats.TextRuns++
	c.Painter.Text(s, pos, size, col)
}

// DumpRenderTree writes an indented enter/exit trace of the render tree:
//
//	<div #0001 800x600>
//	  <div #0002 800x30>
//	  </div>
//	</div>
func DumpRenderTree(w io.Writer, root *TreeNode[RenderObject]) error {
	for e := range root.Traverse() {
		dom := e.Node.Value.Dom()
		indent := strings.Repeat("  ", e.Node.Depth())
		var err error
		if e.Kind == Enter {
			_, err = fmt.Fprintf(w, "%s<%s %s %gx%g>\n", indent, dom.Tag(), dom.NodeID(),
				dom.Width().Value(), dom.Height().Value())
		} else {
			_, err = fmt.Fprintf(w, "%s</%s>\n", indent, dom.Tag())
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// DumpEventTree writes one line per event-tree node with the listener
// callbacks it declares.
func DumpEventTree(w io.Writer, root *TreeNode[*EventObject]) error {
	if root == nil {
		return nil
	}
	for n := range root.Descendants() {
		ev := n.Value
		desc := "connector"
		if !ev.IsConnector() {
			desc = ev.Listener.String()
		}
		_, err := fmt.Fprintf(w, "%s%s %s %s\n", strings.Repeat("  ", n.Depth()),
			ev.Node.Value.Dom().Tag(), ev.NodeID(), desc)
		if err != nil {
			return err
		}
	}
	return nil
}

// DumpDataTree writes one line per data-tree node with its payload.
func DumpDataTree(w io.Writer, root *TreeNode[*DataObject]) error {
	if root == nil {
		return nil
	}
	for n := range root.Descendants() {
		do := n.Value
		desc := "connector"
		if !do.IsConnector() {
			desc = fmt.Sprintf("%v", do.Data)
		}
		_, err := fmt.Fprintf(w, "%s%s %s %s\n", strings.Repeat("  ", n.Depth()),
			do.Node.Value.Dom().Tag(), do.NodeID(), desc)
		if err != nil {
			return err
		}
	}
	return nil
}
