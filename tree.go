package bramble

import "iter"

// TreeNode is a generic ordered tree node. Handles are pointers: copying a
// *TreeNode refers to the same underlying node, it never duplicates it.
//
// A node has at most one parent. Append enforces this, so a node can appear
// in exactly one place in exactly one tree.
type TreeNode[T any] struct {
	Value T

	parent   *TreeNode[T]
	children []*TreeNode[T]
}

// NewTreeNode returns a detached node holding v.
func NewTreeNode[T any](v T) *TreeNode[T] {
	return &TreeNode[T]{Value: v}
}

// Append attaches child as the last child of n.
// Panics if child is nil, already has a parent, or is an ancestor of n.
func (n *TreeNode[T]) Append(child *TreeNode[T]) {
	if child == nil {
		panic("bramble: cannot append nil child")
	}
	if child.parent != nil {
		panic("bramble: child already has a parent; Detach it first")
	}
	for p := n; p != nil; p = p.parent {
		if p == child {
			panic("bramble: appending child would create a cycle")
		}
	}
	child.parent = n
	n.children = append(n.children, child)
}

// Detach removes n from its parent. No-op for a root.
func (n *TreeNode[T]) Detach() {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == n {
			copy(p.children[i:], p.children[i+1:])
			p.children[len(p.children)-1] = nil
			p.children = p.children[:len(p.children)-1]
			break
		}
	}
	n.parent = nil
}

// Parent returns the parent node, or nil for a root.
func (n *TreeNode[T]) Parent() *TreeNode[T] {
	return n.parent
}

// Children returns the child list in insertion order. The returned slice
// MUST NOT be mutated by the caller.
func (n *TreeNode[T]) Children() []*TreeNode[T] {
	return n.children
}

// NumChildren returns the number of children.
func (n *TreeNode[T]) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at index i.
func (n *TreeNode[T]) ChildAt(i int) *TreeNode[T] {
	return n.children[i]
}

// FirstChild returns the first child or nil.
func (n *TreeNode[T]) FirstChild() *TreeNode[T] {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// LastChild returns the last child or nil.
func (n *TreeNode[T]) LastChild() *TreeNode[T] {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[len(n.children)-1]
}

// IsRoot reports whether n has no parent.
func (n *TreeNode[T]) IsRoot() bool {
	return n.parent == nil
}

// Depth returns the number of ancestors of n.
func (n *TreeNode[T]) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// EdgeKind tells whether a traversal edge enters or leaves a node.
type EdgeKind uint8

const (
	Enter EdgeKind = iota
	Exit
)

func (k EdgeKind) String() string {
	if k == Enter {
		return "enter"
	}
	return "exit"
}

// Edge is one step of a Traverse walk.
type Edge[T any] struct {
	Kind EdgeKind
	Node *TreeNode[T]
}

// Traverse yields Enter and Exit edges for the subtree rooted at n. A node's
// Enter precedes every edge of its descendants, which precede its Exit.
//
// The walk is lazy: it reads the child list of a node when it descends into
// it, so children appended during an Enter edge are visited.
func (n *TreeNode[T]) Traverse() iter.Seq[Edge[T]] {
	return func(yield func(Edge[T]) bool) {
		n.walk(yield)
	}
}

func (n *TreeNode[T]) walk(yield func(Edge[T]) bool) bool {
	if !yield(Edge[T]{Kind: Enter, Node: n}) {
		return false
	}
	for i := 0; i < len(n.children); i++ {
		if !n.children[i].walk(yield) {
			return false
		}
	}
	return yield(Edge[T]{Kind: Exit, Node: n})
}

// Descendants yields n and every node below it in pre-order.
func (n *TreeNode[T]) Descendants() iter.Seq[*TreeNode[T]] {
	return func(yield func(*TreeNode[T]) bool) {
		for e := range n.Traverse() {
			if e.Kind == Enter && !yield(e.Node) {
				return
			}
		}
	}
}

// Len returns the number of nodes in the subtree rooted at n.
func (n *TreeNode[T]) Len() int {
	count := 0
	for range n.Descendants() {
		count++
	}
	return count
}
