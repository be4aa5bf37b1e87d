package view

import (
	"github.com/renato0307/swipelist/internal/domain"
	"github.com/renato0307/swipelist/internal/ports"
)

// Node is an in-memory view tree element with classes, bounds and tap capture listeners
type Node struct {
	bounds   domain.Rect
	captures map[int]func(*ports.TapEvent)
	children []*Node
	classes  map[string]bool
	name     string
	nextID   int
	parent   *Node
}

// Verify interface compliance at compile time
var _ ports.Boundary = (*Node)(nil)

// NewNode creates a detached node
func NewNode(name string, bounds domain.Rect, classes ...string) *Node {
	n := &Node{
		bounds:  bounds,
		classes: make(map[string]bool, len(classes)),
		name:    name,
	}
	for _, c := range classes {
		n.classes[c] = true
	}
	return n
}

// Append attaches children and returns n for chaining
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

// Bounds implements ports.Element
func (n *Node) Bounds() domain.Rect { return n.bounds }

// SetBounds moves or resizes the node
func (n *Node) SetBounds(r domain.Rect) { n.bounds = r }

// Children implements ports.Element
func (n *Node) Children() []ports.Element {
	out := make([]ports.Element, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

// HasClass implements ports.Element
func (n *Node) HasClass(class string) bool { return n.classes[class] }

// AddClass adds a class
func (n *Node) AddClass(class string) { n.classes[class] = true }

// SetClass adds or removes a class
func (n *Node) SetClass(class string, on bool) {
	if on {
		n.classes[class] = true
		return
	}
	delete(n.classes, class)
}

// Visible reports whether the node takes part in hit testing
func (n *Node) Visible() bool {
	return !n.classes[string(domain.PaneHidden)] && !n.classes[string(domain.PaneHide)]
}

// Name implements ports.Element
func (n *Node) Name() string { return n.name }

// Parent implements ports.Element
func (n *Node) Parent() ports.Element {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// AddTapCapture implements ports.Boundary
func (n *Node) AddTapCapture(fn func(*ports.TapEvent)) func() {
	if n.captures == nil {
		n.captures = make(map[int]func(*ports.TapEvent))
	}
	n.nextID++
	id := n.nextID
	n.captures[id] = fn
	return func() { delete(n.captures, id) }
}

// CaptureListeners returns the number of installed capture listeners
func (n *Node) CaptureListeners() int {
	return len(n.captures)
}

// Find returns the first descendant named name
func (n *Node) Find(name string) *Node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// HitTest returns the deepest visible node containing the point, or nil
func (n *Node) HitTest(x, y float64) *Node {
	if !n.Visible() || !n.bounds.Contains(x, y) {
		return nil
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit := n.children[i].HitTest(x, y); hit != nil {
			return hit
		}
	}
	return n
}

// Tap dispatches a tap at target through the capture listeners of its ancestors,
// outermost first. It returns false when a listener stopped propagation.
func Tap(target *Node) bool {
	var path []*Node
	for n := target; n != nil; n = n.parent {
		path = append(path, n)
	}

	ev := &ports.TapEvent{Target: target}
	for i := len(path) - 1; i >= 0; i-- {
		node := path[i]
		listeners := make([]func(*ports.TapEvent), 0, len(node.captures))
		for id := 1; id <= node.nextID; id++ {
			if fn, ok := node.captures[id]; ok {
				listeners = append(listeners, fn)
			}
		}
		for _, fn := range listeners {
			fn(ev)
		}
		if ev.PropagationStopped() {
			return false
		}
	}
	return true
}
