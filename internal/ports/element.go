package ports

import "github.com/renato0307/swipelist/internal/domain"

// Element is a node of the rendered view tree
type Element interface {
	Bounds() domain.Rect
	Children() []Element
	HasClass(class string) bool
	Name() string
	Parent() Element
}

// TapEvent is a tap delivered to capture listeners of a Boundary
type TapEvent struct {
	Target  Element
	stopped bool
}

// StopPropagation prevents the tap from reaching its target
func (e *TapEvent) StopPropagation() {
	e.stopped = true
}

// PropagationStopped reports whether a capture listener stopped the tap
func (e *TapEvent) PropagationStopped() bool {
	return e.stopped
}

// Boundary is an ancestor element that accepts capture-phase tap listeners
type Boundary interface {
	Element
	// AddTapCapture registers fn and returns a function removing it
	AddTapCapture(fn func(*TapEvent)) (remove func())
}
