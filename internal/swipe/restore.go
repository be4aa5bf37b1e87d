package swipe

import (
	"github.com/renato0307/swipelist/internal/logging"
	"github.com/renato0307/swipelist/internal/ports"
)

// RestoreGate returns a stuck open item to idle on the next tap inside a boundary.
// At most one listener is installed at a time and it removes itself after one tap.
type RestoreGate struct {
	boundary  ports.Boundary
	onRestore func()
	remove    func()
}

// NewRestoreGate creates a disarmed gate calling onRestore when it fires
func NewRestoreGate(onRestore func()) *RestoreGate {
	return &RestoreGate{onRestore: onRestore}
}

// Arm installs the capture listener on boundary, replacing any previous one
func (g *RestoreGate) Arm(boundary ports.Boundary) {
	g.Disarm()
	if boundary == nil {
		logging.Logger.Debug("Restore gate has no boundary, tap to restore disabled")
		return
	}
	g.boundary = boundary
	g.remove = boundary.AddTapCapture(g.handle)
}

// Armed reports whether a listener is installed
func (g *RestoreGate) Armed() bool {
	return g.remove != nil
}

// Disarm removes the listener if installed
func (g *RestoreGate) Disarm() {
	if g.remove == nil {
		return
	}
	g.remove()
	g.remove = nil
	g.boundary = nil
}

func (g *RestoreGate) handle(ev *ports.TapEvent) {
	if g.remove == nil {
		return
	}
	actionable := withinActionable(g.boundary, ev.Target, ActionableClasses)
	if !actionable {
		ev.StopPropagation()
	}
	logging.Logger.Debug("Restore gate tapped", "actionable", actionable)

	g.Disarm()
	if g.onRestore != nil {
		g.onRestore()
	}
}
