package swipe

import "github.com/renato0307/swipelist/internal/domain"

// Phase is the state of a SwipeSession
type Phase string

const (
	PhaseIdle         Phase = "idle"
	PhaseDragging     Phase = "dragging"
	PhaseScrollLocked Phase = "scroll-locked"
	PhaseSwipedOut    Phase = "swiped-out"
	PhaseRestoring    Phase = "restoring" // committed reset waiting for its delay
)

// Session is the transient state of one gesture. The zero value is idle.
type Session struct {
	Compensation float64 // deltaX of the first sample
	Direction    domain.Direction
	Geometry     GeometrySnapshot
	Percentage   float64
	// Pending is set while a reset or hide sequence still has scheduled stages
	Pending bool
	Phase   Phase
}

func idleSession() Session {
	return Session{Phase: PhaseIdle}
}

// Active reports whether a drag is in progress
func (s Session) Active() bool {
	return s.Phase == PhaseDragging || s.Phase == PhaseScrollLocked
}
