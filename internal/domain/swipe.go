package domain

import "fmt"

// Direction is the horizontal direction a swipe was committed in
type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// Directions lists both directions in a stable order
var Directions = []Direction{DirectionLeft, DirectionRight}

// Opposite returns the other direction
func (d Direction) Opposite() Direction {
	if d == DirectionLeft {
		return DirectionRight
	}
	return DirectionLeft
}

// Sign returns -1 for left and +1 for right
func (d Direction) Sign() float64 {
	if d == DirectionLeft {
		return -1
	}
	return 1
}

// DirectionOf derives the direction from the sign of a percentage or offset.
// Zero has no direction.
func DirectionOf(value float64) (Direction, bool) {
	switch {
	case value < 0:
		return DirectionLeft, true
	case value > 0:
		return DirectionRight, true
	default:
		return "", false
	}
}

// ParseDirection parses "left" or "right"
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DirectionLeft, DirectionRight:
		return Direction(s), nil
	}
	return "", fmt.Errorf("invalid direction '%s'", s)
}

// PostSwipeAction governs what happens after a swipe is committed in a direction
type PostSwipeAction string

const (
	// PostSwipeReset restores the item after the callback delay
	PostSwipeReset PostSwipeAction = "reset"
	// PostSwipeHide collapses and hides the item
	PostSwipeHide PostSwipeAction = "hide"
	// PostSwipeNone leaves the item swiped out until tapped
	PostSwipeNone PostSwipeAction = "none"
	// PostSwipeBack restores the item immediately
	PostSwipeBack PostSwipeAction = "back"
	// PostSwipeButton sticks the foreground at the edge of the action buttons
	PostSwipeButton PostSwipeAction = "button"
)

// ParsePostSwipeAction validates a post swipe action name
func ParsePostSwipeAction(s string) (PostSwipeAction, error) {
	switch PostSwipeAction(s) {
	case PostSwipeReset, PostSwipeHide, PostSwipeNone, PostSwipeBack, PostSwipeButton:
		return PostSwipeAction(s), nil
	}
	return "", fmt.Errorf("invalid after swipe action '%s'", s)
}

// StaysOpen reports whether the item remains swiped out waiting for a tap
func (a PostSwipeAction) StaysOpen() bool {
	return a == PostSwipeNone || a == PostSwipeButton
}

// Axis restricts which directions can be dragged
type Axis string

const (
	AxisLeft       Axis = "left"
	AxisRight      Axis = "right"
	AxisHorizontal Axis = "horizontal"
)

// Allows reports whether a drag towards d is permitted
func (a Axis) Allows(d Direction) bool {
	switch a {
	case AxisLeft:
		return d == DirectionLeft
	case AxisRight:
		return d == DirectionRight
	default:
		return true
	}
}

// Clamp forces a percentage pointing the disallowed way to 0
func (a Axis) Clamp(percentage float64) float64 {
	if a == AxisRight && percentage < 0 {
		return 0
	}
	if a == AxisLeft && percentage > 0 {
		return 0
	}
	return percentage
}

// VisualFlag is a named visual state set on the item container
type VisualFlag string

const (
	FlagAnimating       VisualFlag = "animating"
	FlagWillAccept      VisualFlag = "will-accept-swipe"
	FlagSwipingLeft     VisualFlag = "swiping-left"
	FlagSwipingRight    VisualFlag = "swiping-right"
	FlagHiddenCollapsed VisualFlag = "hidden-collapsed"
)

// SwipingFlag returns the container flag for a drag towards d
func SwipingFlag(d Direction) VisualFlag {
	if d == DirectionLeft {
		return FlagSwipingLeft
	}
	return FlagSwipingRight
}

// PaneFlag is a visibility flag set on a background or after pane
type PaneFlag string

const (
	// PaneHidden toggles panes while dragging
	PaneHidden PaneFlag = "hidden"
	// PaneHide removes a background pane once a hide swipe has settled
	PaneHide PaneFlag = "hide"
)
