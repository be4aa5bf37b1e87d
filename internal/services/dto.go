package services

import (
	"time"

	"github.com/renato0307/swipelist/internal/domain"
)

// AddItemParams contains parameters for creating a new item
type AddItemParams struct {
	Note  string
	Title string
}

// DirectionSettings is the host-level configuration of one swipe direction
type DirectionSettings struct {
	AfterBackground string
	AfterSwipe      domain.PostSwipeAction
	Background      string
	// Buttons rendered in the background pane when AfterSwipe is button
	Buttons []domain.SwipeAction
	Delay   time.Duration
	Fade    bool
	OnSwipe domain.SwipeAction
}

// SwipeSettings is the host-level swipe configuration shared by every row
type SwipeSettings struct {
	AllowMouse bool
	Foreground string
	Left       DirectionSettings
	Right      DirectionSettings
}

// Direction returns the settings for d
func (s SwipeSettings) Direction(d domain.Direction) DirectionSettings {
	if d == domain.DirectionLeft {
		return s.Left
	}
	return s.Right
}

// DispatchResult describes what the host did after a completed swipe
type DispatchResult struct {
	Action    domain.SwipeAction
	Direction domain.Direction
	ItemID    string
	// Open is set when the caller should show the item detail view
	Open bool
	// Refresh is set when the stored list changed and must be reloaded
	Refresh bool
}
