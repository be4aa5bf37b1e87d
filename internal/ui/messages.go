package ui

import (
	"github.com/renato0307/swipelist/internal/domain"
	"github.com/renato0307/swipelist/internal/services"
)

// clearErrorMsg clears the displayed error
type clearErrorMsg struct{}

// itemsLoadedMsg carries a fresh item list from storage
type itemsLoadedMsg struct {
	err   error
	items []domain.Item
}

// swipeCompletedMsg is emitted once per committed swipe, after the configured delay
type swipeCompletedMsg struct {
	direction domain.Direction
	itemID    string
}

// buttonTappedMsg is emitted when a pane button of a swiped-out item is tapped
type buttonTappedMsg struct {
	action domain.SwipeAction
	itemID string
}

// dispatchResultMsg carries the outcome of a host action
type dispatchResultMsg struct {
	err    error
	result services.DispatchResult
}

// itemAddedMsg reports the outcome of the add item form
type itemAddedMsg struct {
	err  error
	item *domain.Item
}
