package domain

import (
	"fmt"
	"time"
)

// Item is an entry of the swipeable list
type Item struct {
	ArchivedAt *time.Time
	CreatedAt  time.Time
	ID         string
	IsArchived bool
	IsFlagged  bool
	Note       string
	Position   int
	Title      string
}

// SwipeAction is what the host does once a swipe in a direction completes
type SwipeAction string

const (
	SwipeActionDisabled  SwipeAction = "disabled"
	SwipeActionDoNothing SwipeAction = "do_nothing"
	SwipeActionArchive   SwipeAction = "archive"
	SwipeActionDelete    SwipeAction = "delete"
	SwipeActionFlag      SwipeAction = "flag"
	SwipeActionOpen      SwipeAction = "open"
)

// ParseSwipeAction validates an on-swipe action name
func ParseSwipeAction(s string) (SwipeAction, error) {
	switch SwipeAction(s) {
	case SwipeActionDisabled, SwipeActionDoNothing, SwipeActionArchive,
		SwipeActionDelete, SwipeActionFlag, SwipeActionOpen:
		return SwipeAction(s), nil
	}
	return "", fmt.Errorf("invalid on swipe action '%s'", s)
}

// Enabled reports whether swiping in the direction is allowed at all
func (a SwipeAction) Enabled() bool {
	return a != "" && a != SwipeActionDisabled
}
