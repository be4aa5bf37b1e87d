package services

import (
	"context"
	"fmt"

	"github.com/renato0307/swipelist/internal/domain"
	"github.com/renato0307/swipelist/internal/logging"
)

// SwipeDispatcher maps a completed swipe to the configured host action
type SwipeDispatcher struct {
	items    *ItemService
	settings SwipeSettings
}

// NewSwipeDispatcher creates a new SwipeDispatcher
func NewSwipeDispatcher(items *ItemService, settings SwipeSettings) *SwipeDispatcher {
	return &SwipeDispatcher{
		items:    items,
		settings: settings,
	}
}

// Dispatch runs the on-swipe action configured for direction against itemID
func (d *SwipeDispatcher) Dispatch(
	ctx context.Context,
	itemID string,
	direction domain.Direction,
) (DispatchResult, error) {
	action := d.settings.Direction(direction).OnSwipe
	if !action.Enabled() {
		return DispatchResult{Action: action, Direction: direction, ItemID: itemID},
			fmt.Errorf("swipe %s is not enabled: action '%s'", direction, action)
	}

	logging.Logger.Info("Dispatching swipe action",
		"item", itemID,
		"direction", direction,
		"action", action)

	result, err := d.Run(ctx, itemID, action)
	result.Direction = direction
	return result, err
}

// Run executes a host action against itemID, as triggered by a pane button
func (d *SwipeDispatcher) Run(
	ctx context.Context,
	itemID string,
	action domain.SwipeAction,
) (DispatchResult, error) {
	result := DispatchResult{
		Action: action,
		ItemID: itemID,
	}

	var err error
	switch action {
	case domain.SwipeActionArchive:
		err = d.items.Archive(ctx, itemID)
		result.Refresh = true
	case domain.SwipeActionDelete:
		err = d.items.Delete(ctx, itemID)
		result.Refresh = true
	case domain.SwipeActionFlag:
		err = d.items.ToggleFlag(ctx, itemID)
		result.Refresh = true
	case domain.SwipeActionOpen:
		result.Open = true
	case domain.SwipeActionDoNothing:
	default:
		return result, fmt.Errorf("unsupported swipe action '%s'", action)
	}

	if err != nil {
		return result, fmt.Errorf("failed to %s item %s: %w", action, itemID, err)
	}
	return result, nil
}

// Settings returns the host swipe settings the dispatcher was built with
func (d *SwipeDispatcher) Settings() SwipeSettings {
	return d.settings
}
