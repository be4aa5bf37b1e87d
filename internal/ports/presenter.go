package ports

import "github.com/renato0307/swipelist/internal/domain"

// Presenter applies the visual state computed by the swipe controller
type Presenter interface {
	// SetFlag sets or clears a visual flag on the item container
	SetFlag(flag domain.VisualFlag, on bool)
	// SetPaneFlag sets or clears a visibility flag on a background or after pane
	SetPaneFlag(pane Element, flag domain.PaneFlag, on bool)
	// SetForeground moves the foreground by offset and sets its opacity
	SetForeground(offset, opacity float64)
	// SetHeight sets the container height; 0 collapses it
	SetHeight(height float64)
	// OnTransitionEnd subscribes to foreground transition completion
	OnTransitionEnd(fn func()) (unsubscribe func())
}
