package ports

import (
	"time"

	"github.com/renato0307/swipelist/internal/domain"
)

// GestureSource delivers pan samples for one item, in arrival order
type GestureSource interface {
	Subscribe(fn func(domain.PanSample)) (unsubscribe func())
}

// Timer is a scheduled callback
type Timer interface {
	// Stop prevents the callback from running; false if it already ran or was stopped
	Stop() bool
}

// Scheduler runs callbacks after a delay on the single UI thread
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}
