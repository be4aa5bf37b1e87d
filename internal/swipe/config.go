package swipe

import (
	"fmt"
	"time"

	"github.com/renato0307/swipelist/internal/domain"
	"github.com/renato0307/swipelist/internal/ports"
)

// Callback is invoked once per committed swipe with the item container and direction
type Callback func(item ports.Element, direction domain.Direction)

// DirectionOptions configures one swipe direction
type DirectionOptions struct {
	Action          domain.PostSwipeAction
	AfterBackground string // pane revealed once a hide swipe settles
	Background      string // pane revealed while dragging
	Delay           time.Duration
	Fade            bool // fade the foreground while dragging
}

// Options is the mutable input used to build a Configuration
type Options struct {
	AllowMouse bool
	Axis       domain.Axis
	Boundary   ports.Boundary
	Callback   Callback
	Foreground string
	Left       DirectionOptions
	Right      DirectionOptions
}

// byDirection holds one value per direction; both entries are always present
type byDirection[T any] map[domain.Direction]T

func newByDirection[T any](left, right T) byDirection[T] {
	return byDirection[T]{domain.DirectionLeft: left, domain.DirectionRight: right}
}

// Configuration is the validated, immutable description of one swipe-enabled item
type Configuration struct {
	allowMouse bool
	axis       domain.Axis
	boundary   ports.Boundary
	callback   Callback
	directions byDirection[DirectionOptions]
	foreground string
}

// NewConfiguration validates opts and returns a Configuration
func NewConfiguration(opts Options) (Configuration, error) {
	axis := opts.Axis
	if axis == "" {
		axis = domain.AxisHorizontal
	}
	switch axis {
	case domain.AxisLeft, domain.AxisRight, domain.AxisHorizontal:
	default:
		return Configuration{}, domain.NewConfigError("", "invalid swipe direction '%s'", axis)
	}

	cfg := Configuration{
		allowMouse: opts.AllowMouse,
		axis:       axis,
		boundary:   opts.Boundary,
		callback:   opts.Callback,
		directions: newByDirection(opts.Left, opts.Right),
		foreground: opts.Foreground,
	}

	for _, d := range domain.Directions {
		dir := cfg.directions[d]
		if dir.Action == "" {
			dir.Action = domain.PostSwipeReset
			cfg.directions[d] = dir
		}
		if _, err := domain.ParsePostSwipeAction(string(dir.Action)); err != nil {
			return Configuration{}, domain.NewConfigError(fmt.Sprintf("After swipe %s", d), "%s", err.Error())
		}
		if dir.Delay < 0 {
			return Configuration{}, domain.NewConfigError(fmt.Sprintf("Action trigger delay %s", d), "must not be negative")
		}
		if dir.Action == domain.PostSwipeButton && dir.Background == "" && axis.Allows(d) {
			return Configuration{}, domain.NewConfigError(fmt.Sprintf("Swipe container %s", d),
				"no name provided, this is required when 'After swipe %s' is set to 'Stick to button(s)'", d)
		}
	}

	return cfg, nil
}

// Axis returns the allowed swipe axis
func (c Configuration) Axis() domain.Axis { return c.axis }

// AllowMouse reports whether mouse pointers drive the gesture
func (c Configuration) AllowMouse() bool { return c.allowMouse }

// Boundary returns the element scoping tap-to-restore
func (c Configuration) Boundary() ports.Boundary { return c.boundary }

// Direction returns the options for d
func (c Configuration) Direction(d domain.Direction) DirectionOptions { return c.directions[d] }

// Action returns the post swipe action for d
func (c Configuration) Action(d domain.Direction) domain.PostSwipeAction {
	return c.directions[d].Action
}
