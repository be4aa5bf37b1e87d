package services

import (
	"fmt"

	"github.com/renato0307/swipelist/internal/domain"
	"github.com/renato0307/swipelist/internal/ports"
	"github.com/renato0307/swipelist/internal/swipe"
)

// DeriveAxis returns the axis allowed by the enabled directions
func DeriveAxis(s SwipeSettings) (domain.Axis, error) {
	left := s.Left.OnSwipe.Enabled()
	right := s.Right.OnSwipe.Enabled()

	switch {
	case left && right:
		return domain.AxisHorizontal, nil
	case right:
		return domain.AxisRight, nil
	case left:
		return domain.AxisLeft, nil
	}
	return "", domain.NewConfigError("", "no 'On swipe action' left or right selected")
}

// ValidateSwipeSettings checks the host settings before any row is attached
func ValidateSwipeSettings(s SwipeSettings) error {
	if _, err := DeriveAxis(s); err != nil {
		return err
	}

	for _, d := range domain.Directions {
		ds := s.Direction(d)
		if ds.OnSwipe == "" {
			continue
		}
		if _, err := domain.ParseSwipeAction(string(ds.OnSwipe)); err != nil {
			return domain.NewConfigError(fmt.Sprintf("On swipe %s", d), "%s", err.Error())
		}
		if !ds.OnSwipe.Enabled() {
			continue
		}
		if ds.AfterSwipe == domain.PostSwipeButton && ds.Background == "" {
			return domain.NewConfigError("",
				"no name for 'Swipe container %s' provided. "+
					"This is required when 'After swipe %s' is set to 'Stick to button(s)'", d, d)
		}
		for _, b := range ds.Buttons {
			if !b.Enabled() || b == domain.SwipeActionDoNothing {
				return domain.NewConfigError(fmt.Sprintf("Buttons %s", d), "invalid button action '%s'", b)
			}
		}
		if ds.Delay < 0 {
			return domain.NewConfigError(fmt.Sprintf("Delay %s", d), "delay cannot be negative")
		}
	}
	return nil
}

// BuildSwipeOptions turns host settings into per-row controller options
func BuildSwipeOptions(s SwipeSettings, boundary ports.Boundary, callback swipe.Callback) (swipe.Options, error) {
	if err := ValidateSwipeSettings(s); err != nil {
		return swipe.Options{}, err
	}
	axis, _ := DeriveAxis(s)

	toDirection := func(ds DirectionSettings) swipe.DirectionOptions {
		return swipe.DirectionOptions{
			Action:          ds.AfterSwipe,
			AfterBackground: ds.AfterBackground,
			Background:      ds.Background,
			Delay:           ds.Delay,
			Fade:            ds.Fade,
		}
	}

	return swipe.Options{
		AllowMouse: s.AllowMouse,
		Axis:       axis,
		Boundary:   boundary,
		Callback:   callback,
		Foreground: s.Foreground,
		Left:       toDirection(s.Left),
		Right:      toDirection(s.Right),
	}, nil
}
