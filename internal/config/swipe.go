package config

import (
	"fmt"
	"time"

	"github.com/renato0307/swipelist/internal/domain"
	"github.com/renato0307/swipelist/internal/services"
)

// Pane names of the rendered rows; settings refer to panes by these names
const (
	PaneForeground      = "fg"
	PaneBackgroundLeft  = "bg-left"
	PaneBackgroundRight = "bg-right"
	PaneAfterSwipeLeft  = "after-left"
	PaneAfterSwipeRight = "after-right"
)

// DefaultSwipeSettings returns the swipe behaviour used when settings.json has none
func DefaultSwipeSettings() services.SwipeSettings {
	return services.SwipeSettings{
		Foreground: PaneForeground,
		Left: services.DirectionSettings{
			AfterBackground: PaneAfterSwipeLeft,
			AfterSwipe:      domain.PostSwipeHide,
			Background:      PaneBackgroundLeft,
			Fade:            true,
			OnSwipe:         domain.SwipeActionArchive,
		},
		Right: services.DirectionSettings{
			AfterBackground: PaneAfterSwipeRight,
			AfterSwipe:      domain.PostSwipeButton,
			Background:      PaneBackgroundRight,
			Buttons:         []domain.SwipeAction{domain.SwipeActionFlag, domain.SwipeActionDelete},
			OnSwipe:         domain.SwipeActionDoNothing,
		},
	}
}

// ResolveSwipeSettings overlays settings.json values on the defaults and validates the result
func (s *Settings) ResolveSwipeSettings() (services.SwipeSettings, error) {
	result, err := s.MergeSwipeSettings()
	if err != nil {
		return services.SwipeSettings{}, err
	}
	if err := services.ValidateSwipeSettings(result); err != nil {
		return services.SwipeSettings{}, err
	}
	return result, nil
}

// MergeSwipeSettings overlays settings.json values on the defaults.
// Only unknown action names fail; inconsistent combinations are left for the list to report.
func (s *Settings) MergeSwipeSettings() (services.SwipeSettings, error) {
	result := DefaultSwipeSettings()
	if s == nil || s.Swipe == nil {
		return result, nil
	}

	if s.Swipe.AllowMouse != nil {
		result.AllowMouse = *s.Swipe.AllowMouse
	}
	if s.Swipe.Foreground != "" {
		result.Foreground = s.Swipe.Foreground
	}

	var err error
	if result.Left, err = mergeDirection(domain.DirectionLeft, result.Left, s.Swipe.Left); err != nil {
		return services.SwipeSettings{}, err
	}
	if result.Right, err = mergeDirection(domain.DirectionRight, result.Right, s.Swipe.Right); err != nil {
		return services.SwipeSettings{}, err
	}
	return result, nil
}

func mergeDirection(
	d domain.Direction,
	base services.DirectionSettings,
	cfg *DirectionConfig,
) (services.DirectionSettings, error) {
	if cfg == nil {
		return base, nil
	}

	if cfg.OnSwipe != "" {
		action, err := domain.ParseSwipeAction(cfg.OnSwipe)
		if err != nil {
			return base, domain.NewConfigError(fmt.Sprintf("On swipe %s", d), "%s", err.Error())
		}
		base.OnSwipe = action
	}
	if cfg.AfterSwipe != "" {
		action, err := domain.ParsePostSwipeAction(cfg.AfterSwipe)
		if err != nil {
			return base, domain.NewConfigError(fmt.Sprintf("After swipe %s", d), "%s", err.Error())
		}
		base.AfterSwipe = action
	}
	if cfg.Background != "" {
		base.Background = cfg.Background
	}
	if cfg.AfterBackground != "" {
		base.AfterBackground = cfg.AfterBackground
	}
	if cfg.Buttons != nil {
		base.Buttons = make([]domain.SwipeAction, 0, len(cfg.Buttons))
		for _, b := range cfg.Buttons {
			action, err := domain.ParseSwipeAction(b)
			if err != nil {
				return base, domain.NewConfigError(fmt.Sprintf("Buttons %s", d), "%s", err.Error())
			}
			base.Buttons = append(base.Buttons, action)
		}
	}
	if cfg.DelayMs != nil {
		base.Delay = time.Duration(*cfg.DelayMs) * time.Millisecond
	}
	if cfg.Fade != nil {
		base.Fade = *cfg.Fade
	}
	return base, nil
}
