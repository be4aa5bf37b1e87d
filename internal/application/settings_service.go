package application

import (
	"fmt"
	"slices"

	"github.com/renato0307/swipelist/internal/config"
	"github.com/renato0307/swipelist/internal/domain"
	"github.com/renato0307/swipelist/internal/logging"
)

// SettingsStore reads and writes settings.json
type SettingsStore interface {
	Load() (*config.Settings, error)
	Save(settings *config.Settings) error
}

// FileSettingsStore is the settings.json store under $SWIPELIST_HOME
type FileSettingsStore struct{}

// Load implements SettingsStore
func (FileSettingsStore) Load() (*config.Settings, error) {
	return config.LoadSettings()
}

// Save implements SettingsStore
func (FileSettingsStore) Save(settings *config.Settings) error {
	return config.SaveSettings(settings)
}

// SettingsService handles settings.json updates made from the command line
type SettingsService struct {
	store      SettingsStore
	validNames []string
}

// NewSettingsService creates a new SettingsService.
// validNames lists the configurable key binding names.
func NewSettingsService(store SettingsStore, validNames []string) *SettingsService {
	return &SettingsService{
		store:      store,
		validNames: validNames,
	}
}

// SetKeyBinding stores custom keys for the binding name
func (s *SettingsService) SetKeyBinding(name string, keys []string) error {
	logging.Logger.Info("Setting key binding", "name", name, "keys", keys)

	if !slices.Contains(s.validNames, name) {
		return fmt.Errorf("unknown key binding '%s'", name)
	}

	settings, err := s.store.Load()
	if err != nil {
		return err
	}

	updated := make(config.KeyBindingsConfig, len(settings.Keys)+1)
	for k, v := range settings.Keys {
		updated[k] = v
	}
	updated[name] = config.KeyBindingValue(keys)
	if err := updated.Validate(s.validNames); err != nil {
		return err
	}

	settings.Keys = updated
	if err := s.store.Save(settings); err != nil {
		logging.Logger.Error("Failed to save key binding", "name", name, "error", err)
		return fmt.Errorf("failed to save key binding: %w", err)
	}

	logging.Logger.Info("Key binding saved", "name", name)
	return nil
}

// ResetKeyBinding removes the custom keys of name so its defaults apply again
func (s *SettingsService) ResetKeyBinding(name string) error {
	settings, err := s.store.Load()
	if err != nil {
		return err
	}
	if _, ok := settings.Keys[name]; !ok {
		return nil
	}

	delete(settings.Keys, name)
	if len(settings.Keys) == 0 {
		settings.Keys = nil
	}
	if err := s.store.Save(settings); err != nil {
		return fmt.Errorf("failed to save key binding: %w", err)
	}

	logging.Logger.Info("Key binding reset", "name", name)
	return nil
}

// SwipeUpdate holds the fields of one direction to change; empty fields are kept
type SwipeUpdate struct {
	AfterSwipe string
	Buttons    []string
	DelayMs    *int
	OnSwipe    string
}

// SetSwipeDirection updates the swipe behaviour of direction d.
// The result must be a valid swipe configuration or nothing is saved.
func (s *SettingsService) SetSwipeDirection(d domain.Direction, update SwipeUpdate) error {
	logging.Logger.Info("Setting swipe direction",
		"direction", d,
		"on_swipe", update.OnSwipe,
		"after_swipe", update.AfterSwipe)

	settings, err := s.store.Load()
	if err != nil {
		return err
	}

	if settings.Swipe == nil {
		settings.Swipe = &config.SwipeConfig{}
	}
	dir := settings.Swipe.Left
	if d == domain.DirectionRight {
		dir = settings.Swipe.Right
	}
	if dir == nil {
		dir = &config.DirectionConfig{}
	}

	if update.OnSwipe != "" {
		dir.OnSwipe = update.OnSwipe
	}
	if update.AfterSwipe != "" {
		dir.AfterSwipe = update.AfterSwipe
	}
	if update.Buttons != nil {
		dir.Buttons = config.StringArray(update.Buttons)
	}
	if update.DelayMs != nil {
		dir.DelayMs = update.DelayMs
	}

	if d == domain.DirectionRight {
		settings.Swipe.Right = dir
	} else {
		settings.Swipe.Left = dir
	}

	if _, err := settings.ResolveSwipeSettings(); err != nil {
		return err
	}

	if err := s.store.Save(settings); err != nil {
		logging.Logger.Error("Failed to save swipe settings", "direction", d, "error", err)
		return fmt.Errorf("failed to save swipe settings: %w", err)
	}

	logging.Logger.Info("Swipe settings saved", "direction", d)
	return nil
}
