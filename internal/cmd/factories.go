package cmd

import (
	"fmt"
	"time"

	adapterstorage "github.com/renato0307/swipelist/internal/adapters/storage"
	"github.com/renato0307/swipelist/internal/config"
	"github.com/renato0307/swipelist/internal/logging"
	"github.com/renato0307/swipelist/internal/ports"
	"github.com/renato0307/swipelist/internal/services"
	"github.com/renato0307/swipelist/internal/ui"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	ItemService     *services.ItemService
	SwipeDispatcher *services.SwipeDispatcher

	// Internal - for cleanup only
	itemRepo ports.ItemRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings) (*Container, error) {
	swipeSettings, err := settings.MergeSwipeSettings()
	if err != nil {
		return nil, fmt.Errorf("invalid swipe settings in settings.json: %w", err)
	}

	itemRepo, err := adapterstorage.NewSQLiteRepository(config.GetDBPath())
	if err != nil {
		return nil, err
	}

	itemService := services.NewItemService(itemRepo)
	dispatcher := services.NewSwipeDispatcher(itemService, swipeSettings)

	return &Container{
		ItemService:     itemService,
		SwipeDispatcher: dispatcher,
		itemRepo:        itemRepo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.itemRepo != nil {
		return c.itemRepo.Close()
	}
	return nil
}

// NewModelOptions builds the list model options shared by the local TUI and SSH sessions
func (c *Container) NewModelOptions(settings *config.Settings, errorClearDelay int, showArchived bool) (ui.ModelOptions, error) {
	var keysConfig config.KeyBindingsConfig
	if settings != nil && settings.Keys != nil {
		if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
			return ui.ModelOptions{}, fmt.Errorf("invalid key bindings in settings.json: %w", err)
		}
		keysConfig = settings.Keys
		logging.Logger.Debug("Custom key bindings loaded and validated")
	}

	return ui.ModelOptions{
		Dispatcher:      c.SwipeDispatcher,
		ErrorClearDelay: time.Duration(errorClearDelay) * time.Second,
		ItemService:     c.ItemService,
		Keys:            ui.NewKeyMap(keysConfig),
		ShowArchived:    showArchived,
	}, nil
}
