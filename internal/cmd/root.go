package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/swipelist/internal/config"
	"github.com/renato0307/swipelist/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run      RunCmd      `cmd:"" help:"Start the swipeable list TUI (default)" default:"1"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve the list over SSH"`
	Replay   ReplayCmd   `cmd:"replay" help:"Replay a gesture trace and check its expectations"`
	Items    ItemsCmd    `cmd:"items" help:"Manage items (list, add, archive, flag, del)"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (meta, keys, swipe)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults
	if c.settings != nil {
		if c.MaxLogFiles == config.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("SWIPELIST_MAX_LOG_FILES"); !hasEnv && c.settings.MaxLogFiles != nil {
				c.MaxLogFiles = *c.settings.MaxLogFiles
			}
		}
		if !c.Debug {
			if _, hasEnv := os.LookupEnv("SWIPELIST_DEBUG"); !hasEnv && c.settings.Debug != nil && *c.settings.Debug {
				c.Debug = true
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Propagate to child processes such as the note editor
	if c.Debug || c.DebugFile != "" {
		os.Setenv("SWIPELIST_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("SWIPELIST_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != config.DefaultMaxLogFiles {
		os.Setenv("SWIPELIST_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// The container opens the database, whose logger writes through logging.Logger
	container, err := NewContainer(c.settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
