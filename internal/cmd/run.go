package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/swipelist/internal/config"
	"github.com/renato0307/swipelist/internal/logging"
	"github.com/renato0307/swipelist/internal/ui"
)

// RunCmd starts the TUI application
type RunCmd struct {
	ErrorClearDelay int  `help:"Seconds before error messages auto-clear" default:"10"`
	ShowArchived    bool `help:"Include archived items in the list" default:"false"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	r.applySettings(cli.settings)

	opts, err := cli.Container.NewModelOptions(cli.settings, r.ErrorClearDelay, r.ShowArchived)
	if err != nil {
		return err
	}

	logging.Logger.Info("Starting swipelist TUI",
		"show_archived", r.ShowArchived,
		"allow_mouse", cli.Container.SwipeDispatcher.Settings().AllowMouse)

	p := tea.NewProgram(
		ui.NewModel(opts),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse support
	)
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}

// applySettings fills flags left at their defaults from settings.json
func (r *RunCmd) applySettings(settings *config.Settings) {
	if settings == nil {
		return
	}
	if r.ErrorClearDelay == config.DefaultErrorClearDelay && settings.ErrorClearDelay != nil {
		r.ErrorClearDelay = *settings.ErrorClearDelay
	}
	if !r.ShowArchived && settings.ShowArchived != nil {
		r.ShowArchived = *settings.ShowArchived
	}
}
