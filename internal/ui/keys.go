package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/swipelist/internal/config"
)

// KeyMap contains all keyboard shortcuts
type KeyMap struct {
	Add          key.Binding
	Down         key.Binding
	ForceQuit    key.Binding
	Help         key.Binding
	Quit         key.Binding
	Refresh      key.Binding
	Restore      key.Binding
	ShowArchived key.Binding
	SwipeLeft    key.Binding
	SwipeRight   key.Binding
	Tap          key.Binding
	Up           key.Binding
}

// NewKeyMap creates a new KeyMap with all key bindings initialized
// Pass nil for customKeys to use default bindings
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Add:          buildBinding("add", defaults, customKeys),
		Down:         buildBinding("down", defaults, customKeys),
		ForceQuit:    buildBinding("force_quit", defaults, customKeys),
		Help:         buildBinding("help", defaults, customKeys),
		Quit:         buildBinding("quit", defaults, customKeys),
		Refresh:      buildBinding("refresh", defaults, customKeys),
		Restore:      buildBinding("restore", defaults, customKeys),
		ShowArchived: buildBinding("show_archived", defaults, customKeys),
		SwipeLeft:    buildBinding("swipe_left", defaults, customKeys),
		SwipeRight:   buildBinding("swipe_right", defaults, customKeys),
		Tap:          buildBinding("tap", defaults, customKeys),
		Up:           buildBinding("up", defaults, customKeys),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwipeLeft, k.SwipeRight, k.Tap, k.Add, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Refresh, k.ShowArchived},
		{k.SwipeLeft, k.SwipeRight, k.Tap, k.Restore},
		{k.Add, k.Help, k.Quit, k.ForceQuit},
	}
}

// buildBinding creates a key.Binding from the key definition, using custom keys if provided.
func buildBinding(name string, defaults map[string][]string, customKeys config.KeyBindingsConfig) key.Binding {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}
	helpKeys := strings.Join(keys, "/")
	helpKeys = strings.ReplaceAll(helpKeys, " ", "space")

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKeys, def.Help),
	)
}
