package ui

import (
	"sort"
	"sync"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults []string
	Help     string
	Name     string
}

// AllKeyDefinitions contains all configurable key bindings.
// This is the single source of truth for key names, defaults and help text.
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"?"}, Help: "toggle keyboard shortcuts"},
	{Name: "quit", Defaults: []string{"q"}, Help: "exit application"},
	{Name: "refresh", Defaults: []string{"ctrl+r"}, Help: "reload items"},
	{Name: "show_archived", Defaults: []string{"A"}, Help: "toggle archived items"},

	// Navigation keys
	{Name: "down", Defaults: []string{"down", "j"}, Help: "select next item"},
	{Name: "up", Defaults: []string{"up", "k"}, Help: "select previous item"},

	// Item keys
	{Name: "add", Defaults: []string{"a", "n"}, Help: "add item"},
	{Name: "restore", Defaults: []string{"esc"}, Help: "close swiped item"},
	{Name: "swipe_left", Defaults: []string{"left", "h"}, Help: "swipe item left"},
	{Name: "swipe_right", Defaults: []string{"right", "l"}, Help: "swipe item right"},
	{Name: "tap", Defaults: []string{"enter", " "}, Help: "tap item or button"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order.
// The result is cached after the first call.
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}
