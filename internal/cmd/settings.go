package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/renato0307/swipelist/internal/application"
	"github.com/renato0307/swipelist/internal/config"
	"github.com/renato0307/swipelist/internal/domain"
	"github.com/renato0307/swipelist/internal/services"
	"github.com/renato0307/swipelist/internal/ui"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Keys  SettingsKeysCmd  `cmd:"keys" help:"List or change key bindings"`
	Meta  SettingsMetaCmd  `cmd:"meta" help:"Show settings file location and available options" default:"1"`
	Swipe SettingsSwipeCmd `cmd:"swipe" help:"Show or change the swipe behaviour"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		return printJSON(map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		})
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.json:")
	fmt.Println()

	keys := make([]string, 0, len(example))
	for k := range example {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, k := range keys {
		var value string
		switch v := example[k].(type) {
		case string:
			value = v
		default:
			data, _ := json.Marshal(v)
			value = string(data)
		}
		fmt.Fprintf(w, "%s\t%s\n", k, value)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("All settings are optional and have sensible defaults.")
	return nil
}

// SettingsKeysCmd manages keyboard shortcuts
type SettingsKeysCmd struct {
	List  SettingsKeysListCmd  `cmd:"list" help:"List all key bindings (defaults and custom)" default:"1"`
	Reset SettingsKeysResetCmd `cmd:"reset" help:"Restore the default keys of a binding"`
	Set   SettingsKeysSetCmd   `cmd:"set" help:"Set a key binding"`
}

// SettingsKeysListCmd lists all key bindings
type SettingsKeysListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (s *SettingsKeysListCmd) Run(cli *CLI) error {
	var custom config.KeyBindingsConfig
	if cli.settings != nil {
		custom = cli.settings.Keys
	}

	if s.Format == "json" {
		result := make(map[string]map[string]any, len(ui.AllKeyDefinitions))
		for _, def := range ui.AllKeyDefinitions {
			entry := map[string]any{"default": def.Defaults, "help": def.Help}
			if keys := custom[def.Name]; len(keys) > 0 {
				entry["custom"] = keys
			}
			result[def.Name] = entry
		}
		return printJSON(result)
	}

	fmt.Printf("Key bindings (settings file: %s)\n\n", config.GetSettingsPath())
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Name\tDefault\tCustom\tDescription")
	fmt.Fprintln(w, "────\t───────\t──────\t───────────")
	for _, name := range ui.GetValidKeyNames() {
		def := ui.GetKeyDefinition(name)
		customStr := "-"
		if keys := custom[name]; len(keys) > 0 {
			customStr = strings.Join(keys, ", ")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, strings.Join(def.Defaults, ", "), customStr, def.Help)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Use 'swipelist settings keys set <name> <keys>' to customize.")
	return nil
}

// SettingsKeysSetCmd sets a key binding
type SettingsKeysSetCmd struct {
	Name string `arg:"" help:"Binding name (e.g., add, help, swipe_left)"`
	Keys string `arg:"" help:"Keys, comma-separated for several (e.g., up,k)"`
}

// Run executes the set command
func (s *SettingsKeysSetCmd) Run(cli *CLI) error {
	if ui.GetKeyDefinition(s.Name) == nil {
		return fmt.Errorf("unknown key binding '%s'. Valid names: %s",
			s.Name, strings.Join(ui.GetValidKeyNames(), ", "))
	}

	keys := splitList(s.Keys)
	if len(keys) == 0 {
		return fmt.Errorf("keys cannot be empty")
	}

	service := application.NewSettingsService(application.FileSettingsStore{}, ui.GetValidKeyNames())
	if err := service.SetKeyBinding(s.Name, keys); err != nil {
		return err
	}

	fmt.Printf("Key binding '%s' set to %s\n", s.Name, strings.Join(keys, ", "))
	return nil
}

// SettingsKeysResetCmd restores the default keys of a binding
type SettingsKeysResetCmd struct {
	Name string `arg:"" help:"Binding name"`
}

// Run executes the reset command
func (s *SettingsKeysResetCmd) Run(cli *CLI) error {
	def := ui.GetKeyDefinition(s.Name)
	if def == nil {
		return fmt.Errorf("unknown key binding '%s'", s.Name)
	}

	service := application.NewSettingsService(application.FileSettingsStore{}, ui.GetValidKeyNames())
	if err := service.ResetKeyBinding(s.Name); err != nil {
		return err
	}

	fmt.Printf("Key binding '%s' restored to %s\n", s.Name, strings.Join(def.Defaults, ", "))
	return nil
}

// SettingsSwipeCmd shows or changes the swipe behaviour
type SettingsSwipeCmd struct {
	Set  SettingsSwipeSetCmd  `cmd:"set" help:"Change the behaviour of one direction"`
	Show SettingsSwipeShowCmd `cmd:"show" help:"Show the effective swipe behaviour" default:"1"`
}

// SettingsSwipeShowCmd prints the effective swipe settings
type SettingsSwipeShowCmd struct{}

// Run executes the show command
func (s *SettingsSwipeShowCmd) Run(cli *CLI) error {
	settings, err := cli.settings.MergeSwipeSettings()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Direction\tOn swipe\tAfter swipe\tButtons\tDelay\tFade")
	fmt.Fprintln(w, "─────────\t────────\t───────────\t───────\t─────\t────")
	for _, d := range domain.Directions {
		ds := settings.Direction(d)
		buttons := make([]string, 0, len(ds.Buttons))
		for _, b := range ds.Buttons {
			buttons = append(buttons, string(b))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%t\n",
			d, ds.OnSwipe, ds.AfterSwipe, strings.Join(buttons, ","), ds.Delay, ds.Fade)
	}
	w.Flush()

	fmt.Printf("\nAllow mouse: %t\n", settings.AllowMouse)
	if err := services.ValidateSwipeSettings(settings); err != nil {
		fmt.Printf("Configuration error: %v\n", err)
	}
	return nil
}

// SettingsSwipeSetCmd changes one direction of the swipe behaviour
type SettingsSwipeSetCmd struct {
	AfterSwipe string `help:"reset, hide, none, back or button"`
	Buttons    string `help:"Comma-separated button actions for after swipe 'button'"`
	DelayMs    *int   `help:"Delay before the host is notified, in milliseconds"`
	Direction  string `arg:"" help:"left or right" enum:"left,right"`
	OnSwipe    string `help:"disabled, do_nothing, archive, delete, flag or open"`
}

// Run executes the set command
func (s *SettingsSwipeSetCmd) Run(cli *CLI) error {
	d, err := domain.ParseDirection(s.Direction)
	if err != nil {
		return err
	}

	update := application.SwipeUpdate{
		AfterSwipe: s.AfterSwipe,
		DelayMs:    s.DelayMs,
		OnSwipe:    s.OnSwipe,
	}
	if s.Buttons != "" {
		update.Buttons = splitList(s.Buttons)
	}

	service := application.NewSettingsService(application.FileSettingsStore{}, ui.GetValidKeyNames())
	if err := service.SetSwipeDirection(d, update); err != nil {
		return err
	}

	fmt.Printf("Swipe %s updated\n", d)
	return nil
}

func splitList(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
