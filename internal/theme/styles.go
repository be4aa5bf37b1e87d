package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0, 0, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Background(ColorSelected).
			Bold(true)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Item styles
var (
	ArchivedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Strikethrough(true)

	FlagStyle = lipgloss.NewStyle().
			Foreground(ColorFlag).
			Bold(true)

	NoteStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Italic(true)
)

// Swipe styles
var (
	AcceptHintStyle = lipgloss.NewStyle().
			Foreground(ColorAccept).
			Bold(true)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Align(lipgloss.Center)

	PaneLabelStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)
)

// Error styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	ConfigErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(ColorError).
				PaddingLeft(1)
)

// Help screen styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)
)

// ActionColor returns the pane color of a host action name
func ActionColor(action string) Color {
	switch action {
	case "archive":
		return ColorArchive
	case "delete":
		return ColorDelete
	case "flag":
		return ColorFlag
	case "open":
		return ColorOpen
	}
	return ColorDoNothing
}

// PaneStyle returns the background style of a swipe pane for a host action
func PaneStyle(action string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(ActionColor(action)).
		Foreground(ColorHighlight)
}
