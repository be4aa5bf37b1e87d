package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Swipe pane colors, one per host action
const (
	ColorArchive   Color = "33"  // Blue
	ColorDelete    Color = "160" // Red
	ColorDoNothing Color = "238" // Dark gray
	ColorFlag      Color = "214" // Orange
	ColorOpen      Color = "35"  // Green
)

// UI semantic colors
const (
	ColorAccept    Color = "226" // Yellow - swipe will be accepted
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSelected  Color = "237" // Selected row background
	ColorSubtle    Color = "245" // Light gray - labels
)
