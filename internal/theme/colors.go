package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Terminal response colors
const (
	ColorFailure Color = "1" // Red - failing general result
	ColorSuccess Color = "2" // Green - successful general result
	ColorUser    Color = "3" // Yellow - user terminated, backward move, timeout
)

// Message direction colors
const (
	ColorEnvelope     Color = "33"  // Blue - ME to card
	ColorNotification Color = "141" // Purple - service to application
	ColorLaunch       Color = "214" // Orange - launcher side effects
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorSubtle    Color = "245" // Light gray - labels
)
