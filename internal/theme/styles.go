package theme

import (
	"github.com/charmbracelet/lipgloss"

	"satd/internal/domain"
)

// Heading styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)
)

// Message label styles
var (
	EnvelopeLabelStyle = lipgloss.NewStyle().
				Foreground(ColorEnvelope).
				Bold(true)

	LaunchLabelStyle = lipgloss.NewStyle().
				Foreground(ColorLaunch).
				Bold(true)

	NotificationLabelStyle = lipgloss.NewStyle().
				Foreground(ColorNotification).
				Bold(true)
)

// Detail styles
var (
	FieldLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	FieldValueStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// ResultStyle picks the style for a terminal response general result
func ResultStyle(r domain.GeneralResult) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	switch {
	case r.IsSuccess():
		return style.Foreground(ColorSuccess)
	case r < domain.ResultMEUnableToProcess:
		return style.Foreground(ColorUser)
	default:
		return style.Foreground(ColorFailure)
	}
}
