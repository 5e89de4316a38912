package theme

import "github.com/charmbracelet/lipgloss"

// Doctor report styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	FoundStyle = lipgloss.NewStyle().
			Foreground(ColorFound).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Width(14)

	MissingStyle = lipgloss.NewStyle().
			Foreground(ColorMissing)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Picker styles
var (
	DetailStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	PickerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)
