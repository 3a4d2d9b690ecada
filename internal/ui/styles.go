package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/mph-llm-experiments/alearn/internal/config"
	"github.com/mph-llm-experiments/alearn/internal/model"
)

// Palette entries carry a light and a dark variant; lipgloss picks one based
// on the terminal background (or the configured theme).
var (
	colorText          = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#FFFFFF"}
	colorTextSecondary = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#A0A0A0"}
	colorBorder        = lipgloss.AdaptiveColor{Light: "#E0E0E0", Dark: "#333333"}
	colorPrimary       = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#3B82F6"}
	colorUpcoming      = lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#60A5FA"}
	colorInProgress    = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#FBBF24"}
	colorCompleted     = lipgloss.AdaptiveColor{Light: "#10B981", Dark: "#34D399"}
	colorOverdue       = lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#F87171"}
)

var (
	headerTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	headerSubtitleStyle = lipgloss.NewStyle().Foreground(colorTextSecondary)

	filterBarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(colorBorder).
			Padding(0, 1)
	filterTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	badgeStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(colorPrimary).Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1).
			MarginBottom(1)
	selectedCardStyle = cardStyle.BorderForeground(colorPrimary)

	typeLabelStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	courseStyle      = lipgloss.NewStyle().Foreground(colorTextSecondary)
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	detailLabelStyle = lipgloss.NewStyle().Foreground(colorTextSecondary).Width(12)
	detailTextStyle  = lipgloss.NewStyle().Foreground(colorText)
	actionStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(colorPrimary).Padding(0, 2)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 2)
	groupTitleStyle      = lipgloss.NewStyle().Bold(true).Foreground(colorText).MarginTop(1)
	optionStyle          = lipgloss.NewStyle().Foreground(colorText).PaddingLeft(2)
	selectedOptionStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).PaddingLeft(2)
	focusedOptionPointer = lipgloss.NewStyle().Foreground(colorPrimary)

	emptyStateStyle = lipgloss.NewStyle().Foreground(colorTextSecondary).Padding(2, 4)
	messageStyle    = lipgloss.NewStyle().Foreground(colorPrimary)
	errorStyle      = lipgloss.NewStyle().Foreground(colorOverdue).Bold(true)
)

// statusColor returns the accent color of an activity status.
func statusColor(s model.ActivityStatus) lipgloss.TerminalColor {
	switch s {
	case model.StatusUpcoming:
		return colorUpcoming
	case model.StatusInProgress:
		return colorInProgress
	case model.StatusCompleted:
		return colorCompleted
	case model.StatusOverdue:
		return colorOverdue
	default:
		return colorText
	}
}

// ApplyTheme configures lipgloss for the configured theme. noColor strips all
// colors from the output.
func ApplyTheme(theme string, noColor bool) {
	switch theme {
	case config.ThemeLight:
		lipgloss.SetHasDarkBackground(false)
	case config.ThemeDark:
		lipgloss.SetHasDarkBackground(true)
	}
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
