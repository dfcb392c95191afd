package reader

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#5A4FCF", Dark: "#7AA2F7"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#888888", Dark: "#666666"}
	colorSuccess = lipgloss.AdaptiveColor{Light: "#1E8449", Dark: "#2ECC71"}
	colorError   = lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#E74C3C"}
	colorSubtle  = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#414868"}
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	chapterStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	clockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSuccess)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	headerStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colorSubtle).
			Padding(0, 1)

	bodyStyle = lipgloss.NewStyle().
			Padding(0, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)
)
