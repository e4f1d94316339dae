package views

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("39")
	ColorError   = lipgloss.Color("196")
	ColorMuted   = lipgloss.Color("241")
	ColorSuccess = lipgloss.Color("42")

	BannerStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	PromptStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	ErrorStyle  = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	InputStyle  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(ColorMuted)
	LockedInputStyle = InputStyle.Faint(true)

	StatusReadyStyle   = lipgloss.NewStyle().Foreground(ColorSuccess)
	StatusRunningStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	StatusMutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
)
