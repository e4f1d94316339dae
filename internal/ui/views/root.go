package views

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Cyclone1070/rootnav/internal/ui/models"
)

// RenderRoot renders the complete UI layout
func RenderRoot(s models.State) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderTranscript(s),
		renderInput(s),
		RenderStatus(s),
	)
}

// renderInput dims the input bar while a command holds it locked.
func renderInput(s models.State) string {
	if s.Running {
		return LockedInputStyle.Render(s.Input.View())
	}
	return InputStyle.Render(s.Input.View())
}
